// Package incentive provides single-agent incentive analysis on causal
// influence diagrams, currently response-incentive admission.
//
// A diagram admits a response incentive on a node X ≠ D exactly when
// the requisite graph - the minimal reduction pruning every
// non-requisite observation edge into each decision - retains a
// directed path X → D. Intuitively: the agent's optimal policy at D
// would react to interventions on X.
//
// Preconditions: exactly one agent, both nodes present, and sufficient
// recall (validated here, computed by package relevance). Querying the
// decision itself always reports false.
package incentive
