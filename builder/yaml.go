// SPDX-License-Identifier: MIT
// Package: macid/builder
//
// yaml.go - declarative diagram loading from YAML documents.
//
// Contract:
//   - FromYAML decodes strictly: unknown fields fail with ErrBadDocument.
//   - Node entries may appear in any order; parents are resolved before
//     children, so documents can list nodes top-down, bottom-up or shuffled.
//   - A parent reference that never resolves (absent node or a reference
//     cycle) fails with ErrUnresolvedNode naming the stuck entries.
//   - Kind tokens are exactly "chance", "decision", "utility"; anything
//     else fails with ErrUnknownKind.
//   - Table validation (probability mass, completeness, utility payoffs)
//     is core's job; its sentinels pass through wrapped with node context.
//   - Optional rules are applied after all nodes exist; a rule naming a
//     non-decision fails with ErrUnknownRule.
//
// Complexity:
//   - Time: O(n²) worst case over n node entries (repeated resolution
//     sweeps); documents are small, so simplicity wins over a heap.
//   - Space: O(n + tables).
//
// Determinism:
//   - Within one sweep, ready entries insert in document order, so the
//     same document always produces the same diagram.

package builder

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/macid/core"
)

// Kind tokens accepted in node entries.
const (
	kindChance   = "chance"
	kindDecision = "decision"
	kindUtility  = "utility"
)

// document mirrors the YAML top level.
type document struct {
	Nodes []nodeEntry                    `yaml:"nodes"`
	Rules map[string]map[string]ruleDist `yaml:"rules"`
}

// nodeEntry mirrors one element of the nodes list. Fields not relevant
// to the declared kind must be absent (enforced per kind below).
type nodeEntry struct {
	ID      string                        `yaml:"id"`
	Kind    string                        `yaml:"kind"`
	Agent   string                        `yaml:"agent"`
	Parents []string                      `yaml:"parents"`
	Domain  []string                      `yaml:"domain"`
	CPD     map[string]map[string]float64 `yaml:"cpd"`
	Payoff  map[string]float64            `yaml:"payoff"`
}

// ruleDist is a single action distribution inside the rules section.
type ruleDist map[string]float64

// FromYAML parses a diagram document and returns the validated diagram.
//
// Returns ErrBadDocument, ErrUnknownKind, ErrUnresolvedNode, ErrUnknownRule,
// or a wrapped core sentinel when a table fails structural validation.
func FromYAML(data []byte) (*core.Diagram, error) {
	// Decode strictly so typos in field names surface immediately.
	var doc document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("builder: FromYAML: decode: %v: %w", err, ErrBadDocument)
	}

	// Reject unknown kind tokens before any insertion work.
	for _, n := range doc.Nodes {
		switch n.Kind {
		case kindChance, kindDecision, kindUtility:
		default:
			return nil, fmt.Errorf("builder: FromYAML: node %q: kind %q: %w", n.ID, n.Kind, ErrUnknownKind)
		}
	}

	d := core.New()

	// Resolve parents-first by repeated sweeps: each sweep inserts every
	// entry whose parents all exist already. No progress means a missing
	// parent or a reference cycle.
	pending := make([]nodeEntry, len(doc.Nodes))
	copy(pending, doc.Nodes)
	for len(pending) > 0 {
		var stuck []nodeEntry
		inserted := false
		for _, n := range pending {
			if !parentsReady(d, n.Parents) {
				stuck = append(stuck, n)
				continue
			}
			if err := insertNode(d, n); err != nil {
				return nil, err
			}
			inserted = true
		}
		if !inserted {
			names := make([]string, 0, len(stuck))
			for _, n := range stuck {
				names = append(names, n.ID)
			}
			sort.Strings(names)
			return nil, fmt.Errorf("builder: FromYAML: cannot order nodes %s: %w",
				strings.Join(names, ", "), ErrUnresolvedNode)
		}
		pending = stuck
	}

	// Apply optional pre-committed decision rules after all nodes exist.
	ruleNames := make([]string, 0, len(doc.Rules))
	for id := range doc.Rules {
		ruleNames = append(ruleNames, id)
	}
	sort.Strings(ruleNames)
	for _, id := range ruleNames {
		if kind, err := d.KindOf(id); err != nil || kind != core.Decision {
			return nil, fmt.Errorf("builder: FromYAML: rules[%q]: %w", id, ErrUnknownRule)
		}
		rule := make(core.Rule, len(doc.Rules[id]))
		for ctx, dist := range doc.Rules[id] {
			rule[ctx] = core.Distribution(dist)
		}
		if err := d.SetRule(id, rule); err != nil {
			return nil, fmt.Errorf("builder: FromYAML: rules[%q]: %w", id, err)
		}
	}

	return d, nil
}

// LoadFile reads path from disk and delegates to FromYAML.
func LoadFile(path string) (*core.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("builder: LoadFile(%q): %w", path, err)
	}
	return FromYAML(data)
}

// parentsReady reports whether every named parent already exists in d.
func parentsReady(d *core.Diagram, parents []string) bool {
	for _, p := range parents {
		if !d.HasNode(p) {
			return false
		}
	}
	return true
}

// insertNode dispatches one resolved entry to the matching core insertion.
func insertNode(d *core.Diagram, n nodeEntry) error {
	switch n.Kind {
	case kindChance:
		cpd := make(core.CPD, len(n.CPD))
		for ctx, dist := range n.CPD {
			cpd[ctx] = core.Distribution(dist)
		}
		if err := d.AddChance(n.ID, n.Parents, n.Domain, cpd); err != nil {
			return fmt.Errorf("builder: FromYAML: node %q: %w", n.ID, err)
		}
	case kindDecision:
		if err := d.AddDecision(n.ID, n.Agent, n.Parents, n.Domain); err != nil {
			return fmt.Errorf("builder: FromYAML: node %q: %w", n.ID, err)
		}
	case kindUtility:
		if err := d.AddUtility(n.ID, n.Agent, n.Parents, core.Payoff(n.Payoff)); err != nil {
			return fmt.Errorf("builder: FromYAML: node %q: %w", n.ID, err)
		}
	}
	return nil
}
