// Command macid loads a diagram document and reports its game-theoretic
// structure: Nash equilibria, subgame perfect equilibria, the subgame
// decomposition, and response incentives.
//
// Usage:
//
//	macid ne        <diagram.yaml> [--decisions D1,D2] [--solver NAME]
//	macid spe       <diagram.yaml> [--solver NAME]
//	macid subgames  <diagram.yaml>
//	macid incentive <diagram.yaml> --decision D [--node X]
//
// When --solver is set the named selector is pinned; otherwise the
// solver picks a default from the player count. Solver warnings
// (selector substitution, empty-result fallback) go to stderr as
// structured logs.
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/macid/builder"
	"github.com/katalvlaran/macid/core"
	"github.com/katalvlaran/macid/incentive"
	"github.com/katalvlaran/macid/nash"
	"github.com/katalvlaran/macid/oracle"
	"github.com/katalvlaran/macid/relevance"
)

// Flags shared across subcommands.
var (
	solverFlag    string
	decisionsFlag []string
	decisionFlag  string
	nodeFlag      string
)

var rootCmd = &cobra.Command{
	Use:           "macid",
	Short:         "Equilibrium analysis for multi-agent influence diagrams",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var neCmd = &cobra.Command{
	Use:   "ne <diagram.yaml>",
	Short: "Compute Nash equilibria of the diagram or a chosen subgame",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, opts, err := load(args[0])
		if err != nil {
			return err
		}
		profiles, err := nash.InSubgame(d, decisionsFlag, opts...)
		if err != nil {
			return err
		}
		printProfiles(cmd, profiles)
		return nil
	},
}

var speCmd = &cobra.Command{
	Use:   "spe <diagram.yaml>",
	Short: "Compute subgame perfect equilibria by backward induction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, opts, err := load(args[0])
		if err != nil {
			return err
		}
		profiles, err := nash.SubgamePerfect(d, opts...)
		if err != nil {
			return err
		}
		printProfiles(cmd, profiles)
		return nil
	},
}

var subgamesCmd = &cobra.Command{
	Use:   "subgames <diagram.yaml>",
	Short: "List relevance blocks and valid subgames",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := builder.LoadFile(args[0])
		if err != nil {
			return err
		}
		g, err := relevance.New(d)
		if err != nil {
			return err
		}
		c, err := relevance.Condense(g)
		if err != nil {
			return err
		}
		for _, b := range c.TopoOrder() {
			cmd.Printf("block %d: {%s}\n", b, strings.Join(c.Members(b), ", "))
		}
		sets := relevance.SubgamesOf(c)
		for _, s := range sets {
			cmd.Printf("subgame: {%s}\n", strings.Join(s.Sorted(), ", "))
		}
		return nil
	},
}

var incentiveCmd = &cobra.Command{
	Use:   "incentive <diagram.yaml> --decision D [--node X]",
	Short: "Report which nodes the given decision can respond to",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := builder.LoadFile(args[0])
		if err != nil {
			return err
		}
		if nodeFlag != "" {
			admits, err := incentive.AdmitsResponse(d, decisionFlag, nodeFlag)
			if err != nil {
				return err
			}
			cmd.Printf("%s responds to %s: %v\n", decisionFlag, nodeFlag, admits)
			return nil
		}
		nodes, err := incentive.AdmitsResponseList(d, decisionFlag)
		if err != nil {
			return err
		}
		for _, n := range nodes {
			cmd.Println(n)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{neCmd, speCmd} {
		c.Flags().StringVar(&solverFlag, "solver", "",
			"pin the equilibrium selector (enumpure, enummixed, lcp, lp, simpdiv, ipa, gnm)")
	}
	neCmd.Flags().StringSliceVar(&decisionsFlag, "decisions", nil,
		"restrict the computation to this decision subgame (default: all decisions)")
	incentiveCmd.Flags().StringVar(&decisionFlag, "decision", "", "the decision under analysis")
	incentiveCmd.Flags().StringVar(&nodeFlag, "node", "", "query one node instead of listing all")
	_ = incentiveCmd.MarkFlagRequired("decision")

	rootCmd.AddCommand(neCmd, speCmd, subgamesCmd, incentiveCmd)
}

// load reads the diagram and turns the shared flags into solver options.
func load(path string) (*core.Diagram, []nash.Option, error) {
	d, err := builder.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}
	var opts []nash.Option
	if solverFlag != "" {
		algo, perr := oracle.Parse(solverFlag)
		if perr != nil {
			return nil, nil, perr
		}
		opts = append(opts, nash.WithAlgorithm(algo))
	}
	return d, opts, nil
}

// printProfiles renders each profile one decision per line, rules in
// deterministic order so output is diffable.
func printProfiles(cmd *cobra.Command, profiles []core.Profile) {
	for i, p := range profiles {
		cmd.Printf("equilibrium %d:\n", i+1)
		for _, ra := range p {
			cmd.Printf("  %s: %s\n", ra.Decision, formatRule(ra.Rule))
		}
	}
	if len(profiles) == 0 {
		cmd.Println("no equilibria")
	}
}

// formatRule renders "[ctx] action=prob ..." groups sorted by context.
func formatRule(r core.Rule) string {
	ctxs := make([]string, 0, len(r))
	for c := range r {
		ctxs = append(ctxs, c)
	}
	sort.Strings(ctxs)
	parts := make([]string, 0, len(ctxs))
	for _, c := range ctxs {
		dist := r[c]
		actions := make([]string, 0, len(dist))
		for a := range dist {
			actions = append(actions, a)
		}
		sort.Strings(actions)
		probs := make([]string, 0, len(actions))
		for _, a := range actions {
			probs = append(probs, fmt.Sprintf("%s=%.4g", a, dist[a]))
		}
		label := c
		if label == "" {
			label = "(root)"
		}
		parts = append(parts, fmt.Sprintf("[%s] %s", label, strings.Join(probs, " ")))
	}
	return strings.Join(parts, "; ")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		clog.Error(err.Error())
		os.Exit(1)
	}
}
