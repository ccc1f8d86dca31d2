// Package cli implements the nfasim commands.
package cli

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/geange/nfa"
	"github.com/geange/nfa/internal/config"
)

const (
	InLanguage    = "In language"
	NotInLanguage = "Not in language"
)

// Verdict returns the line printed for a match result.
func Verdict(accepted bool) string {
	if accepted {
		return InLanguage
	}
	return NotInLanguage
}

// Execute parses the environment, then runs the command line in args.
func Execute(args []string, out, errOut io.Writer) error {
	cfg, err := config.ParseEnv()
	if err != nil {
		return err
	}
	cmd := NewRootCommand(&cfg, out, errOut)
	cmd.SetArgs(args)
	return cmd.Execute()
}

// NewRootCommand builds the command tree. Flag defaults come from cfg, and
// parsed flags are written back into it.
func NewRootCommand(cfg *config.Config, out, errOut io.Writer) *cobra.Command {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", 0)

	rootCmd := &cobra.Command{
		Use:   "nfasim [flags] FILE INPUT",
		Short: "Decide whether an epsilon-NFA accepts an input string",
		Long: `nfasim reads an automaton description and reports whether INPUT is in
its language. Each description line is a transition <src>=<sym>><dst>; leave
out <sym> for an epsilon transition. Lines starting with '#' are comments and
a final line $a,b,... lists the accept states.

Put -- before FILE when INPUT starts with '-':

  nfasim --epsilon transitive -- automaton.nfa -ab`,
		Args:          cobra.ExactArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMatch(cfg, logger, out, args[0], args[1])
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.Epsilon, "epsilon", cfg.Epsilon, "epsilon policy: single or transitive")
	pf.IntVar(&cfg.MaxStates, "max-states", cfg.MaxStates, "declared state capacity (0 for unbounded)")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "log the load summary and every active set")

	f := rootCmd.Flags()
	f.BoolVar(&cfg.Compiled, "compiled", cfg.Compiled, "determinize before matching")
	f.IntVar(&cfg.WorkLimit, "work-limit", cfg.WorkLimit, "maximum DFA states built by --compiled")

	rootCmd.AddCommand(
		newDotCommand(cfg, logger, out),
		newInfoCommand(cfg, logger, out),
		newFmtCommand(cfg, logger, out),
	)
	return rootCmd
}

func load(cfg *config.Config, logger *log.Logger, path string) (*nfa.Automaton, error) {
	a, err := nfa.LoadFile(path, cfg.BuilderOptions()...)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		logger.Printf("loaded %s: %d states, %d transitions, accept %v",
			path, a.NumStates(), a.NumTransitions(), a.AcceptStates())
	}
	return a, nil
}

func runMatch(cfg *config.Config, logger *log.Logger, out io.Writer, path, input string) error {
	policy, err := cfg.Policy()
	if err != nil {
		return err
	}
	a, err := load(cfg, logger, path)
	if err != nil {
		return err
	}

	var accepted bool
	switch {
	case cfg.Compiled:
		r, err := nfa.Determinize(a, policy, cfg.WorkLimit)
		if err != nil {
			return fmt.Errorf("determinize: %w", err)
		}
		if cfg.Verbose {
			logger.Printf("determinized into %d states", r.NumStates())
		}
		accepted = r.Run(input)
	case cfg.Verbose:
		sim := nfa.NewSimulator(a, nfa.WithEpsilonPolicy(policy))
		accepted = sim.Trace(input, func(step int, label nfa.Label, active *nfa.StateSet) {
			if step == 0 {
				logger.Printf("start: %s", active)
				return
			}
			logger.Printf("step %d %s: %s", step, label, active)
		})
	case policy == nfa.SinglePass:
		accepted = nfa.Run(a, input)
	default:
		accepted = nfa.NewSimulator(a, nfa.WithEpsilonPolicy(policy)).Accepts(input)
	}

	_, err = fmt.Fprintln(out, Verdict(accepted))
	return err
}

func newDotCommand(cfg *config.Config, logger *log.Logger, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "dot FILE",
		Short: "Print the automaton as a Graphviz digraph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cfg, logger, args[0])
			if err != nil {
				return err
			}
			return nfa.WriteDot(out, a)
		},
	}
}

func newFmtCommand(cfg *config.Config, logger *log.Logger, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt FILE",
		Short: "Print the description with comments removed and transitions grouped by state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := load(cfg, logger, args[0])
			if err != nil {
				return err
			}
			return nfa.Format(out, a)
		},
	}
}

func newInfoCommand(cfg *config.Config, logger *log.Logger, out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Print statistics about the automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := cfg.Policy()
			if err != nil {
				return err
			}
			a, err := load(cfg, logger, args[0])
			if err != nil {
				return err
			}

			alphabet := a.Alphabet()
			labels := make([]string, len(alphabet))
			for i, l := range alphabet {
				labels[i] = l.String()
			}

			fmt.Fprintf(out, "states: %d\n", a.NumStates())
			fmt.Fprintf(out, "referenced: %d\n", len(a.States()))
			fmt.Fprintf(out, "transitions: %d\n", a.NumTransitions())
			fmt.Fprintf(out, "accept: %v\n", a.AcceptStates())
			fmt.Fprintf(out, "alphabet: %s\n", strings.Join(labels, " "))
			fmt.Fprintf(out, "epsilon: %t\n", a.HasEpsilon())
			fmt.Fprintf(out, "deterministic: %t\n", a.IsDeterministic())
			fmt.Fprintf(out, "policy: %s\n", policy)
			fmt.Fprintf(out, "empty: %t\n", nfa.IsEmpty(a, policy))
			_, err = fmt.Fprintf(out, "dead: %v\n", nfa.DeadStates(a, policy))
			return err
		},
	}
}
