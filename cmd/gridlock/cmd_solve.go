package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/solver"
)

var (
	solveTrace bool
	solveLine  bool

	commandSolve = &cobra.Command{
		Use:   "solve [puzzle]",
		Short: "Solve a puzzle given as 81 characters ('.' or '0' = empty), or read it from stdin",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := solve(cmd, args); err != nil {
				fmt.Fprintln(os.Stderr, "solve:", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	commandSolve.Flags().BoolVar(&solveTrace, "trace", false, "print each domain-reduction step")
	commandSolve.Flags().BoolVar(&solveLine, "line", false, "print the solution as a single 81-character line")
	mainCommand.AddCommand(commandSolve)
}

func solve(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		input = string(data)
	}
	b, err := domain.ParseBoard(input)
	if err != nil {
		return err
	}

	s := solver.NewReducingSolver()
	if solveTrace {
		// Trace output is one-based for human eyes.
		s.Observer = func(cell domain.CellCoord, value uint8, forced bool) {
			if forced {
				fmt.Fprintf(os.Stderr, "revise r%d c%d: forced %d\n", cell.Row+1, cell.Col+1, value)
			} else {
				fmt.Fprintf(os.Stderr, "revise r%d c%d\n", cell.Row+1, cell.Col+1)
			}
		}
	}

	out, st, err := s.Solve(cmd.Context(), b)
	if err != nil {
		if errors.Is(err, solver.ErrUnsolvable) {
			fmt.Fprintf(os.Stderr, "no solution (revisions=%d nodes=%d dur=%v)\n", st.Revisions, st.Nodes, st.Duration)
			os.Exit(1)
		}
		return err
	}
	newLogger().Debug("solved", "revisions", st.Revisions, "nodes", st.Nodes, "dur", st.Duration)
	if solveLine {
		fmt.Println(out.String())
	} else {
		fmt.Print(formatGrid(out))
	}
	return nil
}
