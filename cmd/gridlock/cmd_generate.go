package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"svw.info/gridlock/internal/domain"
	"svw.info/gridlock/internal/generator"
)

var (
	generateDifficulty string
	generateSeed       int64
	generateLine       bool

	commandGenerate = &cobra.Command{
		Use:   "generate",
		Short: "Generate a new puzzle",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := generate(cmd); err != nil {
				fmt.Fprintln(os.Stderr, "generate:", err)
				os.Exit(1)
			}
		},
	}
)

func init() {
	commandGenerate.Flags().StringVarP(&generateDifficulty, "difficulty", "d", "medium", "easy|medium|hard")
	commandGenerate.Flags().Int64Var(&generateSeed, "seed", 0, "RNG seed (0 = time-based)")
	commandGenerate.Flags().BoolVar(&generateLine, "line", false, "print as a single 81-character line")
	mainCommand.AddCommand(commandGenerate)
}

func generate(cmd *cobra.Command) error {
	seed := generateSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(generateDifficulty)
	p, st, err := generator.NewPatternGenerator().Generate(cmd.Context(), seed, diff)
	if err != nil {
		return err
	}
	logger := newLogger()
	logger.Debug("generated", "difficulty", diff.String(), "seed", seed, "blanks", p.Board.EmptyCount(), "dur", st.Duration)
	if generateLine {
		fmt.Println(p.Board.String())
	} else {
		fmt.Print(formatGrid(&p.Board))
	}
	return nil
}
