package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokensExpr string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token sequence of a program",
	Long: `Tokenizes a calc program and prints one token per line:

  KIND text [value]

Examples:
  rechenwerk tokens -e "return a>=10;"
  rechenwerk tokens program.calc`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)

	tokensCmd.Flags().StringVarP(&tokensExpr, "expr", "e", "", "program text")
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, name, err := readSource(cmd.InOrStdin(), tokensExpr, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(appConfig, logger)
	if err != nil {
		return err
	}

	tokens, err := engine.Tokenize(src)
	if err != nil {
		reportError(os.Stderr, name, err)
		return errReported
	}

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintln(out, tok.Describe(src))
	}
	return nil
}
