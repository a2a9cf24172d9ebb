package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/rechenwerk/foundation/calc/ast"
)

var (
	parseExpr   string
	parseOutput string
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a program and print its syntax tree",
	Long: `Parses a calc program and prints one tree per statement.

The program is read from the file argument, from -e, or from stdin
when the argument is "-" or missing.

Output formats:
  sexpr  - one S-expression per statement (default)
  json   - statements and locals as JSON
  yaml   - statements and locals as YAML

Examples:
  rechenwerk parse -e "1+2*3;"
  rechenwerk parse --output json program.calc
  echo "a=1; return a;" | rechenwerk parse`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expr", "e", "", "program text")
	parseCmd.Flags().StringVarP(&parseOutput, "output", "o", "", "output format (sexpr, json, yaml)")
}

func runParse(cmd *cobra.Command, args []string) error {
	formatName := parseOutput
	if formatName == "" {
		formatName = appConfig.GetString("output.format", "sexpr")
	}
	format, err := ast.ParseDumpFormat(formatName)
	if err != nil {
		return err
	}

	src, name, err := readSource(cmd.InOrStdin(), parseExpr, args)
	if err != nil {
		return err
	}

	engine, err := newEngine(appConfig, logger)
	if err != nil {
		return err
	}

	result, err := engine.Parse(src)
	if err != nil {
		reportError(os.Stderr, name, err)
		return errReported
	}

	return ast.Dump(cmd.OutOrStdout(), result.Program, format)
}

// readSource returns the program text and a display name for it
func readSource(stdin io.Reader, expr string, args []string) (string, string, error) {
	if expr != "" {
		if len(args) > 0 {
			return "", "", fmt.Errorf("use either -e or a file argument")
		}
		return expr, "<expr>", nil
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", err
	}
	return string(data), args[0], nil
}
