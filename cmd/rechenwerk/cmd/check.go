package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/msto63/rechenwerk/foundation/calc"
)

var checkJobs int

var checkCmd = &cobra.Command{
	Use:   "check file...",
	Short: "Check programs for syntax errors",
	Long: `Parses every given file and reports "ok" or the diagnostic.
Files are parsed concurrently; the output keeps argument order.
The exit status is 1 if any file failed.

Examples:
  rechenwerk check examples/*.calc
  rechenwerk check -j 1 a.calc b.calc`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().IntVarP(&checkJobs, "jobs", "j", runtime.NumCPU(), "number of files parsed in parallel")
}

type checkResult struct {
	result *calc.Result
	err    error
}

func runCheck(cmd *cobra.Command, args []string) error {
	engine, err := newEngine(appConfig, logger)
	if err != nil {
		return err
	}

	results := make([]checkResult, len(args))

	g, gctx := errgroup.WithContext(cmd.Context())
	if checkJobs > 0 {
		g.SetLimit(checkJobs)
	}

	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := engine.ParseFile(path)
			results[i] = checkResult{result: res, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for i, path := range args {
		r := results[i]
		if r.err != nil {
			failed++
			reportError(os.Stderr, path, r.err)
			continue
		}
		fmt.Fprintf(out, "%s: ok (%d statements, %d locals)\n",
			path, len(r.result.Program.Stmts), r.result.Program.Locals.Len())
	}

	if failed > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d files failed\n", failed, len(args))
		return errReported
	}
	return nil
}
