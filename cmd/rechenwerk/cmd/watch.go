package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/msto63/rechenwerk/foundation/calc"
	"github.com/msto63/rechenwerk/foundation/calc/ast"
	rwconfig "github.com/msto63/rechenwerk/foundation/core/config"
	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

var watchOutput string

var watchCmd = &cobra.Command{
	Use:   "watch file",
	Short: "Re-parse a program whenever it changes",
	Long: `Parses the file once and again after every save, printing the
trees or the diagnostic. A loaded config file is watched as well;
changes to parser limits take effect on the next parse.

Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "output format (sexpr, json, yaml)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])
	if _, err := os.Stat(path); err != nil {
		return err
	}

	formatName := watchOutput
	if formatName == "" {
		formatName = appConfig.GetString("output.format", "sexpr")
	}
	format, err := ast.ParseDumpFormat(formatName)
	if err != nil {
		return err
	}

	var engine atomic.Pointer[calc.Engine]
	e, err := newEngine(appConfig, logger)
	if err != nil {
		return err
	}
	engine.Store(e)

	if appConfig.FilePath() != "" {
		appConfig.OnChange(func(_, newConfig *rwconfig.Config) {
			e, err := newEngine(newConfig, logger)
			if err != nil {
				logger.WarnWithErr("Ignoring config change", err)
				return
			}
			engine.Store(e)
			logger.Info("Configuration reloaded", rwlog.Fields{"path": newConfig.FilePath()})
		})
		if err := appConfig.Watch(); err != nil {
			logger.WarnWithErr("Config watching disabled", err)
		}
		defer appConfig.StopWatching()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	render := func() {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "--- %s (%s)\n", path, time.Now().Format("15:04:05"))
		result, err := engine.Load().ParseFile(path)
		if err != nil {
			reportError(os.Stderr, path, err)
			return
		}
		if err := ast.Dump(out, result.Program, format); err != nil {
			logger.ErrorWithErr("Failed to write tree", err)
		}
	}

	render()
	return watchFile(ctx, path, render)
}

// watchFile calls onChange after writes to path settle. It returns when
// ctx is done.
func watchFile(ctx context.Context, path string, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(100 * time.Millisecond)
			} else {
				timer.Reset(100 * time.Millisecond)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnWithErr("File watcher error", err)
		}
	}
}
