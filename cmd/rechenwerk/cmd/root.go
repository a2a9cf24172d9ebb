package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/msto63/rechenwerk/foundation/calc"
	rwconfig "github.com/msto63/rechenwerk/foundation/core/config"
	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
)

// envPrefix prefixes environment overrides of config keys
const envPrefix = "RECHENWERK"

// defaultConfigPaths are tried in order when --config is not given
var defaultConfigPaths = []string{"rechenwerk.toml", "configs/rechenwerk.toml"}

var (
	cfgFile  string
	logLevel string
	noColor  bool

	appConfig *rwconfig.Config
	logger    *rwlog.Logger
)

// errReported is returned by commands that already printed their failure
var errReported = errors.New("failure already reported")

var rootCmd = &cobra.Command{
	Use:   "rechenwerk",
	Short: "rechenwerk - calc language front-end",
	Long: `rechenwerk tokenizes and parses programs of the calc language:
integer arithmetic, comparisons, single-letter variables and return.

  a = 3;
  b = a * (2 + 1);
  return b >= 9;

Syntax errors are reported with the offending line and a caret.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil && !errors.Is(err, errReported) {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rechenwerk.toml or ./configs/rechenwerk.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored diagnostics")
}

// configDefaults are used for keys missing in the config file
func configDefaults() map[string]interface{} {
	return map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
		"parser": map[string]interface{}{
			"max_input_length": 1 << 20,
		},
		"diagnostic": map[string]interface{}{
			"color": true,
		},
		"output": map[string]interface{}{
			"format": "sexpr",
		},
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg

	l, err := newLogger(cfg)
	if err != nil {
		return err
	}
	logger = l
	rwlog.SetDefault(logger)

	if cfg.FilePath() != "" {
		logger.Debug("Configuration loaded", rwlog.Fields{"path": cfg.FilePath()})
	}
	return nil
}

func loadConfig() (*rwconfig.Config, error) {
	path := cfgFile
	if path == "" {
		for _, candidate := range defaultConfigPaths {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}

	if path == "" {
		return rwconfig.FromDefaults(configDefaults(), envPrefix), nil
	}

	return rwconfig.LoadWithOptions(path, rwconfig.LoadOptions{
		Format:    rwconfig.FormatAuto,
		EnvPrefix: envPrefix,
		Defaults:  configDefaults(),
	})
}

func newLogger(cfg *rwconfig.Config) (*rwlog.Logger, error) {
	levelName := cfg.GetString("log.level", "warn")
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := rwlog.ParseLevel(levelName)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", levelName)
	}

	format, err := rwlog.ParseFormat(cfg.GetString("log.format", "text"))
	if err != nil {
		return nil, fmt.Errorf("invalid log format %q", cfg.GetString("log.format"))
	}

	return rwlog.NewWithConfig(rwlog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   "rechenwerk",
	}), nil
}

// newEngine builds a calc engine from the current configuration
func newEngine(cfg *rwconfig.Config, l *rwlog.Logger) (*calc.Engine, error) {
	return calc.New(calc.Options{
		Logger:         l,
		MaxInputLength: cfg.GetInt("parser.max_input_length", 0),
	})
}

// useColor reports whether diagnostics written to w are colored
func useColor(w io.Writer) bool {
	if noColor || !appConfig.GetBool("diagnostic.color", true) {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportError writes a syntax error as caret diagnostic, anything else as
// a plain message
func reportError(w io.Writer, name string, err error) {
	se, ok := calc.AsSyntaxError(err)
	if !ok {
		fmt.Fprintf(w, "%s: %v\n", name, err)
		return
	}
	fmt.Fprintf(w, "%s:%s\n", name, se.Error())
	se.Render(w, useColor(w))
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
