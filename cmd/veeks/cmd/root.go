package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/veeks/foundation/core/config"
	mdwerror "github.com/msto63/veeks/foundation/core/error"
	"github.com/msto63/veeks/foundation/core/log"
	"github.com/msto63/veeks/internal/render"
	"github.com/msto63/veeks/pkg/core/logging"
)

// EnvPrefix prefixes environment overrides, e.g. VEEKS_OUTPUT_FORMAT
const EnvPrefix = "VEEKS"

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// Per-invocation state set up by loadSettings
var (
	cfg      *config.Config
	logger   = log.Discard()
	format   = render.FormatText
	withUnit bool
)

// clock is replaced in tests
var clock = time.Now

// configSearchPaths lists the directories searched for veeks.toml/.yaml when
// --config is not given
var configSearchPaths = func() []string {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "veeks"))
	}
	return paths
}

var configDefaults = map[string]interface{}{
	"output": map[string]interface{}{
		"format":      string(render.FormatText),
		"unit_suffix": false,
	},
	"log": map[string]interface{}{
		"level":  log.DefaultLevel().String(),
		"format": log.FormatText.String(),
	},
}

var configRules = config.ValidationRules{
	"output.format":      {Type: "string", OneOf: render.Formats},
	"output.unit_suffix": {Type: "bool"},
	"log.level":          {Type: "string", OneOf: []string{"trace", "debug", "info", "warn", "warning", "error", "fatal"}},
	"log.format":         {Type: "string", OneOf: []string{"text", "json"}},
}

var rootCmd = &cobra.Command{
	Use:   "veeks",
	Short: "veeks - Veek-Date and Millis-of-Day converter",
	Long: `veeks converts between calendar dates and veek-dates (ISO-8601 week
dates written as "YYYYc WWv Dd") and between times of day and millis-of-day.

Examples:
  veeks date 2021-01-01        # 2020c 53v 5d
  veeks veek "2021c 09v 3d"    # 2021-03-03
  veeks millis 13:30           # 48600000
  veeks time 86399999md        # 23:59:59.999`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the root command and prints a failure to stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./veeks.toml or <user config dir>/veeks/veeks.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "", "Output format: "+strings.Join(render.Formats, "|"))
}

// loadSettings reads the configuration, applies flag overrides and builds the
// logger for this invocation
func loadSettings(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
			Defaults:  configDefaults,
		})
	} else {
		cfg, err = config.Discover(config.DiscoveryOptions{
			Paths:     configSearchPaths(),
			Filenames: []string{"veeks"},
			EnvPrefix: EnvPrefix,
			Defaults:  configDefaults,
		})
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}

	formatName := cfg.GetString("output.format")
	if cmd.Flags().Changed("output") {
		formatName = outputFormat
	}
	format, err = render.ParseFormat(formatName)
	if err != nil {
		return err
	}
	withUnit = cfg.GetBool("output.unit_suffix")

	l, err := logging.FromConfig(cfg, "veeks", cmd.ErrOrStderr(), verbose)
	if err != nil {
		return err
	}
	logger = l.WithField("command", cmd.Name())

	logger.Debug("settings loaded", log.Fields{
		"config":      cfg.FilePath(),
		"output":      string(format),
		"unit_suffix": withUnit,
	})
	return nil
}

// output renders a result in the configured format to the command's stdout
func output(cmd *cobra.Command, result *render.Result) error {
	return render.Render(cmd.OutOrStdout(), result, format)
}

// reject logs a conversion failure and hands it back to cobra
func reject(err error, args []string) error {
	logger.WithField("args", strings.Join(args, " ")).LogError(err)
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var mdwErr *mdwerror.Error
	if verbose && errors.As(err, &mdwErr) {
		fmt.Fprintln(w, mdwErr.String())
	}
}
