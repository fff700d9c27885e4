// Package commands implements the findprog command tree.
package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jongio/findprog/binpath"
	"github.com/jongio/findprog/cliout"
	"github.com/jongio/findprog/logutil"
	"github.com/jongio/findprog/version"
)

// ErrNotFound is returned when at least one requested program is missing.
// The command has already reported which ones, so callers only set the exit code.
var ErrNotFound = errors.New("program not found")

// CLI is the findprog command line interface.
type CLI struct {
	rootCmd *cobra.Command

	debug          bool
	structuredLogs bool
	logLevel       string
	color          string
	output         string
	populate       string

	cache *binpath.Cache
}

// New creates the command tree.
func New() *CLI {
	c := &CLI{}

	rootCmd := &cobra.Command{
		Use:               "findprog",
		Short:             "Locate programs on the executable search path",
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version.Version,
		PersistentPreRunE: c.setup,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, built: %s)\n",
		version.GitCommit,
		version.BuildDate,
	))

	c.addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(c.newWhichCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newToolchainCmd())
	rootCmd.AddCommand(version.NewCommand(version.New("findprog")))

	c.rootCmd = rootCmd
	return c
}

// Execute runs the root command.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for cobra's own messages.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// addGlobalFlags registers flags shared by every subcommand. Environment
// variables supply the defaults so an explicit flag always wins.
func (c *CLI) addGlobalFlags(flags *pflag.FlagSet) {
	flags.BoolVar(&c.debug, "debug", false, "Enable debug logging (or set "+logutil.EnvDebug+"=true)")
	flags.BoolVar(&c.structuredLogs, "structured-logs", false, "Emit logs as JSON")
	flags.StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error (--debug overrides)")
	flags.StringVar(&c.color, "color", "auto", "Colorize output: auto, always, never")
	flags.StringVarP(&c.output, "output", "o", "default", "Output format: default, json, yaml")
	flags.StringVar(&c.populate, "populate", os.Getenv(binpath.EnvPopulate),
		"When to scan the search path: miss (every cache miss) or once (default from "+binpath.EnvPopulate+")")
}

func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	debug := c.debug || logutil.IsDebugEnabled()
	logutil.SetupLogger(debug, c.structuredLogs)
	if !debug {
		level, err := parseLogLevel(c.logLevel)
		if err != nil {
			return err
		}
		logutil.SetLevel(level)
	}

	if err := cliout.SetFormat(c.output); err != nil {
		return err
	}
	if err := setColor(c.color); err != nil {
		return err
	}

	policy, err := binpath.ParsePolicy(c.populate)
	if err != nil {
		return fmt.Errorf("--populate: %w", err)
	}
	c.cache = binpath.New(binpath.Options{Policy: policy})

	logutil.Debug("findprog starting", "command", cmd.Name(), "policy", policy.String(),
		"level", logutil.GetLevel().String())
	return nil
}

func parseLogLevel(s string) (logutil.Level, error) {
	switch strings.ToLower(s) {
	case "debug", "info", "warn", "warning", "error":
		return logutil.ParseLevel(s), nil
	default:
		return logutil.LevelInfo, fmt.Errorf("invalid --log-level value %q (valid options: debug, info, warn, error)", s)
	}
}

func setColor(mode string) error {
	switch strings.ToLower(mode) {
	case "auto":
		cliout.AutoColor()
	case "always":
		cliout.ForceColor()
	case "never":
		cliout.NoColor()
	default:
		return fmt.Errorf("invalid --color value %q (valid options: auto, always, never)", mode)
	}
	return nil
}
