// Package cli implements the sitesplit command-line interface.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sitesplit/pkg/buildinfo"
	"github.com/matzehuels/sitesplit/pkg/config"
	"github.com/matzehuels/sitesplit/pkg/convert"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "sitesplit"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// The root command itself is the short-flag dispatcher (-c, -p, -s); the
// subcommands expose the same operations with positional arguments.
func (c *CLI) RootCommand() *cobra.Command {
	root := c.rootCommand()

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.FileName+" or ~/.config/"+appName+"/config.toml)")

	// Register all subcommands
	root.AddCommand(c.splitCommand())
	root.AddCommand(c.combineCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig reads the config file and applies its logging preference.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}
	if cfg.Path() != "" {
		c.Logger.Debug("loaded config", "file", cfg.Path())
	}
	return nil
}

// newConverter creates a converter using the logger attached to ctx.
func newConverter(ctx context.Context) *convert.Converter {
	return convert.New(loggerFromContext(ctx))
}
