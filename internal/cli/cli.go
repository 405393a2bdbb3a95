package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/elbow/internal/config"
	"github.com/matzehuels/elbow/pkg/buildinfo"
	"github.com/matzehuels/elbow/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "elbow"

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

	configPath string
	config     *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
//
// Before any subcommand runs, the configuration file is loaded, the logger is
// attached to the command context, and debug-level observability hooks are
// installed.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Elbow routes orthogonal connectors between anchored points",
		Long: `Elbow computes axis-aligned polyline routes between two points, each of
which may require the line to leave or arrive along a facing direction.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			installHooks(c.Logger)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/elbow/config.toml)")

	// Register all subcommands
	root.AddCommand(c.routeCommand())
	root.AddCommand(c.batchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// settings returns the loaded configuration, falling back to defaults for
// commands run without the root pre-run.
func (c *CLI) settings() *config.Config {
	if c.config == nil {
		return config.Default()
	}
	return c.config
}

// installHooks routes observability events to the debug log.
func installHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetRouteHooks(h)
	observability.SetHTTPHooks(h)
}
