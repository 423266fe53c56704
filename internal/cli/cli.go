package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcards/internal/config"
	"github.com/matzehuels/statcards/pkg/buildinfo"
	"github.com/matzehuels/statcards/pkg/cache"
	"github.com/matzehuels/statcards/pkg/integrations/github"
	"github.com/matzehuels/statcards/pkg/integrations/huggingface"
	"github.com/matzehuels/statcards/pkg/integrations/wakatime"
	"github.com/matzehuels/statcards/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and completions.
const appName = "statcards"

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
}

// New creates a new CLI instance writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Statcards renders GitHub, WakaTime and Hugging Face stats as SVG cards",
		Long:         `Statcards serves embeddable SVG cards for contribution calendars, language breakdowns and repository pins, and renders the same cards to files from the command line.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to a TOML config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config named by --config, or the defaults.
func (c *CLI) loadConfig() (*config.Config, error) {
	return config.Load(c.configPath)
}

// newRunner wires the upstream clients and an in-memory result cache, or no
// cache at all when noCache is set.
func (c *CLI) newRunner(cfg *config.Config, noCache bool) *pipeline.Runner {
	opts := cfg.IntegrationOptions()
	sources := pipeline.Sources{
		GitHub:   github.NewClient(cfg.Upstream.GitHubToken, opts),
		WakaTime: wakatime.NewClient(opts),
		Hub:      huggingface.NewClient(cfg.Upstream.HuggingFaceToken, opts),
	}
	store := cache.NewNullCache()
	if !noCache {
		store = cache.NewMemoryCache(cfg.Cache.Capacity, cfg.Cache.TTL.Duration)
	}
	return pipeline.NewRunner(store, nil, c.Logger, sources)
}
