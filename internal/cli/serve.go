package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/statcards/internal/config"
	"github.com/matzehuels/statcards/internal/server"
	"github.com/matzehuels/statcards/pkg/observability"
)

type serveOpts struct {
	host     string
	port     int
	cacheTTL time.Duration
	theme    string
}

// serveCommand creates the serve command, which runs the HTTP card service.
func (c *CLI) serveCommand() *cobra.Command {
	opts := &serveOpts{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP card service",
		Long: `Run the HTTP card service.

Configuration is read from the TOML file, .env and environment variables;
flags given here override all of them.`,
		Example: `  statcards serve
  statcards serve --port 8080 --cache-ttl 30m
  GITHUB_TOKEN=ghp_xxx statcards serve --host 0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			applyServeFlags(cmd, cfg, opts)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return c.runServe(cmd, cfg)
		},
	}

	cmd.Flags().StringVar(&opts.host, "host", config.DefaultHost, "listen host")
	cmd.Flags().IntVar(&opts.port, "port", config.DefaultPort, "listen port")
	cmd.Flags().DurationVar(&opts.cacheTTL, "cache-ttl", 0, "result cache TTL (e.g. 2h)")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "default theme for requests without one")

	return cmd
}

// applyServeFlags copies explicitly set flags over the loaded config.
func applyServeFlags(cmd *cobra.Command, cfg *config.Config, opts *serveOpts) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Server.Host = opts.host
	}
	if flags.Changed("port") {
		cfg.Server.Port = opts.port
	}
	if flags.Changed("cache-ttl") {
		cfg.Cache.TTL.Duration = opts.cacheTTL
	}
	if flags.Changed("theme") {
		cfg.DefaultTheme = opts.theme
	}
}

func (c *CLI) runServe(cmd *cobra.Command, cfg *config.Config) error {
	logger := loggerFromContext(cmd.Context())
	observability.SetAll(observability.NewLogHooks(logger))
	defer observability.Reset()

	runner := c.newRunner(cfg, false)
	defer runner.Close()

	if cfg.Upstream.GitHubToken == "" {
		logger.Warn("GITHUB_TOKEN is not set; GitHub cards will fail with bad credentials")
	}

	srv := server.New(runner, logger, server.Options{
		DefaultTheme: cfg.DefaultTheme,
		CacheTTL:     cfg.Cache.TTL.Duration,
	})
	printSuccess("Serving cards on %s", StyleLink.Render("http://"+cfg.Addr()+"/v1"))
	printKeyValue("theme", cfg.DefaultTheme)
	printKeyValue("cache ttl", cfg.Cache.TTL.String())
	return srv.ListenAndServe(cmd.Context(), cfg.Addr())
}
