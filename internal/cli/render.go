package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/statcards/pkg/errors"
	"github.com/matzehuels/statcards/pkg/pipeline"
	"github.com/matzehuels/statcards/pkg/render/card"
	"github.com/matzehuels/statcards/pkg/render/theme"
	"github.com/matzehuels/statcards/pkg/stats"
)

// renderOpts are the flags shared by every render subcommand.
type renderOpts struct {
	output    string
	theme     string
	showOwner bool
	noCache   bool
}

// cardJob is one card to render. fetch stores its result in the closure and
// reports a cache hit; render draws the stored result.
type cardJob struct {
	name   string
	fetch  func(ctx context.Context, r *pipeline.Runner) (bool, error)
	render func(opts ...card.Option) ([]byte, error)
	extra  []card.Option
}

// renderCommand creates the render command with one subcommand per card.
func (c *CLI) renderCommand() *cobra.Command {
	opts := &renderOpts{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a card to an SVG file",
		Long: `Render a card to an SVG file without running the server.

Upstream failures still produce a file: the matching error card is written
and a warning is printed.`,
		Example: `  statcards render activity octocat --period year
  statcards render langs octocat --source wakatime --theme dark
  statcards render repo cli/cli --show-owner -o pin.svg
  statcards render hub google/gemma-7b --type model`,
	}

	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output file (default <card>.svg)")
	cmd.PersistentFlags().StringVar(&opts.theme, "theme", "", "card theme (see 'statcards themes')")
	cmd.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "skip the result cache")

	cmd.AddCommand(c.renderActivityCommand(opts))
	cmd.AddCommand(c.renderLangsCommand(opts))
	cmd.AddCommand(c.renderRepoCommand(opts))
	cmd.AddCommand(c.renderGistCommand(opts))
	cmd.AddCommand(c.renderHubCommand(opts))

	return cmd
}

func (c *CLI) renderActivityCommand(opts *renderOpts) *cobra.Command {
	var period string
	var noTitle bool

	cmd := &cobra.Command{
		Use:   "activity <user>",
		Short: "Render a GitHub contribution calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := args[0]
			var cal stats.Calendar
			return c.runCard(cmd.Context(), opts, cardJob{
				name: "activity",
				fetch: func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					cal, hit, err = r.Activity(ctx, user, pipeline.ParsePeriod(period))
					return hit, err
				},
				render: func(o ...card.Option) ([]byte, error) { return card.Activity(cal, user, o...) },
				extra:  []card.Option{card.WithTitle(!noTitle)},
			})
		},
	}

	cmd.Flags().StringVar(&period, "period", string(pipeline.DefaultPeriod), "window: year, 6_months or 3_months")
	cmd.Flags().BoolVar(&noTitle, "no-title", false, "omit the card title")
	return cmd
}

func (c *CLI) renderLangsCommand(opts *renderOpts) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "langs <user>",
		Short: "Render a most-used-languages card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := args[0]
			var langs []stats.Language
			var fetch func(ctx context.Context, r *pipeline.Runner) (bool, error)
			switch source {
			case "github":
				fetch = func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					langs, hit, err = r.GitHubLanguages(ctx, user)
					return hit, err
				}
			case "wakatime":
				fetch = func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					langs, hit, err = r.WakaTimeLanguages(ctx, user)
					return hit, err
				}
			default:
				return fmt.Errorf("unknown source %q (want github or wakatime)", source)
			}
			return c.runCard(cmd.Context(), opts, cardJob{
				name:   "langs",
				fetch:  fetch,
				render: func(o ...card.Option) ([]byte, error) { return card.Languages(langs, o...) },
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "github", "language source: github or wakatime")
	return cmd
}

func (c *CLI) renderRepoCommand(opts *renderOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repo <owner>/<repo>",
		Short: "Render a GitHub repository pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			owner, name, err := splitRepo(args[0])
			if err != nil {
				return err
			}
			var repo stats.Repo
			return c.runCard(cmd.Context(), opts, cardJob{
				name: "repo",
				fetch: func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					repo, hit, err = r.Repo(ctx, owner, name)
					return hit, err
				},
				render: func(o ...card.Option) ([]byte, error) { return card.Repo(repo, o...) },
			})
		},
	}
	addShowOwner(cmd, opts)
	return cmd
}

func (c *CLI) renderGistCommand(opts *renderOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gist <id>",
		Short: "Render a GitHub gist pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			var gist stats.Gist
			return c.runCard(cmd.Context(), opts, cardJob{
				name: "gist",
				fetch: func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					gist, hit, err = r.Gist(ctx, id)
					return hit, err
				},
				render: func(o ...card.Option) ([]byte, error) { return card.Gist(gist, o...) },
			})
		},
	}
	addShowOwner(cmd, opts)
	return cmd
}

func (c *CLI) renderHubCommand(opts *renderOpts) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "hub <owner>/<repo>",
		Short: "Render a Hugging Face repository pin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := stats.ParseHubKind(kindName)
			if !ok {
				return fmt.Errorf("unknown repository type %q (want model, dataset or space)", kindName)
			}
			owner, name, err := splitRepo(args[0])
			if err != nil {
				return err
			}
			var hub stats.Hub
			return c.runCard(cmd.Context(), opts, cardJob{
				name: "hub",
				fetch: func(ctx context.Context, r *pipeline.Runner) (hit bool, err error) {
					hub, hit, err = r.Hub(ctx, kind, owner, name)
					return hit, err
				},
				render: func(o ...card.Option) ([]byte, error) { return card.Hub(hub, o...) },
			})
		},
	}
	cmd.Flags().StringVar(&kindName, "type", string(stats.HubModel), "repository type: model, dataset or space")
	addShowOwner(cmd, opts)
	return cmd
}

func addShowOwner(cmd *cobra.Command, opts *renderOpts) {
	cmd.Flags().BoolVar(&opts.showOwner, "show-owner", false, "prefix the name with its owner")
}

// splitRepo parses "owner/repo".
func splitRepo(s string) (string, string, error) {
	owner, name, ok := strings.Cut(s, "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid repository %q (want owner/repo)", s)
	}
	return owner, name, nil
}

// runCard fetches, renders and writes one card. An upstream failure writes
// the error card instead and is reported as a warning, not an error.
func (c *CLI) runCard(ctx context.Context, opts *renderOpts, job cardJob) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	th, err := theme.Resolve(opts.theme, cfg.DefaultTheme)
	if err != nil {
		return err
	}

	runner := c.newRunner(cfg, opts.noCache)
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Fetching "+job.name+"...")
	spinner.Start()
	hit, fetchErr := job.fetch(ctx, runner)
	spinner.Stop()
	if spinner.Cancelled() {
		return ctx.Err()
	}
	prog.done("Fetched " + job.name)

	cardOpts := append([]card.Option{
		card.WithTheme(th),
		card.WithContext(ctx),
		card.WithOwner(opts.showOwner),
	}, job.extra...)

	var svg []byte
	if fetchErr != nil {
		lines := card.LinesFor(errs.ClassOf(fetchErr))
		printWarning("%s", lines.First)
		printDetail("%s", errs.UserMessage(fetchErr))
		svg, err = card.Error(fetchErr, cardOpts...)
	} else {
		svg, err = job.render(cardOpts...)
	}
	if err != nil {
		return err
	}

	path := opts.output
	if path == "" {
		path = job.name + ".svg"
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return err
	}

	if fetchErr == nil {
		printSuccess("Rendered %s card", job.name)
		printStatus(th.Name, hit)
	}
	printFile(path)
	return nil
}
