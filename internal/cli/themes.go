package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/statcards/pkg/render/theme"
)

// themesCommand lists the built-in themes with a swatch of each palette.
func (c *CLI) themesCommand() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List the built-in card themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range theme.Names() {
				if plain {
					fmt.Fprintln(out, name)
					continue
				}
				t, err := theme.Lookup(name)
				if err != nil {
					return err
				}
				printKeyValueWidth(name, swatch(t), 24)
			}
			if !plain {
				printNextStep("Use one", appName+" render activity <user> --theme <name>")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "print names only")
	return cmd
}

// swatch renders the palette followed by the activity ramp as colored blocks.
func swatch(t theme.Theme) string {
	p := t.Palette
	var b strings.Builder
	for _, c := range []string{p.Background, p.SurfaceBackground, p.Text, p.Header, p.MonoIcon} {
		b.WriteString(block(c))
	}
	b.WriteString(" ")
	for _, c := range t.Activity {
		b.WriteString(block(c))
	}
	return b.String()
}

func block(color string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(color)).Render("  ")
}
