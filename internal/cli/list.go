package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/sitesplit/pkg/convert"
	"github.com/matzehuels/sitesplit/pkg/userdata"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	prefix      bool // show file names with the ordering prefix
	interactive bool // open the site browser instead of printing a table
}

// listCommand creates the list command.
func (c *CLI) listCommand() *cobra.Command {
	var opts listOpts

	cmd := &cobra.Command{
		Use:   "list <export>",
		Short: "List the sites of an export and the files a split would produce",
		Long: `List every site of an export in order, with the base file name a split
would give it, its toggles and body sizes.

Examples:
  sitesplit list stylus.json
  sitesplit list stylus --prefix
  sitesplit list stylus -i`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("prefix") {
				opts.prefix = c.Config.Prefix
			}
			return runList(cmd.Context(), args[0], opts, c.Config.PrefixWidth)
		},
	}

	cmd.Flags().BoolVarP(&opts.prefix, "prefix", "p", false, "show file names with the position prefix")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse sites interactively")

	return cmd
}

// runList loads an export and prints or browses its sites.
func runList(ctx context.Context, arg string, opts listOpts, minWidth int) error {
	logger := loggerFromContext(ctx)

	path := exportPath(arg)
	data, err := userdata.ImportJSON(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded export", "file", path, "sites", len(data.Sites))

	width := 0
	if opts.prefix {
		width = convert.PrefixWidth(len(data.Sites), minWidth)
	}

	if opts.interactive {
		p := tea.NewProgram(NewSiteListModel(data.Sites, width), tea.WithContext(ctx))
		_, err := p.Run()
		return err
	}

	if len(data.Sites) == 0 {
		printInfo("%s has no sites", path)
		return nil
	}
	fmt.Fprintln(stdout, renderSiteTable(data.Sites, width))
	printStats(fmt.Sprintf("%d sites", len(data.Sites)), fmt.Sprintf("%d libs", len(data.Libs)))
	return nil
}

// exportPath accepts an export given with or without its .json extension.
func exportPath(arg string) string {
	if strings.HasSuffix(arg, ".json") {
		return arg
	}
	if _, err := os.Stat(arg + ".json"); err == nil {
		return arg + ".json"
	}
	return arg
}

// siteRow returns the table cells of the site at index i.
func siteRow(site userdata.SiteEntry, i, width int) []string {
	on := "off"
	if site.Options.On {
		on = "on"
	}
	libs := strings.Join(site.Libs, ", ")
	if libs == "" {
		libs = "—"
	}
	return []string{
		fmt.Sprint(i),
		convert.SiteBaseName(site.ID, i, width),
		site.Name,
		on,
		formatSize(len(site.CSS)),
		formatSize(len(site.JS)),
		libs,
	}
}

// renderSiteTable renders all sites as a bordered table.
func renderSiteTable(sites []userdata.SiteEntry, width int) string {
	rows := make([][]string, len(sites))
	for i, site := range sites {
		rows[i] = siteRow(site, i, width)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "File", "Name", "On", "CSS", "JS", "Libs").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if row >= 0 && row < len(sites) && !sites[row].Options.On {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle()
		})

	return t.Render()
}

// formatSize renders a body length, "—" for empty bodies.
func formatSize(n int) string {
	switch {
	case n == 0:
		return "—"
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	default:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	}
}
