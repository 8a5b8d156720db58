package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitesplit/pkg/convert"
)

// splitCommand creates the split command.
func (c *CLI) splitCommand() *cobra.Command {
	var (
		prefix bool
		width  int
	)

	cmd := &cobra.Command{
		Use:   "split <name>",
		Short: "Split <name>.json into a directory of per-site files",
		Long: `Split an export into directory <name>: one .json metadata file per site,
.js and .css files for non-empty bodies, and userSettings.json for the shared
libraries and settings.

Examples:
  sitesplit split stylus
  sitesplit split stylus --prefix
  sitesplit split backups/stylus.json --prefix --width 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.Options()
			if cmd.Flags().Changed("prefix") {
				opts.Prefix = prefix
			}
			if cmd.Flags().Changed("width") {
				opts.PrefixWidth = width
			}
			return runSplit(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVarP(&prefix, "prefix", "p", false, "prefix file names with the site position")
	cmd.Flags().IntVar(&width, "width", convert.DefaultPrefixWidth, "minimum width of the position prefix")

	return cmd
}

// runSplit splits an export and reports the result.
func runSplit(ctx context.Context, name string, opts convert.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Info("Splitting export", "name", name, "prefix", opts.Prefix)

	res, err := newConverter(ctx).SplitFile(ctx, name, opts)
	if err != nil {
		logger.Error("Split failed", "name", name, "elapsed", prog.elapsed())
		return err
	}

	prog.done(fmt.Sprintf("Split %d sites into %s", res.Sites, res.Dir))

	printSuccess("Split %d sites", res.Sites)
	printFile(res.Dir + string(filepath.Separator))
	stats := []string{fmt.Sprintf("%d files", len(res.Files))}
	if res.PrefixWidth > 0 {
		stats = append(stats, fmt.Sprintf("%d-digit prefix", res.PrefixWidth))
	}
	printStats(stats...)
	return nil
}
