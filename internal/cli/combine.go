package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/sitesplit/pkg/convert"
)

// combineCommand creates the combine command.
func (c *CLI) combineCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "combine <dir>",
		Short: "Combine a directory of per-site files into gen-<dir>.json",
		Long: `Combine a split directory back into a single export. Every .json file shaped
like a site is included, ordered by path; other .json files are skipped. The
export is written to gen-<dir>.json in the current directory.

Examples:
  sitesplit combine stylus
  sitesplit combine stylus -o stylus-edited.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.Config.Options()
			opts.Output = output
			return runCombine(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default gen-<dir>.json)")

	return cmd
}

// runCombine combines a directory and reports the result.
func runCombine(ctx context.Context, dir string, opts convert.Options) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Info("Combining directory", "dir", dir)

	res, err := newConverter(ctx).CombineDir(ctx, dir, opts)
	if err != nil {
		logger.Error("Combine failed", "dir", dir, "elapsed", prog.elapsed())
		return err
	}

	prog.done(fmt.Sprintf("Combined %d sites into %s", len(res.Data.Sites), res.Output))

	printSuccess("Combined %d sites", len(res.Data.Sites))
	printFile(res.Output)
	stats := []string{fmt.Sprintf("%d libs", len(res.Data.Libs))}
	if n := len(res.Skipped); n > 0 {
		stats = append(stats, fmt.Sprintf("%d other json files skipped", n))
	}
	printStats(stats...)
	if len(res.Data.Sites) == 0 {
		printWarning("No site files found in %s", dir)
	}
	return nil
}
