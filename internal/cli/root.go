package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/sitesplit/pkg/buildinfo"
)

// rootOpts holds the short-flag dispatcher flags of the root command.
type rootOpts struct {
	export string // -c: export base name to split
	prefix bool   // -p: ordering prefix, only with -c
	source string // -s: directory to combine
}

// rootCommand creates the root command. Invoked without a subcommand it
// dispatches on its flags: -c splits, -s combines, anything else prints an
// error indicator and exits normally.
func (c *CLI) rootCommand() *cobra.Command {
	var opts rootOpts

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Split a site customization export into files and back",
		Long: `sitesplit converts a user-style export (one JSON document with every site's
CSS, JS, options and shared libraries) into a directory of editable files,
and combines such a directory back into an export.

Examples:
  sitesplit -c stylus        # stylus.json -> stylus/
  sitesplit -c stylus -p     # same, with 000-style ordering prefixes
  sitesplit -s stylus        # stylus/ -> gen-stylus.json`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.dispatch(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.export, "export", "c", "", "split <name>.json into directory <name>")
	cmd.Flags().BoolVarP(&opts.prefix, "prefix", "p", false, "with -c: prefix file names with the site position")
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "combine directory <dir> into gen-<dir>.json")

	return cmd
}

// dispatch selects the operation from the root flags. -c wins over -s.
func (c *CLI) dispatch(cmd *cobra.Command, opts rootOpts) error {
	ctx := cmd.Context()
	switch {
	case cmd.Flags().Changed("export"):
		convOpts := c.Config.Options()
		if cmd.Flags().Changed("prefix") {
			convOpts.Prefix = opts.prefix
		}
		return runSplit(ctx, opts.export, convOpts)
	case cmd.Flags().Changed("source"):
		return runCombine(ctx, opts.source, c.Config.Options())
	default:
		printError("Invalid arguments!")
		printDetail("Use -c <name> to split an export or -s <dir> to combine a directory")
		return nil
	}
}
