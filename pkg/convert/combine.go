package convert

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/sitesplit/pkg/errors"
	"github.com/matzehuels/sitesplit/pkg/userdata"
)

// CombineResult describes a combine run.
type CombineResult struct {
	Data    *userdata.UserData // assembled export
	Matched []string           // site files, in site order
	Skipped []string           // .json files that are neither sites nor the settings file
	Output  string             // written export path, set by CombineDir
}

type siteFile struct {
	path string
	site userdata.StrippedSite
}

// Combine reads the split form rooted at dir and assembles the export.
//
// Every .json file below dir is parsed; files shaped like a stripped site
// become sites, ordered by path. Sibling .js and .css files fill in the
// bodies and default to "" when absent. Libs and settings come from
// userSettings.json at the root of dir.
//
// Malformed JSON anywhere in the tree, or a missing settings file, is an
// error.
func (c *Converter) Combine(ctx context.Context, dir string) (*CombineResult, error) {
	if err := errors.ValidateSourceDir(dir); err != nil {
		return nil, err
	}
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "source directory %s", dir)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "source directory %s", dir)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", dir)
	}

	settingsPath := filepath.Join(dir, SettingsFileName+".json")
	res := &CombineResult{}
	var files []siteFile

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
		}
		site, shape, err := userdata.ParseStripped(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if !shape.OK {
			if path != settingsPath {
				c.Logger.Debug("skipping non-site file", "file", path, "reason", shape.Reason, "missing", shape.Missing)
				res.Skipped = append(res.Skipped, path)
			}
			return nil
		}

		files = append(files, siteFile{path: path, site: site})
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(files, func(a, b siteFile) int {
		return strings.Compare(a.path, b.path)
	})

	sites := make([]userdata.SiteEntry, 0, len(files))
	for _, f := range files {
		js, err := readOptional(siblingPath(f.path, ".js"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read js for %s", f.path)
		}
		css, err := readOptional(siblingPath(f.path, ".css"))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read css for %s", f.path)
		}
		sites = append(sites, f.site.Expand(js, css))
		res.Matched = append(res.Matched, f.path)
	}

	raw, err := os.ReadFile(settingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeSettingsNotFound, err, "read %s", settingsPath)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", settingsPath)
	}
	settings, err := userdata.ReadSettings(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", settingsPath, err)
	}

	res.Data = userdata.Assemble(settings, sites)
	return res, nil
}

// CombineDir combines dir and writes the compact export to opts.Output, or
// to [OutputPath] in the current working directory when Output is empty.
// The export is written only after every read has succeeded.
func (c *Converter) CombineDir(ctx context.Context, dir string, opts Options) (*CombineResult, error) {
	opts.SetDefaults()

	res, err := c.Combine(ctx, dir)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == "" {
		out = OutputPath(dir, opts.OutputPrefix)
	}
	if err := userdata.ExportJSON(res.Data, out); err != nil {
		return nil, err
	}
	res.Output = out

	c.Logger.Debug("wrote export", "file", out, "sites", len(res.Data.Sites))
	return res, nil
}
