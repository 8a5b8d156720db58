package convert

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/sitesplit/pkg/errors"
	"github.com/matzehuels/sitesplit/pkg/userdata"
)

// SplitResult describes the files produced by a split.
type SplitResult struct {
	Dir         string   // target directory
	Sites       int      // number of sites written
	PrefixWidth int      // width of the ordering prefix, 0 when disabled
	Files       []string // every file written, in write order
}

// Split writes data into dir in split form. The directory is created if it
// does not exist; existing files with the same names are overwritten.
//
// Split stops at the first failed write and returns the files written so far
// alongside the error.
func (c *Converter) Split(ctx context.Context, data *userdata.UserData, dir string, opts Options) (*SplitResult, error) {
	opts.SetDefaults()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", dir)
	}

	res := &SplitResult{Dir: dir}
	if opts.Prefix {
		res.PrefixWidth = PrefixWidth(len(data.Sites), opts.PrefixWidth)
	}

	seen := make(map[string]string, len(data.Sites))
	for i, site := range data.Sites {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		base := SiteBaseName(site.ID, i, res.PrefixWidth)
		if prev, ok := seen[base]; ok {
			c.Logger.Warn("site files overwritten by a later site", "file", base, "first", prev, "second", site.ID)
		}
		seen[base] = site.ID

		meta, err := userdata.Marshal(site.Strip(), opts.Indent)
		if err != nil {
			return res, err
		}
		if err := res.write(filepath.Join(dir, base+".json"), meta); err != nil {
			return res, err
		}
		if site.JS != "" {
			if err := res.write(filepath.Join(dir, base+".js"), []byte(site.JS)); err != nil {
				return res, err
			}
		}
		if site.CSS != "" {
			if err := res.write(filepath.Join(dir, base+".css"), []byte(site.CSS)); err != nil {
				return res, err
			}
		}
		res.Sites++

		c.Logger.Debug("wrote site", "id", site.ID, "file", base)
	}

	settings, err := userdata.Marshal(data.Stripped(), opts.Indent)
	if err != nil {
		return res, err
	}
	if err := res.write(filepath.Join(dir, SettingsFileName+".json"), settings); err != nil {
		return res, err
	}

	return res, nil
}

// SplitFile reads the export <name>.json and splits it into directory
// <name>. A trailing ".json" on name is ignored. Nothing is written if the
// export cannot be read.
func (c *Converter) SplitFile(ctx context.Context, name string, opts Options) (*SplitResult, error) {
	name = strings.TrimSuffix(name, ".json")
	if err := errors.ValidateExportName(name); err != nil {
		return nil, err
	}

	data, err := userdata.ImportJSON(name + ".json")
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded export", "file", name+".json", "sites", len(data.Sites), "libs", len(data.Libs))

	return c.Split(ctx, data, name, opts)
}

func (r *SplitResult) write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	r.Files = append(r.Files, path)
	return nil
}
