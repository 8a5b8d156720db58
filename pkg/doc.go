// Package pkg provides the core libraries for sitesplit.
//
// # Overview
//
// sitesplit turns a site customization export (one JSON document holding the
// CSS, JS, options and library references of every site) into a directory of
// editable files, and combines such a directory back into an export:
//
//	stylus.json                    stylus/
//	  libs, settings     split →     userSettings.json
//	  sites[0]                       000http___a.com__.json
//	  sites[1]          ← combine    001b.com.json, 001b.com.js, 001b.com.css
//
// # Main Packages
//
// [userdata] - The export data model, the split-form site footprint, the
// raw-JSON shape check used to recognize site files, and JSON import/export.
//
// [convert] - The split and combine operations, file naming and the ordering
// prefix.
//
// [config] - The optional TOML configuration file.
//
// [errors] - Coded errors shared by all packages.
//
// # Quick Start
//
//	conv := convert.New(nil)
//
//	// stylus.json -> stylus/
//	res, err := conv.SplitFile(ctx, "stylus", convert.Options{Prefix: true})
//
//	// stylus/ -> gen-stylus.json
//	out, err := conv.CombineDir(ctx, "stylus", convert.Options{})
//
// [userdata]: https://pkg.go.dev/github.com/matzehuels/sitesplit/pkg/userdata
// [convert]: https://pkg.go.dev/github.com/matzehuels/sitesplit/pkg/convert
// [config]: https://pkg.go.dev/github.com/matzehuels/sitesplit/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/sitesplit/pkg/errors
package pkg
