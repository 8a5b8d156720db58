// Package userdata models the aggregate export document and its split form.
//
// # Overview
//
// An export is a single JSON document holding every site customization a user
// has defined, the shared script libraries those sites may pull in, and an
// opaque settings blob:
//
//	{
//	  "libs": [{"name": "jquery", "src": "https://..."}],
//	  "settings": {"anything": "goes"},
//	  "sites": [
//	    {
//	      "compiledCss": "body{color:red}",
//	      "css": "body { color: red; }",
//	      "id": "https://example.com/*",
//	      "js": "",
//	      "libs": ["jquery"],
//	      "name": "Example",
//	      "options": {"altCSS": false, "altJS": false, "autoImportant": false, "on": true}
//	    }
//	  ]
//	}
//
// The order of "sites" is meaningful and is preserved by every function in
// this package. The "settings" value is carried as raw JSON and never
// interpreted.
//
// # Split Form
//
// [StrippedSite] is the per-site metadata file of the split form: a
// [SiteEntry] without its css and js bodies. [StrippedUserData] is the
// userSettings.json file: the document without its sites.
//
// # Shape Checking
//
// [CheckShape] decides whether an arbitrary JSON file is a stripped site by
// looking for the keys every stripped site carries ([RequiredSiteKeys]). It
// reports a [ShapeResult] rather than a bare boolean so callers can log why a
// file was skipped.
//
// # Import and Export
//
// Use [ImportJSON] / [ReadJSON] to load a document and [ExportJSON] /
// [WriteJSON] to write one in compact form. [Marshal] encodes any value with
// an optional indent and without HTML escaping, so CSS child selectors
// survive as a literal ">".
package userdata
