package userdata

import "encoding/json"

// Lib is a shared script reference available to every site.
type Lib struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

// Options are the per-site behaviour toggles. The shape is fixed.
type Options struct {
	AltCSS        bool `json:"altCSS"`
	AltJS         bool `json:"altJS"`
	AutoImportant bool `json:"autoImportant"`
	On            bool `json:"on"`
}

// SiteEntry is one customization rule for a target site or URL pattern.
type SiteEntry struct {
	CompiledCSS string   `json:"compiledCss"`
	CSS         string   `json:"css"`
	ID          string   `json:"id"`
	JS          string   `json:"js"`
	Libs        []string `json:"libs"`
	Name        string   `json:"name"`
	Options     Options  `json:"options"`
}

// UserData is the aggregate export document.
type UserData struct {
	Libs     []Lib           `json:"libs"`
	Settings json.RawMessage `json:"settings,omitempty"`
	Sites    []SiteEntry     `json:"sites"`
}

// StrippedSite is a SiteEntry without its css and js bodies, as stored in a
// per-site metadata file. Name is omitted when empty.
type StrippedSite struct {
	CompiledCSS string   `json:"compiledCss"`
	ID          string   `json:"id"`
	Libs        []string `json:"libs"`
	Options     Options  `json:"options"`
	Name        string   `json:"name,omitempty"`
}

// StrippedUserData is a UserData without its sites, as stored in the
// settings file of the split form.
type StrippedUserData struct {
	Libs     []Lib           `json:"libs"`
	Settings json.RawMessage `json:"settings,omitempty"`
}

// Strip drops the css and js bodies of s.
func (s SiteEntry) Strip() StrippedSite {
	return StrippedSite{
		CompiledCSS: s.CompiledCSS,
		ID:          s.ID,
		Libs:        s.Libs,
		Options:     s.Options,
		Name:        s.Name,
	}
}

// Expand rebuilds a full SiteEntry from stripped metadata and its bodies.
func (s StrippedSite) Expand(js, css string) SiteEntry {
	return SiteEntry{
		CompiledCSS: s.CompiledCSS,
		CSS:         css,
		ID:          s.ID,
		JS:          js,
		Libs:        s.Libs,
		Name:        s.Name,
		Options:     s.Options,
	}
}

// Stripped returns the document without its sites.
func (d *UserData) Stripped() StrippedUserData {
	return StrippedUserData{Libs: d.Libs, Settings: d.Settings}
}

// Assemble joins a settings document with a list of sites.
func Assemble(settings StrippedUserData, sites []SiteEntry) *UserData {
	if sites == nil {
		sites = []SiteEntry{}
	}
	return &UserData{
		Libs:     settings.Libs,
		Settings: settings.Settings,
		Sites:    sites,
	}
}
