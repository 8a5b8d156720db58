package convert

import (
	"github.com/charmbracelet/log"
)

// Options controls a split or combine run.
type Options struct {
	// Prefix numbers the generated files by site position.
	Prefix bool

	// PrefixWidth is the minimum width of the ordering prefix.
	// Zero means DefaultPrefixWidth.
	PrefixWidth int

	// Indent indents the per-site and settings files. Empty means DefaultIndent.
	Indent string

	// OutputPrefix is prepended to the directory name to build the combined
	// export file name. Empty means DefaultOutputPrefix.
	OutputPrefix string

	// Output overrides the combined export path entirely.
	Output string
}

// SetDefaults fills zero-valued fields with their defaults.
func (o *Options) SetDefaults() {
	if o.PrefixWidth <= 0 {
		o.PrefixWidth = DefaultPrefixWidth
	}
	if o.Indent == "" {
		o.Indent = DefaultIndent
	}
	if o.OutputPrefix == "" {
		o.OutputPrefix = DefaultOutputPrefix
	}
}

// Converter runs split and combine operations.
//
// The Converter holds no state besides its logger; a single value can serve
// any number of sequential runs.
type Converter struct {
	Logger *log.Logger
}

// New creates a Converter. If logger is nil, log.Default() is used.
func New(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.Default()
	}
	return &Converter{Logger: logger}
}
