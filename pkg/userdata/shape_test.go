package userdata

import (
	"reflect"
	"testing"

	"github.com/matzehuels/sitesplit/pkg/errors"
)

func TestCheckShape(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantOK      bool
		wantMissing []string
	}{
		{
			name:   "full stripped site",
			input:  `{"compiledCss":"","id":"a","libs":[],"options":{"altCSS":false,"altJS":false,"autoImportant":false,"on":true}}`,
			wantOK: true,
		},
		{
			name:   "extra keys allowed",
			input:  `{"compiledCss":"","id":"a","libs":[],"options":{},"name":"x","extra":1}`,
			wantOK: true,
		},
		{
			name:   "null values still count as present",
			input:  `{"compiledCss":null,"id":null,"libs":null,"options":null}`,
			wantOK: true,
		},
		{
			name:        "settings file",
			input:       `{"libs":[],"settings":{"x":1}}`,
			wantMissing: []string{"id", "compiledCss", "options"},
		},
		{
			name:        "missing options",
			input:       `{"compiledCss":"","id":"a","libs":[]}`,
			wantMissing: []string{"options"},
		},
		{
			name:        "empty object",
			input:       `{}`,
			wantMissing: []string{"id", "libs", "compiledCss", "options"},
		},
		{
			name:  "array",
			input: `[{"compiledCss":"","id":"a","libs":[],"options":{}}]`,
		},
		{
			name:  "scalar",
			input: `"id"`,
		},
		{
			name:        "nested keys do not count",
			input:       `{"site":{"compiledCss":"","id":"a","libs":[],"options":{}}}`,
			wantMissing: []string{"id", "libs", "compiledCss", "options"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CheckShape([]byte(tt.input))
			if err != nil {
				t.Fatalf("CheckShape() error: %v", err)
			}
			if res.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v (reason %q)", res.OK, tt.wantOK, res.Reason)
			}
			if !reflect.DeepEqual(res.Missing, tt.wantMissing) {
				t.Errorf("Missing = %v, want %v", res.Missing, tt.wantMissing)
			}
			if !res.OK && res.Reason == "" {
				t.Error("failed check should carry a reason")
			}
		})
	}
}

func TestCheckShapeMalformed(t *testing.T) {
	for _, input := range []string{`{"id":`, ``, `{id: "a"}`} {
		_, err := CheckShape([]byte(input))
		if !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("CheckShape(%q) error = %v, want INVALID_FORMAT", input, err)
		}
	}
}

func TestParseStripped(t *testing.T) {
	input := `{
	"compiledCss": "a>b{color:red}",
	"id": "https://example.com/*",
	"libs": ["jquery", "lodash"],
	"options": {"altCSS": true, "altJS": false, "autoImportant": true, "on": true},
	"name": "Example"
}`
	site, res, err := ParseStripped([]byte(input))
	if err != nil {
		t.Fatalf("ParseStripped() error: %v", err)
	}
	if !res.OK {
		t.Fatalf("ParseStripped() shape not OK: %+v", res)
	}

	want := StrippedSite{
		CompiledCSS: "a>b{color:red}",
		ID:          "https://example.com/*",
		Libs:        []string{"jquery", "lodash"},
		Options:     Options{AltCSS: true, AutoImportant: true, On: true},
		Name:        "Example",
	}
	if !reflect.DeepEqual(site, want) {
		t.Errorf("ParseStripped() = %+v, want %+v", site, want)
	}
}

func TestParseStrippedSkipsOtherShapes(t *testing.T) {
	site, res, err := ParseStripped([]byte(`{"libs":[],"settings":null}`))
	if err != nil {
		t.Fatalf("ParseStripped() error: %v", err)
	}
	if res.OK {
		t.Error("settings document should not match the site shape")
	}
	if site.ID != "" {
		t.Errorf("skipped file should decode to zero value, got %+v", site)
	}
}

func TestParseStrippedWrongTypes(t *testing.T) {
	_, res, err := ParseStripped([]byte(`{"compiledCss":"","id":42,"libs":[],"options":{}}`))
	if !res.OK {
		t.Fatal("shape check should pass on key presence alone")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}
