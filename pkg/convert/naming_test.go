package convert

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileName(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"http://a.com/*", "http___a.com__"},
		{"https://example.com/path?q=1", "https___example.com_path?q=1"},
		{`C:\sites\*`, "C__sites__"},
		{"plain.example.org", "plain.example.org"},
		{"*://*.example.org/*", "_____.example.org__"},
		{"émoji 🎨 and spaces", "émoji 🎨 and spaces"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := FileName(tt.id); got != tt.want {
				t.Errorf("FileName(%q) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestPrefixWidth(t *testing.T) {
	tests := []struct {
		n, min, want int
	}{
		{0, 0, 3},
		{1, 0, 3},
		{999, 0, 3},
		{1000, 0, 3},
		{1001, 0, 4},
		{10001, 0, 5},
		{5, 1, 1},
		{11, 1, 2},
		{5, 6, 6},
	}

	for _, tt := range tests {
		if got := PrefixWidth(tt.n, tt.min); got != tt.want {
			t.Errorf("PrefixWidth(%d, %d) = %d, want %d", tt.n, tt.min, got, tt.want)
		}
	}
}

func TestSiteBaseName(t *testing.T) {
	tests := []struct {
		id    string
		index int
		width int
		want  string
	}{
		{"http://a.com/*", 0, 3, "000http___a.com__"},
		{"b.com", 42, 3, "042b.com"},
		{"b.com", 1234, 4, "1234b.com"},
		{"b.com", 7, 0, "b.com"},
	}

	for _, tt := range tests {
		if got := SiteBaseName(tt.id, tt.index, tt.width); got != tt.want {
			t.Errorf("SiteBaseName(%q, %d, %d) = %q, want %q", tt.id, tt.index, tt.width, got, tt.want)
		}
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		dir, prefix, want string
	}{
		{"sites", "gen-", "gen-sites.json"},
		{"sites/", "gen-", "gen-sites.json"},
		{filepath.Join("backups", "sites"), "gen-", "gen-sites.json"},
		{"sites", "out.", "out.sites.json"},
	}

	for _, tt := range tests {
		if got := OutputPath(tt.dir, tt.prefix); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.dir, tt.prefix, got, tt.want)
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := OutputPath(".", "gen-"), "gen-"+filepath.Base(wd)+".json"; got != want {
		t.Errorf("OutputPath(\".\") = %q, want %q", got, want)
	}
}

func TestSiblingPath(t *testing.T) {
	if got := siblingPath(filepath.Join("d", "000a.json"), ".css"); got != filepath.Join("d", "000a.css") {
		t.Errorf("siblingPath() = %q", got)
	}
	if got := siblingPath("a.json.json", ".js"); got != "a.json.js" {
		t.Errorf("siblingPath() = %q, only the last extension should change", got)
	}
}

func TestReadOptional(t *testing.T) {
	dir := t.TempDir()

	got, err := readOptional(filepath.Join(dir, "missing.js"))
	if err != nil || got != "" {
		t.Errorf("readOptional(missing) = %q, %v", got, err)
	}

	path := filepath.Join(dir, "a.js")
	if err := os.WriteFile(path, []byte("alert(1)"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err = readOptional(path)
	if err != nil || got != "alert(1)" {
		t.Errorf("readOptional(a.js) = %q, %v", got, err)
	}

	if _, err := readOptional(dir); err == nil {
		t.Error("readOptional(directory) should fail")
	}
}
