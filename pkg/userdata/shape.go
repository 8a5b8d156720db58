package userdata

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/matzehuels/sitesplit/pkg/errors"
)

// RequiredSiteKeys are the keys every stripped site file carries.
var RequiredSiteKeys = []string{"id", "libs", "compiledCss", "options"}

// ShapeResult is the outcome of a shape check.
type ShapeResult struct {
	OK      bool     // all required keys are present on a JSON object
	Missing []string // required keys that were not found, in RequiredSiteKeys order
	Reason  string   // human-readable explanation when OK is false
}

// CheckShape reports whether data is a JSON object holding every key in
// RequiredSiteKeys. Only key presence is checked; values are not typed.
// Malformed JSON is an error, not a failed check.
func CheckShape(data []byte) (ShapeResult, error) {
	if !gjson.ValidBytes(data) {
		return ShapeResult{}, errors.New(errors.ErrCodeInvalidFormat, "malformed JSON")
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return ShapeResult{Reason: "not a JSON object"}, nil
	}

	var missing []string
	for _, key := range RequiredSiteKeys {
		if !doc.Get(key).Exists() {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return ShapeResult{Missing: missing, Reason: "missing required keys"}, nil
	}
	return ShapeResult{OK: true}, nil
}

// ParseStripped checks the shape of data and, if it matches, decodes it.
// The returned ShapeResult tells a skipped file apart from a decoded one.
func ParseStripped(data []byte) (StrippedSite, ShapeResult, error) {
	res, err := CheckShape(data)
	if err != nil || !res.OK {
		return StrippedSite{}, res, err
	}

	var site StrippedSite
	if err := json.Unmarshal(data, &site); err != nil {
		return StrippedSite{}, res, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode site")
	}
	return site, res, nil
}
