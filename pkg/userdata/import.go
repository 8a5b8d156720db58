package userdata

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/sitesplit/pkg/errors"
)

// ReadJSON decodes an aggregate document from r.
//
// The document must be a JSON object. Missing top-level keys decode to their
// zero values; the settings value is kept as raw JSON. ReadJSON returns an
// INVALID_FORMAT error if the JSON is malformed or a field has the wrong
// type. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*UserData, error) {
	var data UserData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode export")
	}
	return &data, nil
}

// ImportJSON reads the aggregate document at path.
//
// A missing file yields a FILE_NOT_FOUND error; decode failures are reported
// as by [ReadJSON] with the path attached.
func ImportJSON(path string) (*UserData, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	var data UserData
	if err := json.NewDecoder(f).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
	}
	return &data, nil
}

// ReadSettings decodes a settings file (libs and settings, no sites).
func ReadSettings(data []byte) (StrippedUserData, error) {
	var s StrippedUserData
	if err := json.Unmarshal(data, &s); err != nil {
		return StrippedUserData{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode settings")
	}
	return s, nil
}
