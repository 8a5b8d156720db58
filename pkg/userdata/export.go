package userdata

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/sitesplit/pkg/errors"
)

// Marshal encodes v as JSON. An empty indent produces compact output;
// otherwise each nesting level is prefixed with indent. HTML characters are
// not escaped and no trailing newline is written.
func Marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode")
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// WriteJSON encodes d in compact form and writes it to w.
// The output can be re-read with [ReadJSON].
func WriteJSON(d *UserData, w io.Writer) error {
	data, err := Marshal(d, "")
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write export")
	}
	return nil
}

// ExportJSON writes d to a file at path in compact form.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(d *UserData, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	if err := WriteJSON(d, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}
