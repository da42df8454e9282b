package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// record is one result. In text mode each record prints as a single line;
// in json and yaml modes the exported fields are encoded.
type record interface {
	line() string
}

type printer struct {
	format string
	w      io.Writer
}

// printList writes records as lines of text, or as a json/yaml sequence.
func (p printer) printList(records []record) error {
	if p.format == outputText {
		for _, r := range records {
			if _, err := fmt.Fprintln(p.w, r.line()); err != nil {
				return errors.Wrap(err, "write output")
			}
		}
		return nil
	}
	return p.encode(records)
}

// printOne writes a single record, as a line of text or a json/yaml document.
func (p printer) printOne(r record) error {
	if p.format == outputText {
		_, err := fmt.Fprintln(p.w, r.line())
		return errors.Wrap(err, "write output")
	}
	return p.encode(r)
}

func (p printer) encode(v interface{}) error {
	switch p.format {
	case outputJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(v), "encode json")
	case outputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return errors.Wrap(err, "encode yaml")
		}
		_, err = p.w.Write(out)
		return errors.Wrap(err, "write output")
	default:
		return errors.Errorf("unsupported output format %q", p.format)
	}
}
