package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/trapseq/internal/config"
)

// texter is implemented by results with a human-readable rendering.
type texter interface {
	text(w io.Writer)
}

// write encodes v to w in the configured format.
func write(w io.Writer, format string, v any) error {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}

		return enc.Close()
	}
	if t, ok := v.(texter); ok {
		t.text(w)

		return nil
	}
	_, err := fmt.Fprintln(w, v)

	return err
}
