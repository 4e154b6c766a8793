package output

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/MyCarrier-DevOps/go-pubresolve/internal/pubconfig"
)

// WriteYAML writes the configuration as a YAML document.
func WriteYAML(w io.Writer, cfg pubconfig.Config) error {
	data, err := pubconfig.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// WriteJSON writes the configuration as pretty-printed JSON. The value is
// round-tripped through the YAML model so JSON keys match the YAML field
// names.
func WriteJSON(w io.Writer, cfg pubconfig.Config) error {
	data, err := pubconfig.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling configuration: %w", err)
	}

	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("rebuilding configuration tree: %w", err)
	}

	out, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling configuration to JSON: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("writing JSON output: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
