package rarity

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/CashPoolRPG_Go/internal/validation"
)

//go:embed schema/*.json
var schemaFS embed.FS

// Format names the encoding of a rarity table document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%s: %s", ErrMsgUnsupportedFormat, path)
	}
}

// Loader reads rarity tables and validates them against the bundled schema.
type Loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a loader backed by the embedded schema.
func NewLoader() *Loader {
	return &Loader{schemaValidator: validation.NewSchemaValidator(schemaFS)}
}

// Load reads a table from path. An empty path yields DefaultTable.
func (l *Loader) Load(path string) (*Table, error) {
	if strings.TrimSpace(path) == "" {
		return DefaultTable(), nil
	}
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rarity table %s: %w", path, err)
	}
	table, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Parse decodes and validates a table document.
func (l *Loader) Parse(data []byte, format Format) (*Table, error) {
	switch format {
	case FormatJSON:
	case FormatYAML:
		converted, err := yamlToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnsupportedFormat, format)
	}

	if err := l.schemaValidator.ValidateBytes(data, SchemaPath); err != nil {
		return nil, err
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse rarity table: %w", err)
	}
	if table.Version != ConfigVersion {
		return nil, fmt.Errorf("%s: %q (expected %s)", ErrMsgVersionMismatch, table.Version, ConfigVersion)
	}
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &table, nil
}

// yamlToJSON re-encodes a YAML document so one schema covers both formats.
func yamlToJSON(data []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML rarity table: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert YAML rarity table: %w", err)
	}
	return out, nil
}
