package sourcefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/strataconf/strata"
	"gopkg.in/yaml.v3"
)

// Options configures file source behavior.
type Options struct {
	// Format: "toml", "json", or "yaml". Auto-detected from the file
	// extension if empty.
	Format string

	// Required: if true, a missing file is an error. Default: false (a
	// missing file contributes nothing).
	Required bool

	// AllowSecrets permits secret-tagged fields to be populated from this
	// file.
	AllowSecrets bool
}

type fileSource struct {
	path string
	opts Options
}

// New creates a file-backed configuration source. The file's contents become
// one partial configuration snapshot; precedence against other sources is
// decided by the Loader ordering.
func New(path string, opts Options) strata.Source {
	return &fileSource{path: path, opts: opts}
}

func (f *fileSource) AllowsSecrets() bool { return f.opts.AllowSecrets }

func (f *fileSource) String() string { return "file:" + filepath.Base(f.path) }

// Provide reads and parses the file, then hands the raw tree to the builder.
func (f *fileSource) Provide(ctx context.Context, dst strata.Unmarshaler) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) && !f.opts.Required {
			return nil
		}
		return fmt.Errorf("read config file %s: %w", f.path, err)
	}

	format := f.opts.Format
	if format == "" {
		format = inferFormat(f.path)
	}

	var raw map[string]any
	switch format {
	case "toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse TOML file %s: %w", f.path, err)
		}
	case "json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse JSON file %s: %w", f.path, err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse YAML file %s: %w", f.path, err)
		}
	default:
		return fmt.Errorf("unsupported file format: %q (supported: toml, json, yaml)", format)
	}

	if raw == nil {
		// Empty file: a valid, empty contribution.
		return nil
	}
	return dst.UnmarshalValue(raw)
}

func inferFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}
