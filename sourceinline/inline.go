package sourceinline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/strataconf/strata"
	"gopkg.in/yaml.v3"
)

// Options configures an inline source.
type Options struct {
	// AllowSecrets permits secret-tagged fields to be populated from this
	// text.
	AllowSecrets bool
}

type inlineSource struct {
	format string
	text   string
	opts   Options
}

// TOML creates a source from literal TOML text.
func TOML(text string, opts Options) strata.Source {
	return &inlineSource{format: "toml", text: text, opts: opts}
}

// JSON creates a source from literal JSON text.
func JSON(text string, opts Options) strata.Source {
	return &inlineSource{format: "json", text: text, opts: opts}
}

// YAML creates a source from literal YAML text.
func YAML(text string, opts Options) strata.Source {
	return &inlineSource{format: "yaml", text: text, opts: opts}
}

func (s *inlineSource) AllowsSecrets() bool { return s.opts.AllowSecrets }

func (s *inlineSource) String() string { return "inline:" + s.format }

// Provide parses the literal text and hands the raw tree to the builder.
func (s *inlineSource) Provide(ctx context.Context, dst strata.Unmarshaler) error {
	var raw map[string]any
	switch s.format {
	case "toml":
		if err := toml.Unmarshal([]byte(s.text), &raw); err != nil {
			return fmt.Errorf("parse inline TOML: %w", err)
		}
	case "json":
		if err := json.Unmarshal([]byte(s.text), &raw); err != nil {
			return fmt.Errorf("parse inline JSON: %w", err)
		}
	case "yaml":
		if err := yaml.Unmarshal([]byte(s.text), &raw); err != nil {
			return fmt.Errorf("parse inline YAML: %w", err)
		}
	}

	if raw == nil {
		return nil
	}
	return dst.UnmarshalValue(raw)
}
