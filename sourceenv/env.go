package sourceenv

import (
	"context"
	"os"
	"strings"

	"github.com/strataconf/strata"
	"github.com/strataconf/strata/internal/normalize"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix filters variables starting with prefix (stripped before key
	// normalization). Empty loads every variable.
	Prefix string

	// CaseSensitive controls prefix matching (default: false).
	// When false, APP_ matches app_, App_, etc.
	CaseSensitive bool

	// AllowSecrets permits secret-tagged fields to be populated from the
	// environment.
	AllowSecrets bool
}

type envSource struct {
	opts Options
}

// New creates an environment variable source. Variable names become nested
// keys: double underscores separate levels (APP_DATABASE__HOST reaches
// database.host under prefix APP_), and values stay strings for the builder
// coercion layer.
func New(opts Options) strata.Source {
	return &envSource{opts: opts}
}

func (e *envSource) AllowsSecrets() bool { return e.opts.AllowSecrets }

func (e *envSource) String() string {
	if e.opts.Prefix != "" {
		return "env:" + e.opts.Prefix + "*"
	}
	return "env"
}

// Provide scans the environment, filters by prefix, and hands the nested tree
// to the builder.
func (e *envSource) Provide(ctx context.Context, dst strata.Unmarshaler) error {
	tree := make(map[string]any)

	for _, env := range os.Environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok {
			continue
		}

		if e.opts.Prefix != "" {
			var hasPrefix bool
			if e.opts.CaseSensitive {
				hasPrefix = strings.HasPrefix(name, e.opts.Prefix)
			} else {
				hasPrefix = strings.HasPrefix(strings.ToUpper(name), strings.ToUpper(e.opts.Prefix))
			}
			if !hasPrefix {
				continue
			}
			name = name[len(e.opts.Prefix):]
		}
		if name == "" {
			continue
		}

		insert(tree, normalize.SplitEnvPath(name), value)
	}

	if len(tree) == 0 {
		return nil
	}
	return dst.UnmarshalValue(tree)
}

// insert places value at the nested path, creating intermediate tables. A
// scalar already present at an intermediate level is replaced by a table: the
// deeper variable is the more specific one.
func insert(tree map[string]any, path []string, value string) {
	if len(path) == 0 {
		return
	}
	for _, seg := range path[:len(path)-1] {
		next, ok := tree[seg].(map[string]any)
		if !ok {
			next = make(map[string]any)
			tree[seg] = next
		}
		tree = next
	}
	tree[path[len(path)-1]] = value
}
