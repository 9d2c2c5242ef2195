// Package sourceinline loads configuration from literal TOML, JSON, or YAML
// text. Useful for in-code defaults and tests.
//
// Example:
//
//	source := sourceinline.TOML(`port = 8080`, sourceinline.Options{})
//	loader := strata.NewLoader[ConfigBuilder, Config]().OverrideWith(source)
package sourceinline
