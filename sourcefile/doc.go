// Package sourcefile loads configuration from TOML, JSON, or YAML files.
//
// Format is auto-detected from the extension (.toml, .json, .yaml).
//
// Example:
//
//	source := sourcefile.New("config.toml", sourcefile.Options{Required: true})
//	loader := strata.NewLoader[ConfigBuilder, Config]().OverrideWith(source)
package sourcefile
