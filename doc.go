// Package strata resolves strongly-typed configuration from multiple ordered,
// partial sources (files, environment variables, inline text), merging
// overrides with clear precedence, applying per-field defaults, and keeping
// secret-tagged fields out of sources that are not trusted with secrets.
//
// Quick Start:
//
//	type Config struct {
//	    Host string
//	    Port int
//	}
//
//	type ConfigBuilder struct {
//	    Host strata.Value[string]
//	    Port strata.Value[int]
//	}
//
//	func (b ConfigBuilder) Merge(o ConfigBuilder) ConfigBuilder {
//	    return ConfigBuilder{Host: b.Host.Merge(o.Host), Port: b.Port.Merge(o.Port)}
//	}
//
//	func (b ConfigBuilder) TryBuild() (Config, error) {
//	    var cfg Config
//	    if err := strata.BuildField("host", b.Host, &cfg.Host); err != nil {
//	        return cfg, err
//	    }
//	    if err := strata.BuildFieldDefault("port", b.Port, &cfg.Port, 8080); err != nil {
//	        return cfg, err
//	    }
//	    return cfg, nil
//	}
//
//	func (b ConfigBuilder) ContainsNonSecretData() (bool, error) {
//	    return strata.FieldsContainData(
//	        strata.FieldData{Name: "host", Value: b.Host},
//	        strata.FieldData{Name: "port", Value: b.Port},
//	    )
//	}
//
//	func (b *ConfigBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }
//
//	cfg, err := strata.NewLoader[ConfigBuilder, Config]().
//	    OverrideWith(sourcefile.New("config.toml", sourcefile.Options{})).
//	    OverrideWith(sourceenv.New(sourceenv.Options{Prefix: "APP_", AllowSecrets: true})).
//	    Build(context.Background())
//
// Later sources override earlier ones. Secret fields are wrapped in
// strata.Secret and may only be populated from sources whose AllowSecrets
// option is set.
//
// See example_test.go and the examples directory for detailed usage.
package strata
