package strata_test

import (
	"fmt"
	"time"

	"github.com/strataconf/strata"
)

// Hand-written builder pairs used across the tests. Each target type pairs
// with a builder whose fields recursively follow the builder contract; these
// stand in for what a code generator would emit.

// paramConfig is the smallest possible target: one required scalar.
type paramConfig struct {
	Param int
}

type paramBuilder struct {
	Param strata.Value[int]
}

func (b paramBuilder) Merge(o paramBuilder) paramBuilder {
	return paramBuilder{Param: b.Param.Merge(o.Param)}
}

func (b paramBuilder) TryBuild() (paramConfig, error) {
	var cfg paramConfig
	if err := strata.BuildField("param", b.Param, &cfg.Param); err != nil {
		return paramConfig{}, err
	}
	return cfg, nil
}

func (b paramBuilder) ContainsNonSecretData() (bool, error) {
	return strata.FieldsContainData(
		strata.FieldData{Name: "param", Value: b.Param},
	)
}

func (b *paramBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }

// defaultedConfig has defaults for every field, so an empty Loader builds it.
type defaultedConfig struct {
	Host string
	Port int
}

type defaultedBuilder struct {
	Host strata.Value[string]
	Port strata.Value[int]
}

func (b defaultedBuilder) Merge(o defaultedBuilder) defaultedBuilder {
	return defaultedBuilder{Host: b.Host.Merge(o.Host), Port: b.Port.Merge(o.Port)}
}

func (b defaultedBuilder) TryBuild() (defaultedConfig, error) {
	var cfg defaultedConfig
	if err := strata.BuildFieldDefault("host", b.Host, &cfg.Host, "localhost"); err != nil {
		return defaultedConfig{}, err
	}
	if err := strata.BuildFieldDefault("port", b.Port, &cfg.Port, 8080); err != nil {
		return defaultedConfig{}, err
	}
	return cfg, nil
}

func (b defaultedBuilder) ContainsNonSecretData() (bool, error) {
	return strata.FieldsContainData(
		strata.FieldData{Name: "host", Value: b.Host},
		strata.FieldData{Name: "port", Value: b.Port},
	)
}

func (b *defaultedBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }

// dbConfig exercises secret wrapping and per-field defaults in one nested
// record.
type dbConfig struct {
	Host     string
	Port     int
	Password string
}

type dbBuilder struct {
	Host     strata.Value[string]
	Port     strata.Value[int]
	Password strata.Secret[strata.Value[string], string]
}

func (b dbBuilder) Merge(o dbBuilder) dbBuilder {
	return dbBuilder{
		Host:     b.Host.Merge(o.Host),
		Port:     b.Port.Merge(o.Port),
		Password: b.Password.Merge(o.Password),
	}
}

func (b dbBuilder) TryBuild() (dbConfig, error) {
	var cfg dbConfig
	if err := strata.BuildField("host", b.Host, &cfg.Host); err != nil {
		return dbConfig{}, err
	}
	if err := strata.BuildFieldDefault("port", b.Port, &cfg.Port, 5432); err != nil {
		return dbConfig{}, err
	}
	if err := strata.BuildFieldDefault("password", b.Password, &cfg.Password, ""); err != nil {
		return dbConfig{}, err
	}
	return cfg, nil
}

func (b dbBuilder) ContainsNonSecretData() (bool, error) {
	return strata.FieldsContainData(
		strata.FieldData{Name: "host", Value: b.Host},
		strata.FieldData{Name: "port", Value: b.Port},
		strata.FieldData{Name: "password", Value: b.Password},
	)
}

func (b *dbBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }

// retryConfig is a nested record whose whole value has a declared default in
// appConfig: any partial data falls through to the normal build path.
type retryConfig struct {
	Attempts int
	Backoff  string
}

var defaultRetry = retryConfig{Attempts: 3, Backoff: "fixed"}

type retryBuilder struct {
	Attempts strata.Value[int]
	Backoff  strata.Value[string]
}

func (b retryBuilder) Merge(o retryBuilder) retryBuilder {
	return retryBuilder{Attempts: b.Attempts.Merge(o.Attempts), Backoff: b.Backoff.Merge(o.Backoff)}
}

func (b retryBuilder) TryBuild() (retryConfig, error) {
	var cfg retryConfig
	if err := strata.BuildField("attempts", b.Attempts, &cfg.Attempts); err != nil {
		return retryConfig{}, err
	}
	if err := strata.BuildField("backoff", b.Backoff, &cfg.Backoff); err != nil {
		return retryConfig{}, err
	}
	return cfg, nil
}

func (b retryBuilder) ContainsNonSecretData() (bool, error) {
	return strata.FieldsContainData(
		strata.FieldData{Name: "attempts", Value: b.Attempts},
		strata.FieldData{Name: "backoff", Value: b.Backoff},
	)
}

func (b *retryBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }

// storageConfig is a tagged union: Kind selects which of the remaining fields
// are meaningful.
type storageConfig struct {
	Kind   string
	Path   string // disk
	Bucket string // s3
	Region string // s3
}

type diskVariantBuilder struct {
	Path strata.Value[string]
}

func (b diskVariantBuilder) merge(o diskVariantBuilder) diskVariantBuilder {
	return diskVariantBuilder{Path: b.Path.Merge(o.Path)}
}

type s3VariantBuilder struct {
	Bucket strata.Value[string]
	Region strata.Value[string]
}

func (b s3VariantBuilder) merge(o s3VariantBuilder) s3VariantBuilder {
	return s3VariantBuilder{Bucket: b.Bucket.Merge(o.Bucket), Region: b.Region.Merge(o.Region)}
}

// storageBuilder is a hand-written variant builder. An empty Kind is the
// unresolved state and yields to any named variant; two named variants merge
// field-wise only when they match, otherwise the higher-priority side wins
// outright and the other variant's data is discarded.
type storageBuilder struct {
	Kind string
	Disk diskVariantBuilder
	S3   s3VariantBuilder
}

func (b storageBuilder) Merge(o storageBuilder) storageBuilder {
	switch {
	case b.Kind == "":
		return o
	case b.Kind != o.Kind:
		return b
	case b.Kind == "disk":
		return storageBuilder{Kind: "disk", Disk: b.Disk.merge(o.Disk)}
	default:
		return storageBuilder{Kind: "s3", S3: b.S3.merge(o.S3)}
	}
}

func (b storageBuilder) TryBuild() (storageConfig, error) {
	switch b.Kind {
	case "disk":
		cfg := storageConfig{Kind: "disk"}
		if err := strata.BuildField("path", b.Disk.Path, &cfg.Path); err != nil {
			return storageConfig{}, err
		}
		return cfg, nil
	case "s3":
		cfg := storageConfig{Kind: "s3"}
		if err := strata.BuildField("bucket", b.S3.Bucket, &cfg.Bucket); err != nil {
			return storageConfig{}, err
		}
		if err := strata.BuildField("region", b.S3.Region, &cfg.Region); err != nil {
			return storageConfig{}, err
		}
		return cfg, nil
	default:
		return storageConfig{}, &strata.MissingValueError{}
	}
}

func (b storageBuilder) ContainsNonSecretData() (bool, error) {
	switch b.Kind {
	case "disk":
		return strata.FieldsContainData(
			strata.FieldData{Name: "path", Value: b.Disk.Path},
		)
	case "s3":
		return strata.FieldsContainData(
			strata.FieldData{Name: "bucket", Value: b.S3.Bucket},
			strata.FieldData{Name: "region", Value: b.S3.Region},
		)
	default:
		return false, nil
	}
}

func (b *storageBuilder) UnmarshalValue(v any) error {
	tree, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("expected a table naming one storage kind, got %T", v)
	}
	if len(tree) != 1 {
		return fmt.Errorf("expected exactly one storage kind, got %d", len(tree))
	}
	for kind, raw := range tree {
		switch kind {
		case "disk":
			b.Kind = "disk"
			return strata.UnmarshalStruct(raw, &b.Disk)
		case "s3":
			b.Kind = "s3"
			return strata.UnmarshalStruct(raw, &b.S3)
		default:
			return fmt.Errorf("unknown storage kind %q", kind)
		}
	}
	return nil
}

// appConfig is the full fixture: scalars, a duration, an optional, containers,
// a fixed array, a defaulted nested record, a secret-bearing nested record,
// and a variant.
type appConfig struct {
	Name    string
	Timeout time.Duration
	Workers *int
	Tags    []string
	Limits  map[string]int
	Shards  [2]string
	Retry   retryConfig
	DB      dbConfig
	Storage storageConfig
}

type appBuilder struct {
	Name    strata.Value[string]
	Timeout strata.Value[time.Duration]
	Workers strata.Optional[strata.Value[int], int]
	Tags    strata.Slice[strata.Value[string], string]
	Limits  strata.Map[string, strata.Value[int], int]
	Shards  strata.Array[[2]string, strata.Value[string], string]
	Retry   retryBuilder
	DB      dbBuilder
	Storage storageBuilder
}

func (b appBuilder) Merge(o appBuilder) appBuilder {
	return appBuilder{
		Name:    b.Name.Merge(o.Name),
		Timeout: b.Timeout.Merge(o.Timeout),
		Workers: b.Workers.Merge(o.Workers),
		Tags:    b.Tags.Merge(o.Tags),
		Limits:  b.Limits.Merge(o.Limits),
		Shards:  b.Shards.Merge(o.Shards),
		Retry:   b.Retry.Merge(o.Retry),
		DB:      b.DB.Merge(o.DB),
		Storage: b.Storage.Merge(o.Storage),
	}
}

func (b appBuilder) TryBuild() (appConfig, error) {
	var cfg appConfig
	if err := strata.BuildField("name", b.Name, &cfg.Name); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("timeout", b.Timeout, &cfg.Timeout, 30*time.Second); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildField("workers", b.Workers, &cfg.Workers); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("tags", b.Tags, &cfg.Tags, []string{}); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("limits", b.Limits, &cfg.Limits, map[string]int{}); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("shards", b.Shards, &cfg.Shards, [2]string{"primary", "secondary"}); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("retry", b.Retry, &cfg.Retry, defaultRetry); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildField("db", b.DB, &cfg.DB); err != nil {
		return appConfig{}, err
	}
	if err := strata.BuildFieldDefault("storage", b.Storage, &cfg.Storage, storageConfig{Kind: "disk", Path: "/var/lib/app"}); err != nil {
		return appConfig{}, err
	}
	return cfg, nil
}

func (b appBuilder) ContainsNonSecretData() (bool, error) {
	return strata.FieldsContainData(
		strata.FieldData{Name: "name", Value: b.Name},
		strata.FieldData{Name: "timeout", Value: b.Timeout},
		strata.FieldData{Name: "workers", Value: b.Workers},
		strata.FieldData{Name: "tags", Value: b.Tags},
		strata.FieldData{Name: "limits", Value: b.Limits},
		strata.FieldData{Name: "shards", Value: b.Shards},
		strata.FieldData{Name: "retry", Value: b.Retry},
		strata.FieldData{Name: "db", Value: b.DB},
		strata.FieldData{Name: "storage", Value: b.Storage},
	)
}

func (b *appBuilder) UnmarshalValue(v any) error { return strata.UnmarshalStruct(v, b) }
