package strata

import (
	"fmt"
	"time"

	"github.com/go-viper/mapstructure/v2"
)

// decodeScalar coerces a raw parsed value into a concrete Go value. Sources
// produce loosely-typed trees (environment values are always strings, JSON
// numbers are float64), so decoding is weakly typed, with hooks for durations
// and RFC 3339 timestamps.
func decodeScalar(v any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return err
	}
	return dec.Decode(v)
}

// asList normalizes a raw sequence value.
func asList(v any) ([]any, bool) {
	l, ok := v.([]any)
	return l, ok
}

// asTree normalizes a raw table value. YAML documents can surface as
// map[any]any; keys are rendered with fmt.Sprint in that case.
func asTree(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
