// Package resolve implements Hydrogen's value resolver: the only place that
// inspects raw JSON node types. Every higher layer speaks in typed values
// with provenance, so the rest of the system never branches on "is this an
// integer" — callers get a concrete Go value back, plus a tag recording
// where it came from.
package resolve

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// Provenance records the origin of a resolved configuration value.
type Provenance struct {
	Kind   Kind
	EnvVar string // set only when Kind == EnvResolved or EnvMissingUsedDefault
}

// Kind enumerates the possible origins of a resolved value.
type Kind int

const (
	LiteralFromConfig Kind = iota
	EnvResolved
	EnvMissingUsedDefault
	DefaultNoConfigValue
)

func (k Kind) String() string {
	switch k {
	case LiteralFromConfig:
		return "literal-from-config"
	case EnvResolved:
		return "env-resolved"
	case EnvMissingUsedDefault:
		return "env-missing-used-default"
	case DefaultNoConfigValue:
		return "default-no-config-value"
	default:
		return "unknown"
	}
}

// sensitiveSubstrings are checked case-insensitively against a config key
// name to decide whether logged values must be masked.
var sensitiveSubstrings = []string{"key", "token", "pass", "seed", "jwt", "secret"}

// IsSensitiveName reports whether key looks like it holds a secret.
func IsSensitiveName(key string) bool {
	lower := strings.ToLower(key)
	for _, s := range sensitiveSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// MaskValue truncates a sensitive value to its first five characters plus
// an ellipsis, for use in logging.
func MaskValue(v string) string {
	if len(v) <= 5 {
		return v + "..."
	}
	return v[:5] + "..."
}

// envRef extracts the NAME out of a string matching exactly ${env.NAME},
// where NAME is an ASCII identifier. Returns ("", false) otherwise.
func envRef(s string) (string, bool) {
	const prefix = "${env."
	if !strings.HasPrefix(s, prefix) || !strings.HasSuffix(s, "}") {
		return "", false
	}
	name := s[len(prefix) : len(s)-1]
	if name == "" {
		return "", false
	}
	for _, r := range name {
		ok := (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_'
		if !ok {
			return "", false
		}
	}
	return name, true
}

// String resolves a string-typed configuration node.
func String(node any, def string) (string, Provenance) {
	s, ok := node.(string)
	if !ok {
		return def, Provenance{Kind: DefaultNoConfigValue}
	}
	if name, isRef := envRef(s); isRef {
		if v, present := os.LookupEnv(name); present {
			return v, Provenance{Kind: EnvResolved, EnvVar: name}
		}
		log.Warn().Str("env", name).Msg("environment variable not set, using default")
		return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
	}
	return s, Provenance{Kind: LiteralFromConfig}
}

// SensitiveString has the identical contract to String; callers must mask
// the returned value before logging it (see MaskValue / IsSensitiveName).
func SensitiveString(node any, def string) (string, Provenance) {
	return String(node, def)
}

func coerceBoolString(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true", "1":
		return true, true
	case "false", "0":
		return false, true
	default:
		return false, false
	}
}

// Bool resolves a bool-typed configuration node.
func Bool(node any, def bool) (bool, Provenance) {
	switch v := node.(type) {
	case bool:
		return v, Provenance{Kind: LiteralFromConfig}
	case string:
		if name, isRef := envRef(v); isRef {
			raw, present := os.LookupEnv(name)
			if !present {
				log.Warn().Str("env", name).Msg("environment variable not set, using default")
				return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
			}
			if b, ok := coerceBoolString(raw); ok {
				return b, Provenance{Kind: EnvResolved, EnvVar: name}
			}
			return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
		}
		if b, ok := coerceBoolString(v); ok {
			return b, Provenance{Kind: LiteralFromConfig}
		}
		return def, Provenance{Kind: DefaultNoConfigValue}
	default:
		return def, Provenance{Kind: DefaultNoConfigValue}
	}
}

// Int resolves an int64-typed configuration node, rejecting values outside
// [min, max].
func Int(node any, def int64, min, max int64) (int64, Provenance) {
	coerce := func(raw string) (int64, bool) {
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			return 0, false
		}
		if n < min || n > max {
			return 0, false
		}
		return n, true
	}

	switch v := node.(type) {
	case float64:
		n := int64(v)
		if n < min || n > max {
			log.Error().Int64("value", n).Int64("min", min).Int64("max", max).Msg("value out of range, using default")
			return def, Provenance{Kind: DefaultNoConfigValue}
		}
		return n, Provenance{Kind: LiteralFromConfig}
	case string:
		if name, isRef := envRef(v); isRef {
			raw, present := os.LookupEnv(name)
			if !present {
				log.Warn().Str("env", name).Msg("environment variable not set, using default")
				return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
			}
			if n, ok := coerce(raw); ok {
				return n, Provenance{Kind: EnvResolved, EnvVar: name}
			}
			log.Error().Str("env", name).Str("value", raw).Msg("env value out of range, using default")
			return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
		}
		if n, ok := coerce(v); ok {
			return n, Provenance{Kind: LiteralFromConfig}
		}
		log.Error().Str("value", v).Msg("value out of range, using default")
		return def, Provenance{Kind: DefaultNoConfigValue}
	default:
		return def, Provenance{Kind: DefaultNoConfigValue}
	}
}

// Size resolves a uint64-typed configuration node, rejecting negative
// values.
func Size(node any, def uint64) (uint64, Provenance) {
	n, prov := Int(node, int64(def), 0, math.MaxInt64)
	return uint64(n), prov
}

// Double resolves a float64-typed configuration node, rejecting NaN and
// infinities.
func Double(node any, def float64) (float64, Provenance) {
	valid := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

	switch v := node.(type) {
	case float64:
		if !valid(v) {
			return def, Provenance{Kind: DefaultNoConfigValue}
		}
		return v, Provenance{Kind: LiteralFromConfig}
	case string:
		if name, isRef := envRef(v); isRef {
			raw, present := os.LookupEnv(name)
			if !present {
				log.Warn().Str("env", name).Msg("environment variable not set, using default")
				return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
			}
			if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && valid(f) {
				return f, Provenance{Kind: EnvResolved, EnvVar: name}
			}
			return def, Provenance{Kind: EnvMissingUsedDefault, EnvVar: name}
		}
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && valid(f) {
			return f, Provenance{Kind: LiteralFromConfig}
		}
		return def, Provenance{Kind: DefaultNoConfigValue}
	default:
		return def, Provenance{Kind: DefaultNoConfigValue}
	}
}
