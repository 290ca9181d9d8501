package resolve

import "github.com/rs/zerolog/log"

// LogField emits one structured provenance line for a resolved field, in
// the shape the Configuration Loader's per-section logging contract
// requires: one line per resolved key, with default-origin values marked.
func LogField(section string, depth int, key string, value any, prov Provenance, sensitive bool) {
	display := value
	if sensitive {
		if s, ok := value.(string); ok && s != "" {
			display = MaskValue(s)
		}
	}

	event := log.Info()
	event = event.Str("section", section).Int("depth", depth).Str("key", key)

	switch prov.Kind {
	case EnvResolved:
		event.Str("env", prov.EnvVar).Interface("value", display).Msg("resolved from environment")
	case EnvMissingUsedDefault:
		event.Str("env", prov.EnvVar).Interface("default", display).
			Bool("default_used", true).Msg("environment variable missing, used default")
	case DefaultNoConfigValue:
		event.Interface("default", display).Bool("default_used", true).Msg("using default")
	default:
		event.Interface("value", display).Msg("resolved from config")
	}
}

// LogSectionHeader emits the one header log line a section loader must
// print before resolving its fields.
func LogSectionHeader(section string) {
	log.Info().Str("section", section).Msg("loading configuration section")
}
