package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadLogging(root tree, cfg *AppConfig) bool {
	const name = "Logging"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Console": true, "File": true, "Database": true, "Notify": true,
	})

	l := &cfg.Logging
	loadLogTarget(name, "Console", object(m, "Console"), &l.Console)
	loadLogTarget(name, "File", object(m, "File"), &l.File)
	loadLogTarget(name, "Database", object(m, "Database"), &l.Database)
	loadLogTarget(name, "Notify", object(m, "Notify"), &l.Notify)

	return true
}

func loadLogTarget(section, key string, m tree, out *LogTarget) {
	v, p := resolve.Bool(field(m, "Enabled"), out.Enabled)
	out.Enabled = v
	resolve.LogField(section, 1, key+".Enabled", v, p, false)

	lv, p := resolve.String(field(m, "DefaultLevel"), out.DefaultLevel)
	out.DefaultLevel = lv
	resolve.LogField(section, 1, key+".DefaultLevel", lv, p, false)

	sub := object(m, "Subsystems")
	if sub != nil {
		out.Subsystems = make(map[string]string, len(sub))
		for k, raw := range sub {
			s, ok := raw.(string)
			if !ok {
				continue
			}
			out.Subsystems[k] = s
		}
	} else if out.Subsystems == nil {
		out.Subsystems = map[string]string{}
	}
}
