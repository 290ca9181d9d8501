package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadAPI(root tree, cfg *AppConfig) bool {
	const name = "API"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "Prefix": true, "JWTSecret": true, "CORSOrigin": true,
	})

	a := &cfg.API

	b, p := resolve.Bool(field(m, "Enabled"), a.Enabled)
	a.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	s, p := resolve.String(field(m, "Prefix"), a.Prefix)
	a.Prefix = s
	resolve.LogField(name, 1, "Prefix", s, p, false)

	s, p = resolve.SensitiveString(field(m, "JWTSecret"), a.JWTSecret)
	a.JWTSecret = s
	resolve.LogField(name, 1, "JWTSecret", s, p, true)

	s, p = resolve.String(field(m, "CORSOrigin"), a.CORSOrigin)
	a.CORSOrigin = s
	resolve.LogField(name, 1, "CORSOrigin", s, p, false)

	return true
}
