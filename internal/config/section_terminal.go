package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadTerminal(root tree, cfg *AppConfig) bool {
	const name = "Terminal"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "WebPath": true, "ShellCommand": true, "MaxSessions": true,
		"IdleTimeoutSeconds": true, "BufferSize": true, "WebRoot": true,
		"CORSOrigin": true, "IndexPage": true,
	})

	t := &cfg.Terminal

	b, p := resolve.Bool(field(m, "Enabled"), t.Enabled)
	t.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	s, p := resolve.String(field(m, "WebPath"), t.WebPath)
	t.WebPath = s
	resolve.LogField(name, 1, "WebPath", s, p, false)

	s, p = resolve.String(field(m, "ShellCommand"), t.ShellCommand)
	t.ShellCommand = s
	resolve.LogField(name, 1, "ShellCommand", s, p, false)

	n, p := resolve.Int(field(m, "MaxSessions"), t.MaxSessions, 1, 256)
	t.MaxSessions = n
	resolve.LogField(name, 1, "MaxSessions", n, p, false)

	n, p = resolve.Int(field(m, "IdleTimeoutSeconds"), t.IdleTimeoutSeconds, 0, 86400)
	t.IdleTimeoutSeconds = n
	resolve.LogField(name, 1, "IdleTimeoutSeconds", n, p, false)

	sz, p := resolve.Size(field(m, "BufferSize"), t.BufferSize)
	t.BufferSize = sz
	resolve.LogField(name, 1, "BufferSize", sz, p, false)

	s, p = resolve.String(field(m, "WebRoot"), t.WebRoot)
	t.WebRoot = s
	resolve.LogField(name, 1, "WebRoot", s, p, false)

	s, p = resolve.String(field(m, "CORSOrigin"), t.CORSOrigin)
	t.CORSOrigin = s
	resolve.LogField(name, 1, "CORSOrigin", s, p, false)

	s, p = resolve.String(field(m, "IndexPage"), t.IndexPage)
	t.IndexPage = s
	resolve.LogField(name, 1, "IndexPage", s, p, false)

	return true
}
