package config

import (
	"time"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
)

func loadServer(root tree, cfg *AppConfig) bool {
	const name = "Server"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"ServerName": true, "LogFile": true, "PayloadKey": true, "StartupDelay": true,
	})

	s := &cfg.Server

	v, p := resolve.String(field(m, "ServerName"), s.ServerName)
	s.ServerName = v
	resolve.LogField(name, 1, "ServerName", v, p, false)

	v, p = resolve.String(field(m, "LogFile"), s.LogFile)
	s.LogFile = v
	resolve.LogField(name, 1, "LogFile", v, p, false)

	v, p = resolve.SensitiveString(field(m, "PayloadKey"), s.PayloadKey)
	s.PayloadKey = v
	resolve.LogField(name, 1, "PayloadKey", v, p, true)

	ms, p := resolve.Int(field(m, "StartupDelay"), s.StartupDelay.Milliseconds(), 0, 60000)
	s.StartupDelay = time.Duration(ms) * time.Millisecond
	resolve.LogField(name, 1, "StartupDelay", ms, p, false)

	return true
}
