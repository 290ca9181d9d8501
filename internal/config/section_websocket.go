package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadWebSocket(root tree, cfg *AppConfig) bool {
	const name = "WebSocket"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"EnableIPv4": true, "EnableIPv6": true, "LibLogLevel": true, "Port": true,
		"Protocol": true, "Key": true, "MaxMessageSize": true, "ConnectionTimeouts": true,
	})

	w := &cfg.WebSocket

	b, p := resolve.Bool(field(m, "EnableIPv4"), w.EnableIPv4)
	w.EnableIPv4 = b
	resolve.LogField(name, 1, "EnableIPv4", b, p, false)

	b, p = resolve.Bool(field(m, "EnableIPv6"), w.EnableIPv6)
	w.EnableIPv6 = b
	resolve.LogField(name, 1, "EnableIPv6", b, p, false)

	s, p := resolve.String(field(m, "LibLogLevel"), w.LibLogLevel)
	w.LibLogLevel = s
	resolve.LogField(name, 1, "LibLogLevel", s, p, false)

	n, p := resolve.Int(field(m, "Port"), w.Port, 1, 65535)
	w.Port = n
	resolve.LogField(name, 1, "Port", n, p, false)

	s, p = resolve.String(field(m, "Protocol"), w.Protocol)
	w.Protocol = s
	resolve.LogField(name, 1, "Protocol", s, p, false)

	s, p = resolve.SensitiveString(field(m, "Key"), w.Key)
	w.Key = s
	resolve.LogField(name, 1, "Key", s, p, true)

	sz, p := resolve.Size(field(m, "MaxMessageSize"), w.MaxMessageSize)
	w.MaxMessageSize = sz
	resolve.LogField(name, 1, "MaxMessageSize", sz, p, false)

	ct := object(m, "ConnectionTimeouts")
	n, p = resolve.Int(field(ct, "ShutdownWaitSeconds"), w.ConnectionTimeouts.ShutdownWaitSeconds, 0, 3600)
	w.ConnectionTimeouts.ShutdownWaitSeconds = n
	resolve.LogField(name, 2, "ConnectionTimeouts.ShutdownWaitSeconds", n, p, false)

	n, p = resolve.Int(field(ct, "ServiceLoopDelayMs"), w.ConnectionTimeouts.ServiceLoopDelayMs, 0, 60000)
	w.ConnectionTimeouts.ServiceLoopDelayMs = n
	resolve.LogField(name, 2, "ConnectionTimeouts.ServiceLoopDelayMs", n, p, false)

	n, p = resolve.Int(field(ct, "ConnectionCleanupMs"), w.ConnectionTimeouts.ConnectionCleanupMs, 0, 60000)
	w.ConnectionTimeouts.ConnectionCleanupMs = n
	resolve.LogField(name, 2, "ConnectionTimeouts.ConnectionCleanupMs", n, p, false)

	n, p = resolve.Int(field(ct, "ExitWaitSeconds"), w.ConnectionTimeouts.ExitWaitSeconds, 0, 3600)
	w.ConnectionTimeouts.ExitWaitSeconds = n
	resolve.LogField(name, 2, "ConnectionTimeouts.ExitWaitSeconds", n, p, false)

	return true
}
