package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadMailRelay(root tree, cfg *AppConfig) bool {
	const name = "MailRelay"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "ListenPort": true, "Workers": true, "Queue": true, "Servers": true,
	})

	r := &cfg.MailRelay

	b, p := resolve.Bool(field(m, "Enabled"), r.Enabled)
	r.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	n, p := resolve.Int(field(m, "ListenPort"), r.ListenPort, 1, 65535)
	r.ListenPort = n
	resolve.LogField(name, 1, "ListenPort", n, p, false)

	n, p = resolve.Int(field(m, "Workers"), r.Workers, 1, 64)
	r.Workers = n
	resolve.LogField(name, 1, "Workers", n, p, false)

	q := object(m, "Queue")
	n, p = resolve.Int(field(q, "MaxQueueSize"), r.Queue.MaxQueueSize, 1, 1000000)
	r.Queue.MaxQueueSize = n
	resolve.LogField(name, 2, "Queue.MaxQueueSize", n, p, false)

	n, p = resolve.Int(field(q, "RetryAttempts"), r.Queue.RetryAttempts, 0, 100)
	r.Queue.RetryAttempts = n
	resolve.LogField(name, 2, "Queue.RetryAttempts", n, p, false)

	n, p = resolve.Int(field(q, "RetryDelaySeconds"), r.Queue.RetryDelaySeconds, 0, 86400)
	r.Queue.RetryDelaySeconds = n
	resolve.LogField(name, 2, "Queue.RetryDelaySeconds", n, p, false)

	r.Servers = loadMailServers(array(m, "Servers"))

	return true
}

func loadMailServers(raw []any) []MailServer {
	if raw == nil {
		return nil
	}
	out := make([]MailServer, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(tree)
		if !ok {
			continue
		}
		var srv MailServer
		srv.Host, _ = resolve.String(field(m, "Host"), "")
		srv.Port, _ = resolve.Int(field(m, "Port"), 587, 1, 65535)
		srv.Username, _ = resolve.String(field(m, "Username"), "")
		srv.Password, _ = resolve.SensitiveString(field(m, "Password"), "")
		srv.UseTLS, _ = resolve.Bool(field(m, "UseTLS"), true)
		out = append(out, srv)
	}
	return out
}
