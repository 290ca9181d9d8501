package config

import (
	"time"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
)

func loadNotify(root tree, cfg *AppConfig) bool {
	const name = "Notify"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "Notifier": true, "SMTP": true,
	})

	nf := &cfg.Notify

	b, p := resolve.Bool(field(m, "Enabled"), nf.Enabled)
	nf.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	s, p := resolve.String(field(m, "Notifier"), nf.Notifier)
	nf.Notifier = s
	resolve.LogField(name, 1, "Notifier", s, p, false)

	smtp := object(m, "SMTP")
	s, p = resolve.String(field(smtp, "Host"), nf.SMTP.Host)
	nf.SMTP.Host = s
	resolve.LogField(name, 2, "SMTP.Host", s, p, false)

	n, p := resolve.Int(field(smtp, "Port"), nf.SMTP.Port, 1, 65535)
	nf.SMTP.Port = n
	resolve.LogField(name, 2, "SMTP.Port", n, p, false)

	s, p = resolve.String(field(smtp, "Username"), nf.SMTP.Username)
	nf.SMTP.Username = s
	resolve.LogField(name, 2, "SMTP.Username", s, p, false)

	s, p = resolve.SensitiveString(field(smtp, "Password"), nf.SMTP.Password)
	nf.SMTP.Password = s
	resolve.LogField(name, 2, "SMTP.Password", s, p, true)

	b, p = resolve.Bool(field(smtp, "UseTLS"), nf.SMTP.UseTLS)
	nf.SMTP.UseTLS = b
	resolve.LogField(name, 2, "SMTP.UseTLS", b, p, false)

	secs, p := resolve.Int(field(smtp, "Timeout"), int64(nf.SMTP.Timeout/time.Second), 1, 600)
	nf.SMTP.Timeout = time.Duration(secs) * time.Second
	resolve.LogField(name, 2, "SMTP.Timeout", secs, p, false)

	n, p = resolve.Int(field(smtp, "MaxRetries"), nf.SMTP.MaxRetries, 0, 100)
	nf.SMTP.MaxRetries = n
	resolve.LogField(name, 2, "SMTP.MaxRetries", n, p, false)

	s, p = resolve.String(field(smtp, "FromAddress"), nf.SMTP.FromAddress)
	nf.SMTP.FromAddress = s
	resolve.LogField(name, 2, "SMTP.FromAddress", s, p, false)

	return true
}
