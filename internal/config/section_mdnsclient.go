package config

import (
	"time"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
)

func loadMDNSClient(root tree, cfg *AppConfig) bool {
	const name = "mDNSClient"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"EnableIPv4": true, "EnableIPv6": true, "ScanInterval": true, "MaxServices": true,
		"RetryCount": true, "HealthCheckEnabled": true, "HealthCheckInterval": true,
		"ServiceTypes": true,
	})

	c := &cfg.MDNSClient

	b, p := resolve.Bool(field(m, "EnableIPv4"), c.EnableIPv4)
	c.EnableIPv4 = b
	resolve.LogField(name, 1, "EnableIPv4", b, p, false)

	b, p = resolve.Bool(field(m, "EnableIPv6"), c.EnableIPv6)
	c.EnableIPv6 = b
	resolve.LogField(name, 1, "EnableIPv6", b, p, false)

	secs, p := resolve.Int(field(m, "ScanInterval"), int64(c.ScanInterval/time.Second), 1, 86400)
	c.ScanInterval = time.Duration(secs) * time.Second
	resolve.LogField(name, 1, "ScanInterval", secs, p, false)

	n, p := resolve.Int(field(m, "MaxServices"), c.MaxServices, 1, 4096)
	c.MaxServices = n
	resolve.LogField(name, 1, "MaxServices", n, p, false)

	n, p = resolve.Int(field(m, "RetryCount"), c.RetryCount, 0, 20)
	c.RetryCount = n
	resolve.LogField(name, 1, "RetryCount", n, p, false)

	b, p = resolve.Bool(field(m, "HealthCheckEnabled"), c.HealthCheckEnabled)
	c.HealthCheckEnabled = b
	resolve.LogField(name, 1, "HealthCheckEnabled", b, p, false)

	secs, p = resolve.Int(field(m, "HealthCheckInterval"), int64(c.HealthCheckInterval/time.Second), 1, 86400)
	c.HealthCheckInterval = time.Duration(secs) * time.Second
	resolve.LogField(name, 1, "HealthCheckInterval", secs, p, false)

	c.ServiceTypes = coerceTxtRecords(field(m, "ServiceTypes"))

	return true
}
