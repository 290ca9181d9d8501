package config

import (
	"sort"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
	"github.com/rs/zerolog/log"
)

const maxDatabaseConnections = 5

func loadDatabases(root tree, cfg *AppConfig) bool {
	const name = "Databases"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"DefaultWorkers": true, "ConnectionCount": true, "Connections": true, "DefaultQueues": true,
	})

	d := &cfg.Databases

	v, p := resolve.Int(field(m, "DefaultWorkers"), d.DefaultWorkers, 1, 64)
	d.DefaultWorkers = v
	resolve.LogField(name, 1, "DefaultWorkers", v, p, false)

	conns := loadDatabaseConnections(field(m, "Connections"))
	d.Connections = conns
	d.ConnectionCount = int64(len(conns))
	resolve.LogField(name, 1, "ConnectionCount", d.ConnectionCount, resolveKindFor(m, "Connections"), false)

	dq := object(m, "DefaultQueues")
	loadQueueProfile(name, "DefaultQueues.Slow", object(dq, "Slow"), &d.DefaultQueues.Slow)
	loadQueueProfile(name, "DefaultQueues.Medium", object(dq, "Medium"), &d.DefaultQueues.Medium)
	loadQueueProfile(name, "DefaultQueues.Fast", object(dq, "Fast"), &d.DefaultQueues.Fast)
	loadQueueProfile(name, "DefaultQueues.Cache", object(dq, "Cache"), &d.DefaultQueues.Cache)

	return true
}

func loadQueueProfile(section, key string, m tree, out *QueueScalingProfile) {
	v, p := resolve.Int(field(m, "Workers"), out.Workers, 1, 64)
	out.Workers = v
	resolve.LogField(section, 2, key+".Workers", v, p, false)
}

// loadDatabaseConnections accepts either a JSON array or an object keyed
// by connection name, producing the same normalized list capped at
// maxDatabaseConnections entries in a deterministic order (array order
// preserved; object form sorted by connection name, since JSON object key
// order is not itself meaningful).
func loadDatabaseConnections(raw any) []DatabaseConnection {
	var entries []DatabaseConnection

	switch v := raw.(type) {
	case []any:
		for i, item := range v {
			m, ok := item.(tree)
			if !ok {
				continue
			}
			entries = append(entries, parseDatabaseConnection(connName(m, i), m))
		}
	case tree:
		names := make([]string, 0, len(v))
		for key := range v {
			names = append(names, key)
		}
		sort.Strings(names)
		for _, key := range names {
			m, ok := v[key].(tree)
			if !ok {
				continue
			}
			entries = append(entries, parseDatabaseConnection(key, m))
		}
	}

	if len(entries) > maxDatabaseConnections {
		log.Warn().Int("count", len(entries)).Int("max", maxDatabaseConnections).
			Msg("Databases.Connections exceeds maximum, truncating")
		entries = entries[:maxDatabaseConnections]
	}
	return entries
}

func connName(m tree, index int) string {
	if n, ok := m["Name"].(string); ok && n != "" {
		return n
	}
	return "connection" + itoa(index)
}

func parseDatabaseConnection(connectionName string, m tree) DatabaseConnection {
	c := DatabaseConnection{Name: connectionName}
	c.Enabled, _ = resolve.Bool(field(m, "Enabled"), true)
	typ, _ := resolve.String(field(m, "Type"), "")
	if typ == "" {
		typ, _ = resolve.String(field(m, "Engine"), "postgres")
	}
	c.Type = typ
	c.Database, _ = resolve.String(field(m, "Database"), "")
	c.Host, _ = resolve.String(field(m, "Host"), "localhost")
	c.Port, _ = resolve.Int(field(m, "Port"), 5432, 1, 65535)
	c.User, _ = resolve.String(field(m, "User"), "")
	c.Pass, _ = resolve.SensitiveString(field(m, "Pass"), "")
	c.Workers, _ = resolve.Int(field(m, "Workers"), 1, 1, 64)
	c.PreparedStatementCacheSize, _ = resolve.Int(field(m, "PreparedStatementCacheSize"), 64, 0, 10000)
	return c
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
