package config

import (
	"time"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
)

func loadWebServer(root tree, cfg *AppConfig) bool {
	const name = "WebServer"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"EnableIPv4": true, "EnableIPv6": true, "Port": true, "WebRoot": true,
		"UploadPath": true, "UploadDir": true, "MaxUploadSize": true,
		"ThreadPoolSize": true, "MaxConnections": true, "MaxConnectionsPerIP": true,
		"ConnectionTimeout": true, "CORSOrigin": true,
	})

	w := &cfg.WebServer

	b, p := resolve.Bool(field(m, "EnableIPv4"), w.EnableIPv4)
	w.EnableIPv4 = b
	resolve.LogField(name, 1, "EnableIPv4", b, p, false)

	b, p = resolve.Bool(field(m, "EnableIPv6"), w.EnableIPv6)
	w.EnableIPv6 = b
	resolve.LogField(name, 1, "EnableIPv6", b, p, false)

	n, p := resolve.Int(field(m, "Port"), w.Port, 1, 65535)
	w.Port = n
	resolve.LogField(name, 1, "Port", n, p, false)

	s, p := resolve.String(field(m, "WebRoot"), w.WebRoot)
	w.WebRoot = s
	resolve.LogField(name, 1, "WebRoot", s, p, false)

	s, p = resolve.String(field(m, "UploadPath"), w.UploadPath)
	w.UploadPath = s
	resolve.LogField(name, 1, "UploadPath", s, p, false)

	s, p = resolve.String(field(m, "UploadDir"), w.UploadDir)
	w.UploadDir = s
	resolve.LogField(name, 1, "UploadDir", s, p, false)

	sz, p := resolve.Size(field(m, "MaxUploadSize"), w.MaxUploadSize)
	w.MaxUploadSize = sz
	resolve.LogField(name, 1, "MaxUploadSize", sz, p, false)

	n, p = resolve.Int(field(m, "ThreadPoolSize"), w.ThreadPoolSize, 1, 256)
	w.ThreadPoolSize = n
	resolve.LogField(name, 1, "ThreadPoolSize", n, p, false)

	n, p = resolve.Int(field(m, "MaxConnections"), w.MaxConnections, 1, 100000)
	w.MaxConnections = n
	resolve.LogField(name, 1, "MaxConnections", n, p, false)

	n, p = resolve.Int(field(m, "MaxConnectionsPerIP"), w.MaxConnectionsPerIP, 1, 100000)
	w.MaxConnectionsPerIP = n
	resolve.LogField(name, 1, "MaxConnectionsPerIP", n, p, false)

	ms, p := resolve.Int(field(m, "ConnectionTimeout"), int64(w.ConnectionTimeout/time.Millisecond), 0, 3600000)
	w.ConnectionTimeout = time.Duration(ms) * time.Millisecond
	resolve.LogField(name, 1, "ConnectionTimeout", ms, p, false)

	s, p = resolve.String(field(m, "CORSOrigin"), w.CORSOrigin)
	w.CORSOrigin = s
	resolve.LogField(name, 1, "CORSOrigin", s, p, false)

	return true
}
