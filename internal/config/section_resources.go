package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadResources(root tree, cfg *AppConfig) bool {
	const name = "Resources"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"MaxMemoryMB": true, "MaxBufferSize": true, "MinBufferSize": true,
		"MaxQueueSize": true, "MaxQueueMemoryMB": true, "MaxQueueBlocks": true,
		"QueueTimeoutMs": true, "PostProcessorBufferSize": true, "MinThreads": true,
		"MaxThreads": true, "ThreadStackSize": true, "MaxOpenFiles": true,
		"MaxFileSizeMB": true, "MaxLogSizeMB": true, "EnforceLimits": true,
		"LogUsage": true, "CheckIntervalMs": true,
	})

	r := &cfg.Resources

	n, p := resolve.Int(field(m, "MaxMemoryMB"), r.MaxMemoryMB, 1, 1<<20)
	r.MaxMemoryMB = n
	resolve.LogField(name, 1, "MaxMemoryMB", n, p, false)

	sz, p := resolve.Size(field(m, "MaxBufferSize"), r.MaxBufferSize)
	r.MaxBufferSize = sz
	resolve.LogField(name, 1, "MaxBufferSize", sz, p, false)

	sz, p = resolve.Size(field(m, "MinBufferSize"), r.MinBufferSize)
	r.MinBufferSize = sz
	resolve.LogField(name, 1, "MinBufferSize", sz, p, false)

	n, p = resolve.Int(field(m, "MaxQueueSize"), r.MaxQueueSize, 1, 10_000_000)
	r.MaxQueueSize = n
	resolve.LogField(name, 1, "MaxQueueSize", n, p, false)

	n, p = resolve.Int(field(m, "MaxQueueMemoryMB"), r.MaxQueueMemoryMB, 1, 1<<20)
	r.MaxQueueMemoryMB = n
	resolve.LogField(name, 1, "MaxQueueMemoryMB", n, p, false)

	n, p = resolve.Int(field(m, "MaxQueueBlocks"), r.MaxQueueBlocks, 1, 1_000_000)
	r.MaxQueueBlocks = n
	resolve.LogField(name, 1, "MaxQueueBlocks", n, p, false)

	n, p = resolve.Int(field(m, "QueueTimeoutMs"), r.QueueTimeoutMs, 0, 3600000)
	r.QueueTimeoutMs = n
	resolve.LogField(name, 1, "QueueTimeoutMs", n, p, false)

	sz, p = resolve.Size(field(m, "PostProcessorBufferSize"), r.PostProcessorBufferSize)
	r.PostProcessorBufferSize = sz
	resolve.LogField(name, 1, "PostProcessorBufferSize", sz, p, false)

	n, p = resolve.Int(field(m, "MinThreads"), r.MinThreads, 1, 1024)
	r.MinThreads = n
	resolve.LogField(name, 1, "MinThreads", n, p, false)

	n, p = resolve.Int(field(m, "MaxThreads"), r.MaxThreads, 1, 1024)
	r.MaxThreads = n
	resolve.LogField(name, 1, "MaxThreads", n, p, false)

	sz, p = resolve.Size(field(m, "ThreadStackSize"), r.ThreadStackSize)
	r.ThreadStackSize = sz
	resolve.LogField(name, 1, "ThreadStackSize", sz, p, false)

	n, p = resolve.Int(field(m, "MaxOpenFiles"), r.MaxOpenFiles, 1, 1_000_000)
	r.MaxOpenFiles = n
	resolve.LogField(name, 1, "MaxOpenFiles", n, p, false)

	n, p = resolve.Int(field(m, "MaxFileSizeMB"), r.MaxFileSizeMB, 1, 1<<20)
	r.MaxFileSizeMB = n
	resolve.LogField(name, 1, "MaxFileSizeMB", n, p, false)

	n, p = resolve.Int(field(m, "MaxLogSizeMB"), r.MaxLogSizeMB, 1, 1<<20)
	r.MaxLogSizeMB = n
	resolve.LogField(name, 1, "MaxLogSizeMB", n, p, false)

	b, p := resolve.Bool(field(m, "EnforceLimits"), r.EnforceLimits)
	r.EnforceLimits = b
	resolve.LogField(name, 1, "EnforceLimits", b, p, false)

	b, p = resolve.Bool(field(m, "LogUsage"), r.LogUsage)
	r.LogUsage = b
	resolve.LogField(name, 1, "LogUsage", b, p, false)

	n, p = resolve.Int(field(m, "CheckIntervalMs"), r.CheckIntervalMs, 100, 3600000)
	r.CheckIntervalMs = n
	resolve.LogField(name, 1, "CheckIntervalMs", n, p, false)

	return true
}
