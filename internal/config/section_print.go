package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadPrint(root tree, cfg *AppConfig) bool {
	const name = "Print"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Enabled": true, "MaxQueuedJobs": true, "MaxConcurrentJobs": true,
		"Priorities": true, "Timeouts": true, "Buffers": true, "Motion": true,
	})

	pr := &cfg.Print

	b, p := resolve.Bool(field(m, "Enabled"), pr.Enabled)
	pr.Enabled = b
	resolve.LogField(name, 1, "Enabled", b, p, false)

	n, p := resolve.Int(field(m, "MaxQueuedJobs"), pr.MaxQueuedJobs, 1, 100000)
	pr.MaxQueuedJobs = n
	resolve.LogField(name, 1, "MaxQueuedJobs", n, p, false)

	n, p = resolve.Int(field(m, "MaxConcurrentJobs"), pr.MaxConcurrentJobs, 1, 256)
	pr.MaxConcurrentJobs = n
	resolve.LogField(name, 1, "MaxConcurrentJobs", n, p, false)

	pri := object(m, "Priorities")
	n, p = resolve.Int(field(pri, "Default"), pr.Priorities.Default, 0, 100)
	pr.Priorities.Default = n
	resolve.LogField(name, 2, "Priorities.Default", n, p, false)

	n, p = resolve.Int(field(pri, "Emergency"), pr.Priorities.Emergency, 0, 100)
	pr.Priorities.Emergency = n
	resolve.LogField(name, 2, "Priorities.Emergency", n, p, false)

	n, p = resolve.Int(field(pri, "Maintenance"), pr.Priorities.Maintenance, 0, 100)
	pr.Priorities.Maintenance = n
	resolve.LogField(name, 2, "Priorities.Maintenance", n, p, false)

	n, p = resolve.Int(field(pri, "System"), pr.Priorities.System, 0, 100)
	pr.Priorities.System = n
	resolve.LogField(name, 2, "Priorities.System", n, p, false)

	to := object(m, "Timeouts")
	n, p = resolve.Int(field(to, "ShutdownWaitMs"), pr.Timeouts.ShutdownWaitMs, 0, 600000)
	pr.Timeouts.ShutdownWaitMs = n
	resolve.LogField(name, 2, "Timeouts.ShutdownWaitMs", n, p, false)

	n, p = resolve.Int(field(to, "JobProcessingTimeoutMs"), pr.Timeouts.JobProcessingTimeoutMs, 0, 86400000)
	pr.Timeouts.JobProcessingTimeoutMs = n
	resolve.LogField(name, 2, "Timeouts.JobProcessingTimeoutMs", n, p, false)

	buf := object(m, "Buffers")
	sz, p := resolve.Size(field(buf, "JobMessageSize"), pr.Buffers.JobMessageSize)
	pr.Buffers.JobMessageSize = sz
	resolve.LogField(name, 2, "Buffers.JobMessageSize", sz, p, false)

	sz, p = resolve.Size(field(buf, "StatusMessageSize"), pr.Buffers.StatusMessageSize)
	pr.Buffers.StatusMessageSize = sz
	resolve.LogField(name, 2, "Buffers.StatusMessageSize", sz, p, false)

	mo := object(m, "Motion")
	f, p := resolve.Double(field(mo, "MaxSpeed"), pr.Motion.MaxSpeed)
	pr.Motion.MaxSpeed = f
	resolve.LogField(name, 2, "Motion.MaxSpeed", f, p, false)

	f, p = resolve.Double(field(mo, "MaxSpeedXY"), pr.Motion.MaxSpeedXY)
	pr.Motion.MaxSpeedXY = f
	resolve.LogField(name, 2, "Motion.MaxSpeedXY", f, p, false)

	f, p = resolve.Double(field(mo, "MaxSpeedZ"), pr.Motion.MaxSpeedZ)
	pr.Motion.MaxSpeedZ = f
	resolve.LogField(name, 2, "Motion.MaxSpeedZ", f, p, false)

	f, p = resolve.Double(field(mo, "MaxSpeedTravel"), pr.Motion.MaxSpeedTravel)
	pr.Motion.MaxSpeedTravel = f
	resolve.LogField(name, 2, "Motion.MaxSpeedTravel", f, p, false)

	f, p = resolve.Double(field(mo, "Acceleration"), pr.Motion.Acceleration)
	pr.Motion.Acceleration = f
	resolve.LogField(name, 2, "Motion.Acceleration", f, p, false)

	f, p = resolve.Double(field(mo, "ZAcceleration"), pr.Motion.ZAcceleration)
	pr.Motion.ZAcceleration = f
	resolve.LogField(name, 2, "Motion.ZAcceleration", f, p, false)

	f, p = resolve.Double(field(mo, "EAcceleration"), pr.Motion.EAcceleration)
	pr.Motion.EAcceleration = f
	resolve.LogField(name, 2, "Motion.EAcceleration", f, p, false)

	f, p = resolve.Double(field(mo, "Jerk"), pr.Motion.Jerk)
	pr.Motion.Jerk = f
	resolve.LogField(name, 2, "Motion.Jerk", f, p, false)

	b, p = resolve.Bool(field(mo, "SmoothMoves"), pr.Motion.SmoothMoves)
	pr.Motion.SmoothMoves = b
	resolve.LogField(name, 2, "Motion.SmoothMoves", b, p, false)

	return true
}
