package config

import "github.com/hydrogen-project/hydrogen/internal/resolve"

func loadMDNSServer(root tree, cfg *AppConfig) bool {
	const name = "mDNSServer"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"EnableIPv4": true, "EnableIPv6": true, "DeviceId": true, "FriendlyName": true,
		"Model": true, "Manufacturer": true, "Version": true, "RetryCount": true,
		"Services": true,
	})

	s := &cfg.MDNSServer

	b, p := resolve.Bool(field(m, "EnableIPv4"), s.EnableIPv4)
	s.EnableIPv4 = b
	resolve.LogField(name, 1, "EnableIPv4", b, p, false)

	b, p = resolve.Bool(field(m, "EnableIPv6"), s.EnableIPv6)
	s.EnableIPv6 = b
	resolve.LogField(name, 1, "EnableIPv6", b, p, false)

	v, p := resolve.String(field(m, "DeviceId"), s.DeviceId)
	s.DeviceId = v
	resolve.LogField(name, 1, "DeviceId", v, p, false)

	v, p = resolve.String(field(m, "FriendlyName"), s.FriendlyName)
	s.FriendlyName = v
	resolve.LogField(name, 1, "FriendlyName", v, p, false)

	v, p = resolve.String(field(m, "Model"), s.Model)
	s.Model = v
	resolve.LogField(name, 1, "Model", v, p, false)

	v, p = resolve.String(field(m, "Manufacturer"), s.Manufacturer)
	s.Manufacturer = v
	resolve.LogField(name, 1, "Manufacturer", v, p, false)

	v, p = resolve.String(field(m, "Version"), s.Version)
	s.Version = v
	resolve.LogField(name, 1, "Version", v, p, false)

	n, p := resolve.Int(field(m, "RetryCount"), s.RetryCount, 0, 20)
	s.RetryCount = n
	resolve.LogField(name, 1, "RetryCount", n, p, false)

	s.Services = loadMDNSServices(array(m, "Services"))

	return true
}

func loadMDNSServices(raw []any) []MDNSService {
	if raw == nil {
		return nil
	}
	out := make([]MDNSService, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(tree)
		if !ok {
			continue
		}
		var svc MDNSService
		svc.Name, _ = resolve.String(field(m, "Name"), "")
		svc.Type, _ = resolve.String(field(m, "Type"), "_http._tcp")
		svc.Port, _ = resolve.Int(field(m, "Port"), 0, 1, 65535)
		svc.TxtRecords = coerceTxtRecords(field(m, "TxtRecords"))
		out = append(out, svc)
	}
	return out
}

// coerceTxtRecords accepts either a single string or a JSON array of
// strings for a service's TxtRecords, always producing a []string.
func coerceTxtRecords(raw any) []string {
	switch v := raw.(type) {
	case string:
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
