package config

import (
	"sort"

	"github.com/hydrogen-project/hydrogen/internal/resolve"
	"github.com/rs/zerolog/log"
)

func loadNetwork(root tree, cfg *AppConfig) bool {
	const name = "Network"
	resolve.LogSectionHeader(name)
	m := section(root, name)
	warnUnknownKeys(name, m, map[string]bool{
		"Interfaces": true, "PortAllocation": true, "Available": true,
	})

	n := &cfg.Network

	il := object(m, "Interfaces")
	v, p := resolve.Int(field(il, "MaxInterfaces"), n.Interfaces.MaxInterfaces, 1, 256)
	n.Interfaces.MaxInterfaces = v
	resolve.LogField(name, 1, "Interfaces.MaxInterfaces", v, p, false)

	v, p = resolve.Int(field(il, "MaxIPsPerInterface"), n.Interfaces.MaxIPsPerInterface, 1, 64)
	n.Interfaces.MaxIPsPerInterface = v
	resolve.LogField(name, 1, "Interfaces.MaxIPsPerInterface", v, p, false)

	v, p = resolve.Int(field(il, "MaxInterfaceNameLength"), n.Interfaces.MaxInterfaceNameLength, 1, 256)
	n.Interfaces.MaxInterfaceNameLength = v
	resolve.LogField(name, 1, "Interfaces.MaxInterfaceNameLength", v, p, false)

	v, p = resolve.Int(field(il, "MaxIPAddressLength"), n.Interfaces.MaxIPAddressLength, 1, 256)
	n.Interfaces.MaxIPAddressLength = v
	resolve.LogField(name, 1, "Interfaces.MaxIPAddressLength", v, p, false)

	pa := object(m, "PortAllocation")
	startPort, p := resolve.Int(field(pa, "StartPort"), n.PortAlloc.StartPort, 1, 65535)
	resolve.LogField(name, 1, "PortAllocation.StartPort", startPort, p, false)

	endPort, p := resolve.Int(field(pa, "EndPort"), n.PortAlloc.EndPort, 1, 65535)
	resolve.LogField(name, 1, "PortAllocation.EndPort", endPort, p, false)

	if endPort < startPort {
		log.Error().Int64("start_port", startPort).Int64("end_port", endPort).
			Msg("Network.PortAllocation.EndPort is before StartPort, rejecting section")
		return false
	}
	n.PortAlloc.StartPort = startPort
	n.PortAlloc.EndPort = endPort

	reserved, ok := loadReservedPorts(pa, startPort, endPort)
	if !ok {
		return false
	}
	n.PortAlloc.ReservedPorts = reserved
	resolve.LogField(name, 2, "PortAllocation.ReservedPorts", reserved, resolveKindFor(pa, "ReservedPorts"), false)

	n.Available = loadAvailableInterfaces(object(m, "Available"))

	return true
}

// resolveKindFor reports config-vs-default provenance for a list field
// without re-running the (non-scalar) coercion — lists have no single
// scalar to hand to resolve.*, but still participate in the provenance log.
func resolveKindFor(m tree, key string) resolve.Provenance {
	if field(m, key) != nil {
		return resolve.Provenance{Kind: resolve.LiteralFromConfig}
	}
	return resolve.Provenance{Kind: resolve.DefaultNoConfigValue}
}

func loadReservedPorts(pa tree, startPort, endPort int64) ([]int64, bool) {
	raw := array(pa, "ReservedPorts")
	if raw == nil {
		return nil, true
	}

	seen := make(map[int64]bool, len(raw))
	out := make([]int64, 0, len(raw))
	for _, item := range raw {
		f, ok := item.(float64)
		if !ok {
			log.Error().Interface("value", item).Msg("Network.PortAllocation.ReservedPorts entry is not an integer, rejecting section")
			return nil, false
		}
		port := int64(f)
		if port < startPort || port > endPort {
			log.Error().Int64("port", port).Int64("start_port", startPort).Int64("end_port", endPort).
				Msg("reserved port out of range, rejecting Network section")
			return nil, false
		}
		if seen[port] {
			log.Error().Int64("port", port).Msg("duplicate reserved port, rejecting Network section")
			return nil, false
		}
		seen[port] = true
		out = append(out, port)
	}
	return out, true
}

func loadAvailableInterfaces(m tree) []AvailableInterface {
	if m == nil {
		return []AvailableInterface{{Name: "all", Available: true}}
	}
	out := make([]AvailableInterface, 0, len(m))
	for k, v := range m {
		avail, _ := v.(bool)
		out = append(out, AvailableInterface{Name: k, Available: avail})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
