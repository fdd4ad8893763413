package filter

import (
	"path"

	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
)

// derivedRouteProtocols are always dropped: such routes come back on their own
// from the kernel, DHCP or router advertisements once DHCP is enabled.
var derivedRouteProtocols = []string{
	iproute.ProtocolDHCP,
	iproute.ProtocolKernel,
	iproute.ProtocolRA,
}

// Rules holds the user-tunable part of filtering. The zero value applies only
// the built-in rules.
type Rules struct {
	// ExcludeInterfaces are path.Match patterns of interface names to skip.
	ExcludeInterfaces []string
	// ExcludeRouteProtocols are dropped in addition to dhcp, kernel and ra.
	ExcludeRouteProtocols []string
}

// Interfaces returns the interfaces that carry persistent configuration, each
// with only its static, non link-local addresses. The input is not modified.
func Interfaces(interfaces []iproute.Interface, rules Rules) []iproute.Interface {
	filtered := make([]iproute.Interface, 0, len(interfaces))
	for _, iface := range interfaces {
		if iface.IsLoopback() {
			log.Debugf("Skipping loopback interface %s", iface.IfName)
			continue
		}
		if !iface.HasHardwareAddress() {
			// Names are not stable across boots, units match by MAC.
			log.Debugf("Skipping interface %s: no hardware address", iface.IfName)
			continue
		}
		if matchesAny(iface.IfName, rules.ExcludeInterfaces) {
			log.Debugf("Skipping interface %s: excluded by configuration", iface.IfName)
			continue
		}

		static, hasDynamicAddress := staticAddresses(iface.AddrInfo)
		if len(static) == 0 && !hasDynamicAddress {
			log.Debugf("Skipping interface %s: no static or dynamic addresses", iface.IfName)
			continue
		}

		iface.AddrInfo = static
		filtered = append(filtered, iface)
	}
	return filtered
}

// staticAddresses returns a new slice without link-scoped and dynamic
// addresses, and whether any dynamic address was seen.
func staticAddresses(addrs []iproute.AddrInfo) ([]iproute.AddrInfo, bool) {
	static := make([]iproute.AddrInfo, 0, len(addrs))
	hasDynamicAddress := false
	for _, addr := range addrs {
		if addr.IsLinkLocal() {
			continue
		}
		if addr.Dynamic {
			hasDynamicAddress = true
			continue
		}
		static = append(static, addr)
	}
	return static, hasDynamicAddress
}

// Routes returns the routes that are not re-derivable from DHCP, router
// advertisements or the kernel, in input order.
func Routes(routes []iproute.Route, rules Rules) []iproute.Route {
	excluded := make(map[string]struct{}, len(derivedRouteProtocols)+len(rules.ExcludeRouteProtocols))
	for _, protocol := range derivedRouteProtocols {
		excluded[protocol] = struct{}{}
	}
	for _, protocol := range rules.ExcludeRouteProtocols {
		excluded[protocol] = struct{}{}
	}

	filtered := make([]iproute.Route, 0, len(routes))
	for _, route := range routes {
		if _, ok := excluded[route.Protocol]; ok {
			continue
		}
		filtered = append(filtered, route)
	}
	return filtered
}

// Concat joins IPv4 and IPv6 routes, IPv4 first.
func Concat(ipv4Routes, ipv6Routes []iproute.Route) []iproute.Route {
	routes := make([]iproute.Route, 0, len(ipv4Routes)+len(ipv6Routes))
	routes = append(routes, ipv4Routes...)
	return append(routes, ipv6Routes...)
}

func matchesAny(name string, patterns []string) bool {
	for _, pattern := range patterns {
		// Patterns are validated when the config is loaded.
		if ok, _ := path.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
