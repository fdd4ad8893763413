package snapshot

import (
	"net"
	"strconv"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
)

var scopeNames = map[int]string{
	unix.RT_SCOPE_UNIVERSE: iproute.ScopeGlobal,
	unix.RT_SCOPE_SITE:     iproute.ScopeSite,
	unix.RT_SCOPE_LINK:     iproute.ScopeLink,
	unix.RT_SCOPE_HOST:     iproute.ScopeHost,
	unix.RT_SCOPE_NOWHERE:  iproute.ScopeNowhere,
}

// Same names as iproute2's rt_protos table.
var protocolNames = map[int]string{
	unix.RTPROT_UNSPEC:     "unspec",
	unix.RTPROT_REDIRECT:   "redirect",
	unix.RTPROT_KERNEL:     iproute.ProtocolKernel,
	unix.RTPROT_BOOT:       iproute.ProtocolBoot,
	unix.RTPROT_STATIC:     iproute.ProtocolStatic,
	unix.RTPROT_GATED:      "gated",
	unix.RTPROT_RA:         iproute.ProtocolRA,
	unix.RTPROT_MRT:        "mrt",
	unix.RTPROT_ZEBRA:      "zebra",
	unix.RTPROT_BIRD:       "bird",
	unix.RTPROT_DNROUTED:   "dnrouted",
	unix.RTPROT_XORP:       "xorp",
	unix.RTPROT_NTK:        "ntk",
	unix.RTPROT_DHCP:       iproute.ProtocolDHCP,
	unix.RTPROT_KEEPALIVED: "keepalived",
	unix.RTPROT_BABEL:      "babel",
	unix.RTPROT_BGP:        "bgp",
	unix.RTPROT_ISIS:       "isis",
	unix.RTPROT_OSPF:       "ospf",
	unix.RTPROT_RIP:        "rip",
	unix.RTPROT_EIGRP:      "eigrp",
}

// ScopeName returns the iproute2 name of an address scope.
func ScopeName(scope int) string {
	if name, ok := scopeNames[scope]; ok {
		return name
	}
	return strconv.Itoa(scope)
}

// ProtocolName returns the iproute2 name of a route protocol.
func ProtocolName(protocol int) string {
	if name, ok := protocolNames[protocol]; ok {
		return name
	}
	return strconv.Itoa(protocol)
}

// ConvertLink builds the `ip -j addr` entry of a link.
func ConvertLink(link netlink.Link, addrs []netlink.Addr) iproute.Interface {
	attrs := link.Attrs()

	iface := iproute.Interface{
		IfName:   attrs.Name,
		LinkType: attrs.EncapType,
		AddrInfo: make([]iproute.AddrInfo, 0, len(addrs)),
	}
	if len(attrs.HardwareAddr) > 0 {
		iface.Address = attrs.HardwareAddr.String()
	}
	for _, addr := range addrs {
		if addr.IPNet == nil {
			continue
		}
		iface.AddrInfo = append(iface.AddrInfo, ConvertAddr(addr))
	}
	return iface
}

// ConvertAddr builds an addr_info entry. Addresses without IFA_F_PERMANENT
// were configured by DHCP or SLAAC and are reported as dynamic, as ip does.
func ConvertAddr(addr netlink.Addr) iproute.AddrInfo {
	ones, _ := addr.Mask.Size()
	return iproute.AddrInfo{
		Scope:     ScopeName(addr.Scope),
		Dynamic:   addr.Flags&unix.IFA_F_PERMANENT == 0,
		Local:     addr.IP.String(),
		PrefixLen: uint8(ones),
	}
}

// ConvertRoute builds the `ip -j route` entry of a route. names maps link
// indexes to interface names.
func ConvertRoute(route netlink.Route, names map[int]string) iproute.Route {
	converted := iproute.Route{
		Protocol: ProtocolName(int(route.Protocol)),
		Dst:      destination(route.Dst),
	}
	// Multipath routes have no single device or gateway.
	if len(route.MultiPath) > 0 {
		return converted
	}
	converted.Dev = names[route.LinkIndex]
	if route.Gw != nil {
		converted.Gateway = route.Gw.String()
	}
	return converted
}

// destination formats dst like ip: "default" for /0, a bare address for host routes.
func destination(dst *net.IPNet) string {
	if dst == nil {
		return iproute.DefaultDestination
	}
	ones, bits := dst.Mask.Size()
	switch {
	case ones == 0:
		return iproute.DefaultDestination
	case ones == bits:
		return dst.IP.String()
	default:
		return dst.String()
	}
}
