package networkd

import (
	"fmt"
	"strconv"

	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
)

// UnitExtension is the file extension systemd-networkd reads network units from.
const UnitExtension = "network"

const (
	sectionMatch   = "Match"
	sectionNetwork = "Network"
	sectionRoute   = "Route"

	keyMACAddress   = "MACAddress"
	keyDHCP         = "DHCP"
	keyIPv6AcceptRA = "IPv6AcceptRA"
	keyAddress      = "Address"
	keyDestination  = "Destination"
	keyGateway      = "Gateway"

	valueYes = "yes"
)

// UnitFileName returns the file name of the unit generated for an interface.
func UnitFileName(ifname string) string {
	return ifname + "." + UnitExtension
}

// BuildUnit maps a filtered interface and the filtered routes to a network unit.
// Only routes whose dev equals the interface name are included; the rest are
// silently ignored.
func BuildUnit(iface iproute.Interface, routes []iproute.Route) (*Unit, error) {
	if !iface.HasHardwareAddress() {
		return nil, errors.NewInternalError(
			fmt.Sprintf("filtered interface %s has no hardware address", iface.IfName), nil)
	}

	unit := &Unit{}

	// Bind by MAC so the unit survives device renaming.
	match := unit.AddSection(sectionMatch)
	match.Add(keyMACAddress, iface.Address)

	network := unit.AddSection(sectionNetwork)
	network.Add(keyDHCP, valueYes)
	network.Add(keyIPv6AcceptRA, valueYes)
	for _, addr := range iface.AddrInfo {
		network.Add(keyAddress, addr.Local+"/"+strconv.Itoa(int(addr.PrefixLen)))
	}

	for _, route := range RoutesFor(routes, iface.IfName) {
		section := unit.AddSection(sectionRoute)
		// networkd treats a route without Destination as the default route.
		if !route.IsDefault() {
			section.Add(keyDestination, route.Dst)
		}
		if route.HasGateway() {
			section.Add(keyGateway, route.Gateway)
		}
		section.Add(keyDHCP, valueYes)
	}

	return unit, nil
}

// RoutesFor returns the routes bound to device ifname, keeping their order.
func RoutesFor(routes []iproute.Route, ifname string) []iproute.Route {
	var matched []iproute.Route
	for _, route := range routes {
		if route.Dev == ifname {
			matched = append(matched, route)
		}
	}
	return matched
}
