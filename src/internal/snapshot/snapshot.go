package snapshot

import (
	"fmt"

	"github.com/vishvananda/netlink"

	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
	"github.com/maksimkurb/ip2networkd/src/internal/log"
)

// Source is the subset of netlink used to read kernel state.
// *netlink.Handle satisfies it.
type Source interface {
	LinkList() ([]netlink.Link, error)
	AddrList(link netlink.Link, family int) ([]netlink.Addr, error)
	RouteList(link netlink.Link, family int) ([]netlink.Route, error)
}

// Snapshot is the kernel state as `ip -j addr` and `ip -j route` would print it.
type Snapshot struct {
	Interfaces []iproute.Interface
	IPv4Routes []iproute.Route
	IPv6Routes []iproute.Route
}

// Take reads the current network namespace.
func Take() (*Snapshot, error) {
	handle, err := netlink.NewHandle()
	if err != nil {
		return nil, errors.NewInputError("failed to open netlink socket", err)
	}
	defer handle.Close()

	return TakeFrom(handle)
}

// TakeFrom reads links, their addresses and main-table routes from src.
func TakeFrom(src Source) (*Snapshot, error) {
	links, err := src.LinkList()
	if err != nil {
		return nil, errors.NewInputError("failed to list links", err)
	}

	names := make(map[int]string, len(links))
	snapshot := &Snapshot{Interfaces: make([]iproute.Interface, 0, len(links))}
	for _, link := range links {
		attrs := link.Attrs()
		names[attrs.Index] = attrs.Name

		addrs, err := src.AddrList(link, netlink.FAMILY_ALL)
		if err != nil {
			return nil, errors.NewInputError(fmt.Sprintf("failed to list addresses of %s", attrs.Name), err)
		}
		snapshot.Interfaces = append(snapshot.Interfaces, ConvertLink(link, addrs))
	}

	if snapshot.IPv4Routes, err = listRoutes(src, netlink.FAMILY_V4, names); err != nil {
		return nil, err
	}
	if snapshot.IPv6Routes, err = listRoutes(src, netlink.FAMILY_V6, names); err != nil {
		return nil, err
	}

	log.Debugf("Snapshot: %d links, %d IPv4 routes, %d IPv6 routes",
		len(snapshot.Interfaces), len(snapshot.IPv4Routes), len(snapshot.IPv6Routes))
	return snapshot, nil
}

func listRoutes(src Source, family int, names map[int]string) ([]iproute.Route, error) {
	routes, err := src.RouteList(nil, family)
	if err != nil {
		return nil, errors.NewInputError(fmt.Sprintf("failed to list routes (family %d)", family), err)
	}

	converted := make([]iproute.Route, 0, len(routes))
	for _, route := range routes {
		converted = append(converted, ConvertRoute(route, names))
	}
	return converted, nil
}
