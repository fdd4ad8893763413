package networkd

import (
	"strings"
	"testing"

	"github.com/maksimkurb/ip2networkd/src/internal/errors"
	"github.com/maksimkurb/ip2networkd/src/internal/iproute"
)

func render(t *testing.T, iface iproute.Interface, routes []iproute.Route) string {
	t.Helper()
	unit, err := BuildUnit(iface, routes)
	if err != nil {
		t.Fatalf("BuildUnit failed: %v", err)
	}
	return string(unit.Bytes())
}

func TestBuildUnit_StaticDefaultRoute(t *testing.T) {
	iface := iproute.Interface{
		IfName:   "eth0",
		LinkType: "ether",
		Address:  "aa:bb:cc:dd:ee:ff",
		AddrInfo: []iproute.AddrInfo{{Scope: "global", Local: "10.0.0.5", PrefixLen: 24}},
	}
	routes := []iproute.Route{{Protocol: "static", Dev: "eth0", Dst: "default", Gateway: "10.0.0.1"}}

	expected := `[Match]
MACAddress = aa:bb:cc:dd:ee:ff

[Network]
DHCP = yes
IPv6AcceptRA = yes
Address = 10.0.0.5/24

[Route]
Gateway = 10.0.0.1
DHCP = yes
`
	if got := render(t, iface, routes); got != expected {
		t.Errorf("Unexpected unit:\n%s\nwant:\n%s", got, expected)
	}
}

func TestBuildUnit_DynamicOnly(t *testing.T) {
	iface := iproute.Interface{IfName: "eth1", LinkType: "ether", Address: "aa:bb:cc:dd:ee:01"}

	expected := `[Match]
MACAddress = aa:bb:cc:dd:ee:01

[Network]
DHCP = yes
IPv6AcceptRA = yes
`
	if got := render(t, iface, nil); got != expected {
		t.Errorf("Unexpected unit:\n%s\nwant:\n%s", got, expected)
	}
}

func TestBuildUnit_Ordering(t *testing.T) {
	iface := iproute.Interface{
		IfName:  "eth0",
		Address: "aa:bb:cc:dd:ee:ff",
		AddrInfo: []iproute.AddrInfo{
			{Scope: "global", Local: "10.0.0.5", PrefixLen: 24},
			{Scope: "global", Local: "2001:db8::5", PrefixLen: 64},
		},
	}
	routes := []iproute.Route{
		{Protocol: "static", Dev: "eth0", Dst: "192.168.100.0/24", Gateway: "10.0.0.254"},
		{Protocol: "static", Dev: "eth1", Dst: "172.16.0.0/12", Gateway: "10.1.0.1"},
		{Protocol: "static", Dev: "eth0", Dst: "2001:db8:1::/48", Gateway: "2001:db8::1"},
		{Protocol: "boot", Dev: "eth0", Dst: "198.51.100.0/24"},
	}

	expected := `[Match]
MACAddress = aa:bb:cc:dd:ee:ff

[Network]
DHCP = yes
IPv6AcceptRA = yes
Address = 10.0.0.5/24
Address = 2001:db8::5/64

[Route]
Destination = 192.168.100.0/24
Gateway = 10.0.0.254
DHCP = yes

[Route]
Destination = 2001:db8:1::/48
Gateway = 2001:db8::1
DHCP = yes

[Route]
Destination = 198.51.100.0/24
DHCP = yes
`
	if got := render(t, iface, routes); got != expected {
		t.Errorf("Unexpected unit:\n%s\nwant:\n%s", got, expected)
	}
}

func TestBuildUnit_RoutesToOtherDevicesIgnored(t *testing.T) {
	iface := iproute.Interface{IfName: "eth0", Address: "aa:bb:cc:dd:ee:ff"}
	routes := []iproute.Route{
		{Protocol: "static", Dev: "eth00", Dst: "default", Gateway: "10.0.0.1"},
		{Protocol: "static", Dev: "missing0", Dst: "10.9.0.0/16"},
	}

	if got := render(t, iface, routes); strings.Contains(got, "[Route]") {
		t.Errorf("Expected no route sections, got:\n%s", got)
	}
}

func TestBuildUnit_MissingHardwareAddress(t *testing.T) {
	_, err := BuildUnit(iproute.Interface{IfName: "wg0"}, nil)
	if !errors.HasCode(err, errors.ErrCodeInternal) {
		t.Errorf("Expected internal error, got %v", err)
	}
}

func TestUnitFileName(t *testing.T) {
	tests := map[string]string{
		"eth0":     "eth0.network",
		"eth0.100": "eth0.100.network",
		"br-lan":   "br-lan.network",
	}
	for ifname, expected := range tests {
		if got := UnitFileName(ifname); got != expected {
			t.Errorf("UnitFileName(%q) = %q, want %q", ifname, got, expected)
		}
	}
}

func TestRoutesFor(t *testing.T) {
	routes := []iproute.Route{{Dev: "eth0", Dst: "a"}, {Dev: "eth1", Dst: "b"}, {Dev: "eth0", Dst: "c"}}

	got := RoutesFor(routes, "eth0")
	if len(got) != 2 || got[0].Dst != "a" || got[1].Dst != "c" {
		t.Errorf("RoutesFor() = %+v", got)
	}
	if got := RoutesFor(routes, "eth9"); len(got) != 0 {
		t.Errorf("Expected no routes, got %+v", got)
	}
}

func TestUnit_HeaderLines(t *testing.T) {
	unit := &Unit{Header: []string{"Generated", "", "do not edit"}}
	unit.AddSection("Match").Add("Name", "eth0")

	expected := "# Generated\n#\n# do not edit\n\n[Match]\nName = eth0\n"
	if got := string(unit.Bytes()); got != expected {
		t.Errorf("Unexpected unit %q, want %q", got, expected)
	}
}
