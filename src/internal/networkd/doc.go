// Package networkd renders systemd-networkd .network units from filtered
// iproute2 facts and writes them to a directory.
//
// Each unit matches its device by MAC address, enables DHCP and IPv6 router
// advertisements, lists the static addresses and carries one [Route] section
// per static route of the device:
//
//	[Match]
//	MACAddress = aa:bb:cc:dd:ee:ff
//
//	[Network]
//	DHCP = yes
//	IPv6AcceptRA = yes
//	Address = 10.0.0.5/24
//
//	[Route]
//	Gateway = 10.0.0.1
//	DHCP = yes
//
// Output is deterministic, so regenerating into the same directory yields
// byte-identical files.
package networkd
