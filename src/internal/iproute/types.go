package iproute

const (
	// DefaultDestination is the dst value iproute2 prints for a zero-length prefix.
	DefaultDestination = "default"

	// LinkTypeLoopback is the link_type of the loopback device.
	LinkTypeLoopback = "loopback"

	// ScopeGlobal and friends are the scope names printed in addr_info.
	ScopeGlobal  = "global"
	ScopeSite    = "site"
	ScopeLink    = "link"
	ScopeHost    = "host"
	ScopeNowhere = "nowhere"

	// Route protocol names as printed by iproute2.
	ProtocolKernel = "kernel"
	ProtocolBoot   = "boot"
	ProtocolStatic = "static"
	ProtocolRA     = "ra"
	ProtocolDHCP   = "dhcp"
)

// Interface is one entry of `ip -j addr`.
type Interface struct {
	IfName   string `json:"ifname"`
	LinkType string `json:"link_type"`
	// Address is the hardware address. Empty when the link has none.
	Address  string     `json:"address,omitempty"`
	AddrInfo []AddrInfo `json:"addr_info"`
}

// HasHardwareAddress reports whether the interface can be matched by MAC.
func (i Interface) HasHardwareAddress() bool {
	return i.Address != ""
}

// IsLoopback reports whether the interface is a loopback device.
func (i Interface) IsLoopback() bool {
	return i.LinkType == LinkTypeLoopback
}

// AddrInfo is one address assigned to an interface.
type AddrInfo struct {
	Scope string `json:"scope"`
	// Dynamic is set for addresses obtained via DHCP or router advertisements.
	Dynamic   bool   `json:"dynamic,omitempty"`
	Local     string `json:"local"`
	PrefixLen uint8  `json:"prefixlen"`
}

// IsLinkLocal reports whether the address has link scope.
func (a AddrInfo) IsLinkLocal() bool {
	return a.Scope == ScopeLink
}

// Route is one entry of `ip -j route`.
type Route struct {
	Protocol string `json:"protocol"`
	Dev      string `json:"dev"`
	Dst      string `json:"dst"`
	// Gateway is empty for directly connected routes.
	Gateway string `json:"gateway,omitempty"`
}

// IsDefault reports whether the route is the default route.
func (r Route) IsDefault() bool {
	return r.Dst == DefaultDestination
}

// HasGateway reports whether the route goes via a next hop.
func (r Route) HasGateway() bool {
	return r.Gateway != ""
}
