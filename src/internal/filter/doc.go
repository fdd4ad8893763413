// Package filter separates persistent, user-intended network configuration
// from state the system derives on its own.
//
// Interfaces drops loopback devices, devices without a hardware address and
// devices that end up with neither static nor dynamic addresses. Link-local and
// dynamic addresses are stripped from the survivors. Routes drops routes
// installed by the kernel, DHCP or router advertisements.
package filter
