// Package snapshot reads links, addresses and routes from the running kernel
// over netlink and converts them to the records iproute2 prints with -j, so
// live state can be fed to the same filter and emitter as saved JSON.
package snapshot
