// Package netinfo describes the address a request came from.
package netinfo

import (
	"fmt"
	"net"
	"net/netip"
)

// IP versions reported by Describe.
const (
	IPv4 = "IPv4"
	IPv6 = "IPv6"
)

// Info is the caller's address as seen by the server.
type Info struct {
	IP      string `json:"ip"`
	Version string `json:"version"`
}

// Describe parses a remote address, with or without a port. IPv4 addresses
// mapped into IPv6 are reported as IPv4.
func Describe(remoteAddr string) (Info, error) {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	addr, err := netip.ParseAddr(host)
	if err != nil {
		return Info{}, fmt.Errorf("parse remote address %q: %w", remoteAddr, err)
	}
	addr = addr.Unmap().WithZone("")

	version := IPv6
	if addr.Is4() {
		version = IPv4
	}
	return Info{IP: addr.String(), Version: version}, nil
}
