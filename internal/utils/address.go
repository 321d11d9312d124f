package utils

import (
	"net"
	"strconv"
)

// LocalAddress returns the http base URL reaching a server bound to host
// and port from the same machine. Wildcard hosts map to the loopback address.
func LocalAddress(host string, port int) string {
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(port))
}
