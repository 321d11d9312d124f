package internal

// PortAssigner assigns network ports to servers and tests.
type PortAssigner interface {
	// NewPort returns a port that is not currently in use.
	// Error is irrecoverable if no port can be assigned.
	NewPort() int
}

// FixedPort is a PortAssigner that always hands out the same, configured port.
type FixedPort int

// NewPort implements PortAssigner.
func (p FixedPort) NewPort() int { return int(p) }
