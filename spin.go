package lobster

// Spin identifies a spin channel: 1 for spin up (majority) and -1 for
// spin down (minority).
type Spin int

const (
	SpinUp   Spin = 1
	SpinDown Spin = -1
)

func (s Spin) String() string {
	switch s {
	case SpinUp:
		return "up"
	case SpinDown:
		return "down"
	}
	return "unknown"
}

// spinsFor returns the spin channels present in a calculation.
func spinsFor(polarized bool) []Spin {
	if polarized {
		return []Spin{SpinUp, SpinDown}
	}
	return []Spin{SpinUp}
}
