package showrunner

import (
	"time"
)

// Kind tells the three run modes apart.
type Kind int

const (
	// KindLive sends notifications and persists the checkpoint.
	KindLive Kind = iota
	// KindSimulated computes everything, sends nothing and persists nothing.
	KindSimulated
	// KindOverride runs over explicit bounds and never persists the checkpoint.
	KindOverride
)

func (k Kind) String() string {
	switch k {
	case KindLive:
		return "live"
	case KindSimulated:
		return "simulated"
	case KindOverride:
		return "override"
	default:
		return "unknown"
	}
}

// Overrides replace the values a task would otherwise read from its
// checkpoint or from the chain.
type Overrides struct {
	FromBlock *int64
	ToBlock   *int64
	Since     *time.Time
	Addresses []string

	// Transmit sends notifications for real instead of simulating them.
	Transmit bool
}

// RunMode is how a single task run behaves.
type RunMode struct {
	kind      Kind
	overrides Overrides
}

func Live() RunMode { return RunMode{kind: KindLive} }

func Simulated() RunMode { return RunMode{kind: KindSimulated} }

func Override(o Overrides) RunMode { return RunMode{kind: KindOverride, overrides: o} }

func (m RunMode) Kind() Kind { return m.kind }

// Overrides is empty unless the mode is KindOverride.
func (m RunMode) Overrides() Overrides { return m.overrides }

// Persists reports whether the run may write its checkpoint.
func (m RunMode) Persists() bool {
	switch m.kind {
	case KindLive:
		return true
	case KindSimulated, KindOverride:
		return false
	default:
		return false
	}
}

// Transmits reports whether notifications leave the process.
func (m RunMode) Transmits() bool {
	switch m.kind {
	case KindLive:
		return true
	case KindSimulated:
		return false
	case KindOverride:
		return m.overrides.Transmit
	default:
		return false
	}
}

func (m RunMode) String() string {
	return m.kind.String()
}
