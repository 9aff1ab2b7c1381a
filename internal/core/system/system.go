package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput     Phase = iota // 0: deliver last tick's events
	PhaseInit                   // 1: deferred OnStart for late-added components
	PhaseCleanup                // 2: destroy queued entities
	PhaseUpdate                 // 3: per-entity behaviour
	PhaseCollision              // 4: pairwise overlap pass
)

func (p Phase) String() string {
	switch p {
	case PhaseInput:
		return "input"
	case PhaseInit:
		return "init"
	case PhaseCleanup:
		return "cleanup"
	case PhaseUpdate:
		return "update"
	case PhaseCollision:
		return "collision"
	}
	return "unknown"
}

// System is the interface every tick stage implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
