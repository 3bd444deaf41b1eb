package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseSpawn   Phase = iota // 0: advance the spawn clock, admit new formations
	PhaseUpdate               // 1: age, emergence, transforms, uniform writes
	PhaseOutput               // 2: event delivery, periodic reports
	PhaseCleanup              // 3: dispose queued formations
)

// System is the interface every tick system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
