package system

import (
	"testing"
	"time"
)

type recordingSystem struct {
	phase Phase
	trace *[]Phase
}

func (s *recordingSystem) Phase() Phase { return s.phase }
func (s *recordingSystem) Update(_ time.Duration) {
	*s.trace = append(*s.trace, s.phase)
}

func TestRunnerPhaseOrder(t *testing.T) {
	var trace []Phase
	r := NewRunner()
	// Register out of order; Tick must still run Spawn→Update→Output→Cleanup.
	r.Register(&recordingSystem{PhaseCleanup, &trace})
	r.Register(&recordingSystem{PhaseSpawn, &trace})
	r.Register(&recordingSystem{PhaseOutput, &trace})
	r.Register(&recordingSystem{PhaseUpdate, &trace})

	r.Tick(16 * time.Millisecond)

	want := []Phase{PhaseSpawn, PhaseUpdate, PhaseOutput, PhaseCleanup}
	if len(trace) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(trace), len(want))
	}
	for i, p := range want {
		if trace[i] != p {
			t.Errorf("position %d: got phase %d, want %d", i, trace[i], p)
		}
	}
}

func TestRunnerRegisterAfterTick(t *testing.T) {
	var trace []Phase
	r := NewRunner()
	r.Register(&recordingSystem{PhaseUpdate, &trace})
	r.Tick(time.Millisecond)

	r.Register(&recordingSystem{PhaseSpawn, &trace})
	trace = trace[:0]
	r.Tick(time.Millisecond)

	if len(trace) != 2 || trace[0] != PhaseSpawn || trace[1] != PhaseUpdate {
		t.Fatalf("late registration not re-sorted: %v", trace)
	}
}
