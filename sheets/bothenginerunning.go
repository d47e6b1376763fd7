package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/signal"
)

// BothEngineRunning aggregates the per-engine EnginesNotRunning outputs
// into the propulsion signals the flight-phase sheet actually consumes:
// whether both engines are confirmed not running, whether any core-speed
// channel is live right now, and a debounced "there is propulsion" signal.
type BothEngineRunning struct {
	eng1Or2RunningConfirm *logic.ConfirmationNode

	eng1And2NotRunning bool
	oneEngRunning      bool
	eng1Or2Running     bool
}

func NewBothEngineRunning() *BothEngineRunning {
	return &BothEngineRunning{
		eng1Or2RunningConfirm: logic.NewConfirmation(true, 30*time.Second),
	}
}

// BothEngineRunningInputs is the capability set BothEngineRunning depends on.
type BothEngineRunningInputs interface {
	signal.EngCoreSpeedAtOrAboveIdle
}

// Update recomputes the aggregates. eng1NotRunning and eng2NotRunning are
// this tick's EnginesNotRunning outputs.
func (s *BothEngineRunning) Update(ctx logic.TickContext, in BothEngineRunningInputs, eng1NotRunning, eng2NotRunning bool) {
	s.eng1And2NotRunning = eng1NotRunning && eng2NotRunning

	s.oneEngRunning = in.EngCoreSpeedAtOrAboveIdle(1, 1).Value() ||
		in.EngCoreSpeedAtOrAboveIdle(1, 2).Value() ||
		in.EngCoreSpeedAtOrAboveIdle(2, 1).Value() ||
		in.EngCoreSpeedAtOrAboveIdle(2, 2).Value()

	s.eng1Or2Running = s.eng1Or2RunningConfirm.Update(ctx, s.oneEngRunning)
}

// Eng1AndEng2NotRunning reports whether both engines are not running.
func (s *BothEngineRunning) Eng1AndEng2NotRunning() bool { return s.eng1And2NotRunning }

// OneEngRunning reports whether any raw core-speed channel is live this
// instant, with no debounce.
func (s *BothEngineRunning) OneEngRunning() bool { return s.oneEngRunning }

// Eng1Or2Running reports propulsion debounced by a 30s leading-edge
// confirmation.
func (s *BothEngineRunning) Eng1Or2Running() bool { return s.eng1Or2Running }
