package sheets

import (
	"testing"
	"time"

	"a320fwc/nvm"
	"a320fwc/parameters"
	"a320fwc/signal"
)

type fakeTakeoffPower struct{ toPwr bool }

func (f *fakeTakeoffPower) CfmFlex() bool      { return false }
func (f *fakeTakeoffPower) Eng1Or2ToPwr() bool { return f.toPwr }

func fpgInputs() signal.Inputs { return coldAndDarkInputs() }

// activePhase returns which of the seven mutually-exclusive ground phases
// is asserted (0 if none), and fails the test outright if more than one is.
func activePhase(t *testing.T, s *FlightPhasesGround) int {
	t.Helper()
	phases := map[int]bool{
		1: s.Phase1(), 2: s.Phase2(), 3: s.Phase3(), 4: s.Phase4(),
		8: s.Phase8(), 9: s.Phase9(), 10: s.Phase10(),
	}
	active := 0
	count := 0
	for p, on := range phases {
		if on {
			active = p
			count++
		}
	}
	if count > 1 {
		t.Fatalf("expected at most one ground phase asserted, got %d asserted (phases=%v)", count, phases)
	}
	return active
}

// TestFlightPhasesGroundScenarioWalk drives FlightPhasesGround directly
// through the cold-and-dark -> engine start -> takeoff roll -> airborne
// speed -> rejected takeoff -> post-flight shutdown progression, injecting
// GroundDetection/SpeedDetection/BothEngineRunning outputs rather than
// deriving them, so this sheet is exercised in isolation per its own
// documented time constants (bypassing, e.g., the 30s engine-running
// debounce modeled by BothEngineRunning, which is covered by its own
// tests).
func TestFlightPhasesGroundScenarioWalk(t *testing.T) {
	s := NewFlightPhasesGround(nvm.NewStore())
	in := signal.NewTable(fpgInputs())
	top := &fakeTakeoffPower{}

	update := func(g GroundSignals) int {
		s.Update(tick(time.Second), in, g)
		return activePhase(t, s)
	}

	// 1: cold and dark.
	if p := update(GroundSignals{Ground: true, GroundImmediate: true, Eng1AndEng2NotRunning: true, TakeoffPower: top}); p != 1 {
		t.Fatalf("step 1 (cold and dark): expected phase 1, got %d", p)
	}

	// 2: engine started on ground.
	if p := update(GroundSignals{
		Ground: true, GroundImmediate: true,
		Eng1Or2Running: true, OneEngRunning: true,
		TakeoffPower: top,
	}); p != 2 {
		t.Fatalf("step 2 (engine started): expected phase 2, got %d", p)
	}

	// 3: takeoff roll before 80kt.
	top.toPwr = true
	if p := update(GroundSignals{
		Ground: true, GroundImmediate: true,
		Eng1Or2Running: true, OneEngRunning: true,
		TakeoffPower: top,
	}); p != 3 {
		t.Fatalf("step 3 (takeoff roll): expected phase 3, got %d", p)
	}

	// 4: above 80kt at takeoff power.
	if p := update(GroundSignals{
		Ground: true, GroundImmediate: true,
		AcSpeedAbove80Kt: true,
		Eng1Or2Running:   true, OneEngRunning: true,
		TakeoffPower: top,
	}); p != 4 {
		t.Fatalf("step 4 (above 80kt): expected phase 4, got %d", p)
	}

	// 5a: takeoff power drops, speed hasn't decayed yet -> phase 8.
	top.toPwr = false
	if p := update(GroundSignals{
		Ground: true, GroundImmediate: true,
		AcSpeedAbove80Kt: true,
		Eng1Or2Running:   true, OneEngRunning: true,
		TakeoffPower: top,
	}); p != 8 {
		t.Fatalf("step 5a (rejected takeoff, still fast): expected phase 8, got %d", p)
	}

	// 5b: speed clears 80kt -> phase 9.
	if p := update(GroundSignals{
		Ground: true, GroundImmediate: true,
		Eng1Or2Running: true, OneEngRunning: true,
		TakeoffPower: top,
	}); p != 9 {
		t.Fatalf("step 5b (rejected takeoff, decelerated): expected phase 9, got %d", p)
	}

	// 6: engines shut down -> phase 10 for 300s, then phase 1.
	shutdown := GroundSignals{Ground: true, GroundImmediate: true, Eng1AndEng2NotRunning: true, TakeoffPower: top}
	if p := update(shutdown); p != 10 {
		t.Fatalf("step 6 (shutdown, tick 1): expected phase 10, got %d", p)
	}
	for i := 0; i < 299; i++ {
		if p := update(shutdown); p != 10 {
			t.Fatalf("step 6 (shutdown, tick %d): expected phase 10 to hold for 300s, got %d", i+2, p)
		}
	}
	if p := update(shutdown); p != 1 {
		t.Fatalf("step 6 (shutdown, tick 301): expected phase 1 once the 300s reset delay elapses, got %d", p)
	}
}

func TestFlightPhasesGroundNVMMemorySurvivesFreshSheetSameStore(t *testing.T) {
	store := nvm.NewStore()
	s := NewFlightPhasesGround(store)
	in := signal.NewTable(fpgInputs())
	top := &fakeTakeoffPower{toPwr: true}

	// Drive into phase 3 so the phase 2/9 NVM latch sets.
	s.Update(tick(time.Second), in, GroundSignals{
		Ground: true, GroundImmediate: true,
		Eng1Or2Running: true, OneEngRunning: true,
		TakeoffPower: top,
	})
	if !s.Phase3() {
		t.Fatalf("expected phase 3 to set the shared NVM latch as a precondition")
	}

	fresh := NewFlightPhasesGround(store)
	if !fresh.phase9Mem.Get() {
		t.Fatalf("expected a freshly constructed sheet sharing the store to read back the latched value")
	}
}

func TestFlightPhasesGroundEng1FirePbOutHeldOnGroundStaysPhase1(t *testing.T) {
	s := NewFlightPhasesGround(nvm.NewStore())
	top := &fakeTakeoffPower{}

	inputs := fpgInputs()
	inputs.Eng1FirePbOut = parameters.NewDiscrete(true) // fire PB pressed, then held
	in := signal.NewTable(inputs)

	for i := 0; i < 3; i++ {
		s.Update(tick(time.Second), in, GroundSignals{Ground: true, GroundImmediate: true, Eng1AndEng2NotRunning: true, TakeoffPower: top})
	}
	if p := activePhase(t, s); p != 1 {
		t.Fatalf("expected fire-PB handling to still converge to phase 1 on ground, got %d", p)
	}
}
