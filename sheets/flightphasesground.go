package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/nvm"
	"a320fwc/signal"
)

// phase9MemKey is the nvm.Store key the phase 2/9 shared memory latch is
// persisted under.
const phase9MemKey = "fwc.flight_phase.phase9_mem"

// FlightPhasesGround derives the mutually-exclusive ground flight phases
// (1, 2, 3, 4, 8, 9, 10) from ground, speed, propulsion and takeoff-power
// signals. Phases 5, 6 and 7 (airborne) are intentionally out of scope:
// they belong to a separate sheet this core does not implement.
type FlightPhasesGround struct {
	store *nvm.Store

	fireTransient *logic.TransientDetectionNode
	fireConfirm02 *logic.ConfirmationNode
	mtrig5        *logic.MonostableTriggerNode

	gi2sMonostable *logic.MonostableTriggerNode

	mtrig1 *logic.MonostableTriggerNode
	mtrig2 *logic.MonostableTriggerNode
	mtrig4 *logic.MonostableTriggerNode
	prec9  *logic.PrecedingValueNode
	phase9Mem *logic.MemoryNode

	mem10  *logic.MemoryNode
	mtrig3 *logic.MonostableTriggerNode

	phase1, phase2, phase3, phase4, phase8, phase9, phase10 bool
}

// NewFlightPhasesGround constructs the sheet. store backs the phase 2/9
// shared memory's NVM flag: on construction the sheet reads any previously
// persisted latch value and seeds itself with it, modeling the memory
// relay holding its contacts through a simulated power flicker.
func NewFlightPhasesGround(store *nvm.Store) *FlightPhasesGround {
	s := &FlightPhasesGround{
		store: store,

		fireTransient: logic.NewTransientDetection(false),
		fireConfirm02: logic.NewConfirmation(true, 200*time.Millisecond),
		mtrig5:        logic.NewMonostableTrigger(true, 2*time.Second, false),

		gi2sMonostable: logic.NewMonostableTrigger(true, 2*time.Second, false),

		mtrig1:    logic.NewMonostableTrigger(false, 1*time.Second, false),
		mtrig2:    logic.NewMonostableTrigger(false, 3*time.Second, false),
		mtrig4:    logic.NewMonostableTrigger(true, 2*time.Second, false),
		prec9:     logic.NewPrecedingValue(),
		phase9Mem: logic.NewNVMMemory(true),

		mem10:  logic.NewMemory(false),
		mtrig3: logic.NewMonostableTrigger(true, 300*time.Second, false),
	}
	if seed, ok := store.Load(phase9MemKey); ok {
		s.phase9Mem.Seed(seed)
	}
	return s
}

// FlightPhasesGroundInputs is the capability set FlightPhasesGround
// depends on.
type FlightPhasesGroundInputs interface {
	signal.Eng1FirePbOut
	signal.ToConfigTest
}

// GroundSignals bundles this tick's already-computed GroundDetection,
// SpeedDetection, BothEngineRunning and TakeoffPower outputs, which
// FlightPhasesGround composes rather than recomputing.
type GroundSignals struct {
	Ground          bool
	GroundImmediate bool

	AcSpeedAbove80Kt bool
	AdcTestInhib     bool

	Eng1Or2Running       bool
	OneEngRunning        bool
	Eng1AndEng2NotRunning bool

	TakeoffPower TakeoffPower
}

// Update recomputes all seven ground flight phases for this tick.
func (s *FlightPhasesGround) Update(ctx logic.TickContext, in FlightPhasesGroundInputs, g GroundSignals) {
	ground := g.Ground
	groundImmediate := g.GroundImmediate
	s80 := g.AcSpeedAbove80Kt
	r := g.Eng1Or2Running
	r1 := g.OneEngRunning
	n2 := g.Eng1AndEng2NotRunning
	top := g.TakeoffPower.Eng1Or2ToPwr()
	gat := ground && top

	// Preamble: fire-PB-triggered reset of phases 1/10.
	conf5Out := s.fireTransient.Update(in.Eng1FirePbOut().Value())
	fireConfirmed := s.fireConfirm02.Update(ctx, conf5Out)
	mtrig5Out := s.mtrig5.Update(ctx, fireConfirmed)
	resetMem10 := ground && mtrig5Out

	s.phase3 = !s80 && r && gat
	s.phase4 = s80 && gat

	gi2s := s.gi2sMonostable.Update(ctx, groundImmediate)
	s.phase8 = (groundImmediate || gi2s) && !top && s80

	// Phases 2 & 9: shared NVM-backed memory latch with a preceding-value
	// self-reference. prec9 must be read before this tick's phase 9 is
	// computed, and updated only after.
	prec9Val := s.prec9.Get()

	mtrig1Out := s.mtrig1.Update(ctx, top)
	mtrig2Out := s.mtrig2.Update(ctx, prec9Val)
	mtrig4Out := s.mtrig4.Update(ctx, !s80)

	resetNvm := (ground && mtrig2Out) || resetMem10 || (ground && mtrig1Out)
	inhibitedResetNvm := !mtrig4Out && resetNvm && !prec9Val
	toConfigReset9 := in.ToConfigTest().Value() && (ground && !top && !s80) && r1
	resetMem9 := inhibitedResetNvm || g.AdcTestInhib || toConfigReset9

	phase9MemOut := s.phase9Mem.Update(s.phase3 || s.phase8, resetMem9)
	s.store.Save(phase9MemKey, phase9MemOut)

	s.phase2 = (ground && !top && !s80) && !phase9MemOut && r
	s.phase9 = r1 && phase9MemOut && (ground && !top && !s80)

	s.prec9.Update(s.phase9)

	// Phases 1 & 10.
	mem10Out := s.mem10.Update(s.phase9, resetMem10)
	phase110Cond := !s.phase9 && n2 && groundImmediate
	mtrig3Out := s.mtrig3.Update(ctx, mem10Out && phase110Cond)
	s.phase1 = phase110Cond && !mtrig3Out
	s.phase10 = phase110Cond && mtrig3Out
}

func (s *FlightPhasesGround) Phase1() bool  { return s.phase1 }
func (s *FlightPhasesGround) Phase2() bool  { return s.phase2 }
func (s *FlightPhasesGround) Phase3() bool  { return s.phase3 }
func (s *FlightPhasesGround) Phase4() bool  { return s.phase4 }
func (s *FlightPhasesGround) Phase8() bool  { return s.phase8 }
func (s *FlightPhasesGround) Phase9() bool  { return s.phase9 }
func (s *FlightPhasesGround) Phase10() bool { return s.phase10 }
