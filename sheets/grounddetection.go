package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/signal"
)

// raAltimeter holds the per-radio-altimeter "below 5 ft" memory.
type raAltimeter struct {
	belowFiveLatch *logic.MemoryNode
}

// GroundDetection derives instantaneous and debounced ground state by
// voting across the two LGCIU backup discretes and the two radio
// altimeters, with a fallback path for the case where both radio
// altimeters report No Computed Data.
type GroundDetection struct {
	radios [2]raAltimeter

	fallbackMonostable *logic.MonostableTriggerNode
	groundConfirm       *logic.ConfirmationNode

	groundImmediate bool
	ground          bool
}

// NewGroundDetection constructs the sheet with both ground latches low.
func NewGroundDetection() *GroundDetection {
	return &GroundDetection{
		radios: [2]raAltimeter{
			{belowFiveLatch: logic.NewMemory(true)},
			{belowFiveLatch: logic.NewMemory(true)},
		},
		fallbackMonostable: logic.NewMonostableTrigger(true, 10*time.Second, true),
		groundConfirm:       logic.NewConfirmation(true, 1*time.Second),
	}
}

// GroundDetectionInputs is the capability set GroundDetection depends on.
type GroundDetectionInputs interface {
	signal.EssLhLgCompressed
	signal.NormLhLgCompressed
	signal.RadioHeight
}

// Update recomputes GroundImmediate and Ground. newGround and lgciu12Inv
// are the corresponding outputs of an already-updated NewGroundDef for
// this tick.
func (s *GroundDetection) Update(ctx logic.TickContext, in GroundDetectionInputs, newGround, lgciu12Inv bool) {
	ess := in.EssLhLgCompressed().Value()
	norm := in.NormLhLgCompressed().Value()
	backupsDisagree := !ess || !norm

	radioOnGnd := [2]bool{}
	var dualRaInv, bothNcd = true, true
	for j := 0; j < 2; j++ {
		ra := in.RadioHeight(j + 1)
		belowFive := ra.Value() < 5
		latch := s.radios[j].belowFiveLatch.Update(belowFive, backupsDisagree)
		radioOnGnd[j] = (latch || belowFive) && !ra.IsNcd() && !ra.IsInv()

		dualRaInv = dualRaInv && ra.IsInv()
		bothNcd = bothNcd && ra.IsNcd()
	}

	count := 0
	for _, witness := range []bool{ess, norm, radioOnGnd[0], radioOnGnd[1]} {
		if witness {
			count++
		}
	}
	accept := (count > 2 && !dualRaInv) || (count > 1 && dualRaInv)

	fallbackCond := bothNcd && !lgciu12Inv
	fallback := s.fallbackMonostable.Update(ctx, fallbackCond) && newGround

	s.groundImmediate = accept || fallback
	s.ground = s.groundConfirm.Update(ctx, s.groundImmediate)
}

// GroundImmediate reports instantaneous ground state, unconfirmed.
func (s *GroundDetection) GroundImmediate() bool { return s.groundImmediate }

// Ground reports ground state debounced by a 1s leading-edge confirmation.
func (s *GroundDetection) Ground() bool { return s.ground }
