package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/signal"
)

// engineChannel holds the per-engine confirmation and override state
// EnginesNotRunning tracks independently for engine 1 and engine 2.
type engineChannel struct {
	coreSpeedConfirm1 *logic.ConfirmationNode
	coreSpeedConfirm2 *logic.ConfirmationNode
	firePbTransient   *logic.TransientDetectionNode

	notRunning bool
}

// EnginesNotRunning derives, per engine, whether neither of the engine's
// core-speed channels has been confirmed at or above idle for 30s, with an
// immediate override that forces "running" on a fire-pushbutton change
// pulse while both raw core-speed channels are high and the aircraft is
// not on ground.
type EnginesNotRunning struct {
	engines [2]engineChannel
}

// NewEnginesNotRunning constructs the sheet with every node in its initial
// state. Eng1NotRunning and Eng2NotRunning report false until the first
// Update.
func NewEnginesNotRunning() *EnginesNotRunning {
	return &EnginesNotRunning{
		engines: [2]engineChannel{
			{
				coreSpeedConfirm1: logic.NewConfirmation(true, 30*time.Second),
				coreSpeedConfirm2: logic.NewConfirmation(true, 30*time.Second),
				firePbTransient:   logic.NewTransientDetection(true),
			},
			{
				coreSpeedConfirm1: logic.NewConfirmation(true, 30*time.Second),
				coreSpeedConfirm2: logic.NewConfirmation(true, 30*time.Second),
				firePbTransient:   logic.NewTransientDetection(true),
			},
		},
	}
}

// EnginesNotRunningInputs is the capability set EnginesNotRunning depends on.
type EnginesNotRunningInputs interface {
	signal.EngMasterLeverSelectOn
	signal.EngCoreSpeedAtOrAboveIdle
	signal.Eng1FirePbOut
}

// Update recomputes both engines' not-running state. ground is the current
// tick's GroundDetection.Ground() output.
func (s *EnginesNotRunning) Update(ctx logic.TickContext, in EnginesNotRunningInputs, ground bool) {
	firePbOut := in.Eng1FirePbOut().Value()

	var rawCoreSpeed [2][2]bool
	for e := 0; e < 2; e++ {
		ch := &s.engines[e]
		ch1 := in.EngCoreSpeedAtOrAboveIdle(e+1, 1)
		ch2 := in.EngCoreSpeedAtOrAboveIdle(e+1, 2)
		rawCoreSpeed[e] = [2]bool{ch1.Value(), ch2.Value()}

		confirm1 := ch.coreSpeedConfirm1.Update(ctx, rawCoreSpeed[e][0])
		confirm2 := ch.coreSpeedConfirm2.Update(ctx, rawCoreSpeed[e][1])
		confirmedNotRunning := !confirm1 && !confirm2

		conf5Out := ch.firePbTransient.Update(firePbOut)
		runningImmediate := rawCoreSpeed[e][0] && rawCoreSpeed[e][1] && conf5Out && !ground

		ch.notRunning = confirmedNotRunning && !runningImmediate
	}

	masterLever1 := in.EngMasterLeverSelectOn(1)
	masterLever2 := in.EngMasterLeverSelectOn(2)

	s.engines[0].notRunning = s.engines[0].notRunning || (masterLever1.IsVal() && !masterLever1.Value())

	// Asymmetric by design: the reference implementation this sheet is
	// grounded on gates engine 2's override on master_lever_1's raw value
	// and master_lever_2's validity, not master_lever_2's value. Preserved
	// verbatim rather than silently corrected; see DESIGN.md open question.
	s.engines[1].notRunning = s.engines[1].notRunning || (!masterLever1.Value() && masterLever2.IsVal())
}

// Eng1NotRunning reports engine 1's not-running state.
func (s *EnginesNotRunning) Eng1NotRunning() bool { return s.engines[0].notRunning }

// Eng2NotRunning reports engine 2's not-running state.
func (s *EnginesNotRunning) Eng2NotRunning() bool { return s.engines[1].notRunning }
