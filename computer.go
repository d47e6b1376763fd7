// Package fwc is the root package of the A320 Flight Warning Computer
// ground-phase core: it wires together the package signal snapshot, the
// package sheets wiring-diagram pages and the package nvm persistence hook
// into a single per-tick orchestrator, the way 1090.go is the root API a
// host imports to drive go1090's decoder and sky.
package fwc

import (
	"a320fwc/logic"
	"a320fwc/nvm"
	"a320fwc/sheets"
	"a320fwc/signal"
)

// Computer is the FWC ground-phase orchestrator. It owns every sheet for
// the process lifetime; only Update mutates it.
type Computer struct {
	newGroundDef       *sheets.NewGroundDef
	groundDetection    *sheets.GroundDetection
	speedDetection     *sheets.SpeedDetection
	enginesNotRunning  *sheets.EnginesNotRunning
	bothEngineRunning  *sheets.BothEngineRunning
	takeoffPower       sheets.TakeoffPower
	flightPhases       *sheets.FlightPhasesGround
}

// NewComputer constructs a Computer with every sheet in its known initial
// state. takeoffPower is the TakeoffPower implementation FlightPhasesGround
// consumes; pass nil to use the default CfmFlightPhases stub (always no
// takeoff power). store backs the phase 2/9 NVM latch; pass nil to use a
// fresh in-process nvm.Store.
func NewComputer(takeoffPower sheets.TakeoffPower, store *nvm.Store) *Computer {
	if takeoffPower == nil {
		takeoffPower = sheets.NewCfmFlightPhases()
	}
	if store == nil {
		store = nvm.NewStore()
	}
	return &Computer{
		newGroundDef:      sheets.NewNewGroundDef(),
		groundDetection:   sheets.NewGroundDetection(),
		speedDetection:    sheets.NewSpeedDetection(),
		enginesNotRunning: sheets.NewEnginesNotRunning(),
		bothEngineRunning: sheets.NewBothEngineRunning(),
		takeoffPower:      takeoffPower,
		flightPhases:      sheets.NewFlightPhasesGround(store),
	}
}

// Update runs one simulation tick: it snapshots in into the signal table,
// updates every sheet in dependency order, and publishes the results
// through w.
func (c *Computer) Update(ctx TickContext, in signal.Inputs, w ReaderWriter) {
	table := signal.NewTable(in)

	c.newGroundDef.Update(ctx, table)

	c.groundDetection.Update(ctx, table, c.newGroundDef.NewGround(), c.newGroundDef.Lgciu12Inv())

	c.speedDetection.Update(ctx, table)

	c.enginesNotRunning.Update(ctx, table, c.groundDetection.Ground())

	c.bothEngineRunning.Update(ctx, table,
		c.enginesNotRunning.Eng1NotRunning(),
		c.enginesNotRunning.Eng2NotRunning())

	// A richer TakeoffPower implementation may need to react to the tick
	// (N1/N2 trending, FADEC thrust mode); the stub doesn't, but both are
	// driven uniformly through this optional interface.
	if updater, ok := c.takeoffPower.(interface{ Update(logic.TickContext) }); ok {
		updater.Update(ctx)
	}

	c.flightPhases.Update(ctx, table, sheets.GroundSignals{
		Ground:                c.groundDetection.Ground(),
		GroundImmediate:       c.groundDetection.GroundImmediate(),
		AcSpeedAbove80Kt:      c.speedDetection.AcSpeedAbove80Kt(),
		AdcTestInhib:          c.speedDetection.AdcTestInhib(),
		Eng1Or2Running:        c.bothEngineRunning.Eng1Or2Running(),
		OneEngRunning:         c.bothEngineRunning.OneEngRunning(),
		Eng1AndEng2NotRunning: c.bothEngineRunning.Eng1AndEng2NotRunning(),
		TakeoffPower:          c.takeoffPower,
	})

	c.publish(w)
}

// publish writes every output this core defines through w, using the
// dotted A320 FWC label-space naming convention.
func (c *Computer) publish(w ReaderWriter) {
	writeBool(w, "fwc.ground.new_ground", c.newGroundDef.NewGround())
	writeBool(w, "fwc.ground.lgciu_12_inv", c.newGroundDef.Lgciu12Inv())
	writeBool(w, "fwc.ground.ground_immediate", c.groundDetection.GroundImmediate())
	writeBool(w, "fwc.ground.ground", c.groundDetection.Ground())

	writeBool(w, "fwc.speed.above_80kt", c.speedDetection.AcSpeedAbove80Kt())
	writeBool(w, "fwc.speed.adc_test_inhib", c.speedDetection.AdcTestInhib())

	writeBool(w, "fwc.engine.eng_1_not_running", c.enginesNotRunning.Eng1NotRunning())
	writeBool(w, "fwc.engine.eng_2_not_running", c.enginesNotRunning.Eng2NotRunning())
	writeBool(w, "fwc.engine.eng_1_and_2_not_running", c.bothEngineRunning.Eng1AndEng2NotRunning())
	writeBool(w, "fwc.engine.one_eng_running", c.bothEngineRunning.OneEngRunning())
	writeBool(w, "fwc.engine.eng_1_or_2_running", c.bothEngineRunning.Eng1Or2Running())

	writeBool(w, "fwc.flight_phase.1", c.flightPhases.Phase1())
	writeBool(w, "fwc.flight_phase.2", c.flightPhases.Phase2())
	writeBool(w, "fwc.flight_phase.3", c.flightPhases.Phase3())
	writeBool(w, "fwc.flight_phase.4", c.flightPhases.Phase4())
	writeBool(w, "fwc.flight_phase.8", c.flightPhases.Phase8())
	writeBool(w, "fwc.flight_phase.9", c.flightPhases.Phase9())
	writeBool(w, "fwc.flight_phase.10", c.flightPhases.Phase10())
}

// Phase returns which of the seven ground flight phases is currently
// asserted, or 0 if none is (e.g. before the first Update, or while an
// airborne phase not modeled by this core would apply).
func (c *Computer) Phase() int {
	switch {
	case c.flightPhases.Phase1():
		return 1
	case c.flightPhases.Phase2():
		return 2
	case c.flightPhases.Phase3():
		return 3
	case c.flightPhases.Phase4():
		return 4
	case c.flightPhases.Phase8():
		return 8
	case c.flightPhases.Phase9():
		return 9
	case c.flightPhases.Phase10():
		return 10
	default:
		return 0
	}
}

// Ground reports the current debounced ground signal.
func (c *Computer) Ground() bool { return c.groundDetection.Ground() }

// AcSpeedAbove80Kt reports the current latched 80kt signal.
func (c *Computer) AcSpeedAbove80Kt() bool { return c.speedDetection.AcSpeedAbove80Kt() }

// defaultOutputNames is every name publish writes, used by tests to assert
// the output round-trip is complete.
var defaultOutputNames = []string{
	"fwc.ground.new_ground", "fwc.ground.lgciu_12_inv", "fwc.ground.ground_immediate", "fwc.ground.ground",
	"fwc.speed.above_80kt", "fwc.speed.adc_test_inhib",
	"fwc.engine.eng_1_not_running", "fwc.engine.eng_2_not_running", "fwc.engine.eng_1_and_2_not_running",
	"fwc.engine.one_eng_running", "fwc.engine.eng_1_or_2_running",
	"fwc.flight_phase.1", "fwc.flight_phase.2", "fwc.flight_phase.3", "fwc.flight_phase.4",
	"fwc.flight_phase.8", "fwc.flight_phase.9", "fwc.flight_phase.10",
}
