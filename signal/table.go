// Package signal holds the per-tick, read-only snapshot of every named
// avionics parameter the FWC sheets consume, plus one single-method
// capability interface per accessor. A sheet depends on the narrowest
// combination of capabilities it actually reads, so it can be constructed
// and unit-tested against a hand-built fake rather than the whole Table -
// the same shape as the teacher's mode_s.Sky.UpdateData taking a single
// *ModeSMessage rather than the whole decoder.
package signal

import "a320fwc/parameters"

// LhLgCompressed exposes the LGCIU compressed-gear discrete carried over
// ARINC for landing gear channel i (i in {1,2}).
type LhLgCompressed interface {
	LhLgCompressed(i int) parameters.Arinc429Parameter[bool]
}

// EssLhLgCompressed exposes the essential-bus backup discrete for the left
// landing gear.
type EssLhLgCompressed interface {
	EssLhLgCompressed() parameters.DiscreteParameter
}

// NormLhLgCompressed exposes the normal-bus backup discrete for the left
// landing gear.
type NormLhLgCompressed interface {
	NormLhLgCompressed() parameters.DiscreteParameter
}

// RadioHeight exposes radio altimeter j's height above ground in feet
// (j in {1,2}).
type RadioHeight interface {
	RadioHeight(j int) parameters.Arinc429Parameter[float64]
}

// ComputedSpeed exposes ADC k's computed airspeed in knots (k in {1,2,3}).
type ComputedSpeed interface {
	ComputedSpeed(k int) parameters.Arinc429Parameter[float64]
}

// EngMasterLeverSelectOn exposes engine eng's master lever ON discrete
// (eng in {1,2}).
type EngMasterLeverSelectOn interface {
	EngMasterLeverSelectOn(eng int) parameters.Arinc429Parameter[bool]
}

// EngCoreSpeedAtOrAboveIdle exposes engine eng's redundant core-speed
// channel (eng in {1,2}, channel in {1,2}).
type EngCoreSpeedAtOrAboveIdle interface {
	EngCoreSpeedAtOrAboveIdle(eng, channel int) parameters.Arinc429Parameter[bool]
}

// Eng1FirePbOut exposes the engine-1 fire pushbutton OUT discrete.
type Eng1FirePbOut interface {
	Eng1FirePbOut() parameters.DiscreteParameter
}

// ToConfigTest exposes the takeoff-config test discrete.
type ToConfigTest interface {
	ToConfigTest() parameters.Arinc429Parameter[bool]
}

// Table is the immutable per-tick snapshot of every input parameter the
// ground-phase pipeline reads. It is constructed once per tick by the FWC
// orchestrator and passed by reference; sheets never mutate it.
type Table struct {
	lhLgCompressed [2]parameters.Arinc429Parameter[bool]
	essLhLgCompressed  parameters.DiscreteParameter
	normLhLgCompressed parameters.DiscreteParameter

	radioHeight [2]parameters.Arinc429Parameter[float64]

	computedSpeed [3]parameters.Arinc429Parameter[float64]

	engMasterLeverSelectOn   [2]parameters.Arinc429Parameter[bool]
	engCoreSpeedAtOrAboveIdle [2][2]parameters.Arinc429Parameter[bool]

	eng1FirePbOut parameters.DiscreteParameter
	toConfigTest  parameters.Arinc429Parameter[bool]
}

// Inputs groups the raw values a host hands the orchestrator each tick,
// keyed the way §6 of the core spec names them. NewTable copies these into
// an immutable Table snapshot.
type Inputs struct {
	LhLgCompressed1, LhLgCompressed2 parameters.Arinc429Parameter[bool]
	EssLhLgCompressed                parameters.DiscreteParameter
	NormLhLgCompressed                parameters.DiscreteParameter

	RadioHeight1, RadioHeight2 parameters.Arinc429Parameter[float64]

	ComputedSpeed1, ComputedSpeed2, ComputedSpeed3 parameters.Arinc429Parameter[float64]

	Eng1MasterLeverSelectOn, Eng2MasterLeverSelectOn parameters.Arinc429Parameter[bool]

	Eng1CoreSpeedAtOrAboveIdle1, Eng1CoreSpeedAtOrAboveIdle2 parameters.Arinc429Parameter[bool]
	Eng2CoreSpeedAtOrAboveIdle1, Eng2CoreSpeedAtOrAboveIdle2 parameters.Arinc429Parameter[bool]

	Eng1FirePbOut parameters.DiscreteParameter
	ToConfigTest  parameters.Arinc429Parameter[bool]
}

// NewTable snapshots in into a fresh, read-only Table.
func NewTable(in Inputs) *Table {
	return &Table{
		lhLgCompressed:     [2]parameters.Arinc429Parameter[bool]{in.LhLgCompressed1, in.LhLgCompressed2},
		essLhLgCompressed:  in.EssLhLgCompressed,
		normLhLgCompressed: in.NormLhLgCompressed,

		radioHeight: [2]parameters.Arinc429Parameter[float64]{in.RadioHeight1, in.RadioHeight2},

		computedSpeed: [3]parameters.Arinc429Parameter[float64]{in.ComputedSpeed1, in.ComputedSpeed2, in.ComputedSpeed3},

		engMasterLeverSelectOn: [2]parameters.Arinc429Parameter[bool]{in.Eng1MasterLeverSelectOn, in.Eng2MasterLeverSelectOn},
		engCoreSpeedAtOrAboveIdle: [2][2]parameters.Arinc429Parameter[bool]{
			{in.Eng1CoreSpeedAtOrAboveIdle1, in.Eng1CoreSpeedAtOrAboveIdle2},
			{in.Eng2CoreSpeedAtOrAboveIdle1, in.Eng2CoreSpeedAtOrAboveIdle2},
		},

		eng1FirePbOut: in.Eng1FirePbOut,
		toConfigTest:  in.ToConfigTest,
	}
}

func (t *Table) LhLgCompressed(i int) parameters.Arinc429Parameter[bool] {
	return t.lhLgCompressed[indexed(i, 1, 2)]
}

func (t *Table) EssLhLgCompressed() parameters.DiscreteParameter { return t.essLhLgCompressed }
func (t *Table) NormLhLgCompressed() parameters.DiscreteParameter { return t.normLhLgCompressed }

func (t *Table) RadioHeight(j int) parameters.Arinc429Parameter[float64] {
	return t.radioHeight[indexed(j, 1, 2)]
}

func (t *Table) ComputedSpeed(k int) parameters.Arinc429Parameter[float64] {
	return t.computedSpeed[indexed(k, 1, 3)]
}

func (t *Table) EngMasterLeverSelectOn(eng int) parameters.Arinc429Parameter[bool] {
	return t.engMasterLeverSelectOn[indexed(eng, 1, 2)]
}

func (t *Table) EngCoreSpeedAtOrAboveIdle(eng, channel int) parameters.Arinc429Parameter[bool] {
	return t.engCoreSpeedAtOrAboveIdle[indexed(eng, 1, 2)][indexed(channel, 1, 2)]
}

func (t *Table) Eng1FirePbOut() parameters.DiscreteParameter { return t.eng1FirePbOut }
func (t *Table) ToConfigTest() parameters.Arinc429Parameter[bool] { return t.toConfigTest }

// indexed converts a 1-based channel index in [lo, hi] to a 0-based slot,
// panicking on an out-of-range index: per the core's error handling
// design, indexing the wrong parameter channel is a programming error, not
// a recoverable condition.
func indexed(i, lo, hi int) int {
	if i < lo || i > hi {
		panic("signal: index out of range")
	}
	return i - lo
}
