package sheets

import (
	"time"

	"a320fwc/parameters"
	"a320fwc/signal"
)

// fakeTick is the minimal logic.TickContext a sheet test needs.
type fakeTick struct{ delta time.Duration }

func (f fakeTick) Delta() time.Duration { return f.delta }

func tick(d time.Duration) fakeTick { return fakeTick{delta: d} }

// coldAndDarkInputs returns the signal.Inputs for an aircraft parked,
// powered down, gear down and locked: the baseline every scenario test
// starts from and mutates.
func coldAndDarkInputs() signal.Inputs {
	return signal.Inputs{
		LhLgCompressed1: parameters.New(true),
		LhLgCompressed2: parameters.New(true),
		EssLhLgCompressed:  parameters.NewDiscrete(true),
		NormLhLgCompressed: parameters.NewDiscrete(true),

		RadioHeight1: parameters.New(0.0),
		RadioHeight2: parameters.New(0.0),

		ComputedSpeed1: parameters.New(0.0),
		ComputedSpeed2: parameters.New(0.0),
		ComputedSpeed3: parameters.New(0.0),

		Eng1MasterLeverSelectOn: parameters.New(false),
		Eng2MasterLeverSelectOn: parameters.New(false),

		Eng1CoreSpeedAtOrAboveIdle1: parameters.New(false),
		Eng1CoreSpeedAtOrAboveIdle2: parameters.New(false),
		Eng2CoreSpeedAtOrAboveIdle1: parameters.New(false),
		Eng2CoreSpeedAtOrAboveIdle2: parameters.New(false),

		Eng1FirePbOut: parameters.NewDiscrete(false),
		ToConfigTest:  parameters.New(false),
	}
}
