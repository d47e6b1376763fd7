package sheets

import (
	"testing"
	"time"

	"a320fwc/parameters"
	"a320fwc/signal"
)

func TestNewGroundDefConcurringLGCIUsAssertNewGround(t *testing.T) {
	s := NewNewGroundDef()
	in := signal.NewTable(coldAndDarkInputs())
	s.Update(tick(time.Second), in)

	if !s.NewGround() {
		t.Fatalf("expected NewGround when both LGCIUs concur gear is compressed")
	}
	if s.Lgciu12Inv() {
		t.Fatalf("expected no invalidity when channels agree")
	}
}

func TestNewGroundDefMismatchInvalidatesChannel(t *testing.T) {
	s := NewNewGroundDef()

	inputs := coldAndDarkInputs()
	inputs.LhLgCompressed1 = parameters.New(true)
	inputs.EssLhLgCompressed = parameters.NewDiscrete(false) // backup disagrees: gear reported extended
	in := signal.NewTable(inputs)

	s.Update(tick(time.Second), in)

	if s.NewGround() {
		t.Fatalf("expected NewGround false when LGCIU 1 mismatches its backup")
	}
	if !s.Lgciu12Inv() {
		t.Fatalf("expected Lgciu12Inv once the mismatch has held for its confirmation delay")
	}
}
