// Package sheets implements the FWC's ground-phase wiring diagram pages
// ("sheets" in FWC parlance): named combinational+sequential networks built
// from the package logic primitives and fed by package signal. Grounded on
// the algorithmic shape of mode_s.Decoder - the teacher's largest,
// densest, most combinational-logic-heavy package - generalized from bit
// decoding to avionics signal logic.
package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/signal"
)

// lgciuChannel holds the per-channel state NewGroundDef needs to track each
// LGCIU's self-consistency independently.
type lgciuChannel struct {
	xorConfirm   *logic.ConfirmationNode
	matchConfirm *logic.ConfirmationNode
	invLatch     *logic.MemoryNode

	inv bool
}

// NewGroundDef cross-checks each LGCIU's compressed-gear discrete against
// its backup discrete and reports whether both LGCIUs concur the aircraft
// is on ground (NewGround) and whether either channel's self-consistency
// check has gone persistently invalid (Lgciu12Inv).
type NewGroundDef struct {
	channels [2]lgciuChannel

	newGround bool
	lgciu12Inv bool
}

// NewNewGroundDef constructs the sheet in its known initial state: both
// self-consistency latches low, NewGround false.
func NewNewGroundDef() *NewGroundDef {
	return &NewGroundDef{
		channels: [2]lgciuChannel{
			{
				xorConfirm:   logic.NewConfirmation(true, 1*time.Second),
				matchConfirm: logic.NewConfirmation(true, 500*time.Millisecond),
				invLatch:     logic.NewMemory(true),
			},
			{
				xorConfirm:   logic.NewConfirmation(true, 1*time.Second),
				matchConfirm: logic.NewConfirmation(true, 500*time.Millisecond),
				invLatch:     logic.NewMemory(true),
			},
		},
	}
}

// NewGroundInputs is the capability set NewGroundDef depends on.
type NewGroundInputs interface {
	signal.LhLgCompressed
	signal.EssLhLgCompressed
	signal.NormLhLgCompressed
}

// Update recomputes NewGround and Lgciu12Inv from the current tick's
// landing-gear signals.
func (s *NewGroundDef) Update(ctx logic.TickContext, in NewGroundInputs) {
	lhLg1 := in.LhLgCompressed(1)
	lhLg2 := in.LhLgCompressed(2)
	ess := in.EssLhLgCompressed()
	norm := in.NormLhLgCompressed()

	backups := [2]bool{ess.Value(), norm.Value()}
	lhLgs := [2]parameterValue{
		{value: lhLg1.Value(), invalid: lhLg1.IsNcd() || lhLg1.IsInv()},
		{value: lhLg2.Value(), invalid: lhLg2.IsNcd() || lhLg2.IsInv()},
	}

	for i := range s.channels {
		ch := &s.channels[i]
		xor := lhLgs[i].value != backups[i]

		// The reference short-circuits here (is_ncd() || is_inv() ||
		// conf.update(...)): on an invalid tick it never advances the xor
		// confirmation timer. This always advances it, so a channel held
		// invalid for a long stretch confirms xor the instant it becomes
		// valid again rather than needing another full time_delay from
		// scratch. Matches the reference only while the channel stays valid.
		setEdge := ch.xorConfirm.Update(ctx, xor)
		resetEdge := ch.matchConfirm.Update(ctx, !xor)
		set := setEdge || lhLgs[i].invalid

		ch.inv = ch.invLatch.Update(set, resetEdge)
	}

	s.newGround = (lhLgs[0].value && ess.Value()) && (lhLgs[1].value && norm.Value())
	s.lgciu12Inv = s.channels[0].inv || s.channels[1].inv
}

// NewGround reports whether both LGCIUs concur the aircraft is on ground.
func (s *NewGroundDef) NewGround() bool { return s.newGround }

// Lgciu12Inv reports whether either LGCIU channel's self-consistency check
// is persistently invalid.
func (s *NewGroundDef) Lgciu12Inv() bool { return s.lgciu12Inv }

type parameterValue struct {
	value   bool
	invalid bool
}
