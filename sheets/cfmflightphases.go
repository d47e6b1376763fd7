package sheets

import "a320fwc/logic"

// TakeoffPower is the capability FlightPhasesGround depends on for
// takeoff-power detection. The orchestrator injects an implementation,
// which lets tests and richer hosts substitute a real N1/N2/FADEC-driven
// implementation without touching FlightPhasesGround itself.
type TakeoffPower interface {
	CfmFlex() bool
	Eng1Or2ToPwr() bool
}

// CfmFlightPhases is the default TakeoffPower implementation: a stub that
// always reports no takeoff power. A full implementation would derive
// takeoff power from engine N1/N2 and FADEC-reported thrust mode; this is
// an open question left unresolved in the source this core is grounded on
// (see DESIGN.md), not a gap introduced by this implementation.
type CfmFlightPhases struct{}

func NewCfmFlightPhases() *CfmFlightPhases { return &CfmFlightPhases{} }

// Update is a no-op: the stub has no state and no inputs to react to. It
// is still present so the orchestrator's dependency-order update loop
// treats CfmFlightPhases uniformly with the other sheets.
func (c *CfmFlightPhases) Update(ctx logic.TickContext) {}

func (c *CfmFlightPhases) CfmFlex() bool { return false }

func (c *CfmFlightPhases) Eng1Or2ToPwr() bool { return false }
