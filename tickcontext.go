package fwc

import "time"

// TickContext is the read-only value every sheet and logic node receives
// for one simulation step: the elapsed time since the previous tick, plus
// the ambient simulation quantities surfaced for sheets that need more
// than pure digital logic (none of the ground-phase sheets in this core
// do, but airborne and hysteresis-based sheets built on top of it will).
type TickContext struct {
	delta time.Duration

	indicatedAirspeedKt float64
	altitudeFt          float64
	oatCelsius          float64
	onGroundHint        bool
	vertAccelFtS2       float64
}

// NewTickContext builds a TickContext. delta must be strictly positive: a
// non-positive delta is a programming error in the host simulation driver,
// not a lawful input, so NewTickContext panics rather than returning one.
func NewTickContext(delta time.Duration, indicatedAirspeedKt, altitudeFt, oatCelsius float64, onGroundHint bool, vertAccelFtS2 float64) TickContext {
	if delta <= 0 {
		panic("fwc: NewTickContext: delta_time must be strictly positive")
	}
	return TickContext{
		delta:               delta,
		indicatedAirspeedKt: indicatedAirspeedKt,
		altitudeFt:          altitudeFt,
		oatCelsius:          oatCelsius,
		onGroundHint:        onGroundHint,
		vertAccelFtS2:       vertAccelFtS2,
	}
}

// Delta implements logic.TickContext.
func (c TickContext) Delta() time.Duration { return c.delta }

func (c TickContext) IndicatedAirspeedKt() float64 { return c.indicatedAirspeedKt }
func (c TickContext) AltitudeFt() float64          { return c.altitudeFt }
func (c TickContext) OatCelsius() float64          { return c.oatCelsius }
func (c TickContext) OnGroundHint() bool           { return c.onGroundHint }
func (c TickContext) VertAccelFtS2() float64       { return c.vertAccelFtS2 }
