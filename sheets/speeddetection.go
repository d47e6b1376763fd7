package sheets

import (
	"time"

	"a320fwc/logic"
	"a320fwc/signal"
)

// adcChannel holds the per-ADC state SpeedDetection needs to independently
// stabilize each computed-airspeed channel before it can vote toward the
// 80kt latch.
type adcChannel struct {
	aboveFiftyConfirm *logic.ConfirmationNode
}

// SpeedDetection latches AcSpeedAbove80Kt once a majority of three
// redundant ADCs (plus a cross-check against invalid channels) agree the
// aircraft has sustained a climb through 80kt, and clears it symmetrically
// on a majority vote below 77kt. The asymmetric 50/77/83kt thresholds and
// the pre-confirmation above 50kt exist to reject brief airspeed spikes
// while still guaranteeing a real acceleration through 80kt latches.
type SpeedDetection struct {
	adcs [3]adcChannel

	resetFtMonostable *logic.MonostableTriggerNode
	adcTestInhibMono  *logic.MonostableTriggerNode
	mainLatch         *logic.MemoryNode

	acSpeedAbove80Kt bool
	adcTestInhib     bool
}

// NewSpeedDetection constructs the sheet with both outputs low.
func NewSpeedDetection() *SpeedDetection {
	return &SpeedDetection{
		adcs: [3]adcChannel{
			{aboveFiftyConfirm: logic.NewConfirmation(true, 1*time.Second)},
			{aboveFiftyConfirm: logic.NewConfirmation(true, 1*time.Second)},
			{aboveFiftyConfirm: logic.NewConfirmation(true, 1*time.Second)},
		},
		resetFtMonostable: logic.NewMonostableTrigger(true, 500*time.Millisecond, true),
		adcTestInhibMono:  logic.NewMonostableTrigger(true, 1500*time.Millisecond, true),
		mainLatch:         logic.NewMemory(true),
	}
}

// SpeedDetectionInputs is the capability set SpeedDetection depends on.
type SpeedDetectionInputs interface {
	signal.ComputedSpeed
}

func (s *SpeedDetection) Update(ctx logic.TickContext, in SpeedDetectionInputs) {
	var above80 [3]bool
	var below77 [3]bool
	anyInvalid := false
	anyFt := false

	for k := 0; k < 3; k++ {
		adc := in.ComputedSpeed(k + 1)
		valid := !adc.IsInv() && !adc.IsNcd()
		speed := adc.Value()

		confirmed := s.adcs[k].aboveFiftyConfirm.Update(ctx, speed > 50 && valid)
		above80[k] = confirmed && valid && speed > 83
		below77[k] = speed < 77 && valid

		anyInvalid = anyInvalid || !valid
		anyFt = anyFt || adc.IsFt()
	}

	anyAbove80 := above80[0] || above80[1] || above80[2]
	anyBelow77 := below77[0] || below77[1] || below77[2]

	setCount := countTrue(above80[0], above80[1], above80[2], anyAbove80 && anyInvalid)
	resetCount := countTrue(below77[0], below77[1], below77[2], anyBelow77 && anyInvalid)

	resetOnFt := s.resetFtMonostable.Update(ctx, anyFt)

	set := setCount > 1
	reset := resetCount > 1 || resetOnFt

	s.acSpeedAbove80Kt = s.mainLatch.Update(set, reset)
	s.adcTestInhib = s.adcTestInhibMono.Update(ctx, anyFt)
}

// AcSpeedAbove80Kt reports the latched "aircraft speed above 80kt" signal.
func (s *SpeedDetection) AcSpeedAbove80Kt() bool { return s.acSpeedAbove80Kt }

// AdcTestInhib reports the 1.5s inhibit pulse following any ADC
// functional-test signal.
func (s *SpeedDetection) AdcTestInhib() bool { return s.adcTestInhib }

func countTrue(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
