package logic

import "time"

// MonostableTriggerNode fires high for exactly timeDelay starting on a
// qualifying edge of its input. Non-retriggerable instances are deaf to
// further edges until the pulse expires; retriggerable ones restart the
// timer on every qualifying edge, pulse or no pulse in progress.
type MonostableTriggerNode struct {
	leadingEdge   bool
	timeDelay     time.Duration
	retriggerable bool

	remaining time.Duration
	lastHi    bool
	output    bool
}

// NewMonostableTrigger builds a monostable. leadingEdge selects whether a
// rising or falling edge qualifies.
func NewMonostableTrigger(leadingEdge bool, timeDelay time.Duration, retriggerable bool) *MonostableTriggerNode {
	if timeDelay < 0 {
		panic("logic: NewMonostableTrigger: negative time delay")
	}
	return &MonostableTriggerNode{leadingEdge: leadingEdge, timeDelay: timeDelay, retriggerable: retriggerable}
}

func (n *MonostableTriggerNode) Update(ctx TickContext, hi bool) bool {
	n.remaining -= ctx.Delta()
	if n.remaining < 0 {
		n.remaining = 0
	}

	if n.retriggerable || n.remaining == 0 {
		if n.lastHi != hi && hi == n.leadingEdge {
			n.remaining = n.timeDelay
		}
	}

	n.lastHi = hi
	n.output = n.remaining > 0
	return n.output
}

func (n *MonostableTriggerNode) Get() bool { return n.output }
