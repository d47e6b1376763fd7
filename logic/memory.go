package logic

// MemoryNode is an SR latch: output holds across ticks in the absence of a
// set or reset pulse. When both set and reset are asserted in the same
// tick, setHasPrecedence decides the outcome.
type MemoryNode struct {
	setHasPrecedence bool
	nvm              bool
	output           bool
}

// NewMemory builds a volatile (process-lifetime only) SR latch.
func NewMemory(setHasPrecedence bool) *MemoryNode {
	return &MemoryNode{setHasPrecedence: setHasPrecedence}
}

// NewNVMMemory builds an SR latch flagged as backed by non-volatile memory.
// The flag is metadata only: the node itself behaves identically to one
// built with NewMemory. A sheet holding an NVM memory is responsible for
// seeding it from, and persisting its output to, a nvm.Store (see package
// nvm and Seed below).
func NewNVMMemory(setHasPrecedence bool) *MemoryNode {
	return &MemoryNode{setHasPrecedence: setHasPrecedence, nvm: true}
}

// Update applies one tick of set/reset logic.
func (n *MemoryNode) Update(set, reset bool) bool {
	switch {
	case set && reset:
		n.output = n.setHasPrecedence
	case set:
		n.output = true
	case reset:
		n.output = false
	}
	return n.output
}

func (n *MemoryNode) Get() bool { return n.output }

// NVM reports whether this latch was constructed with NewNVMMemory.
func (n *MemoryNode) NVM() bool { return n.nvm }

// Seed forces the latch's output directly, bypassing set/reset logic. Used
// once, at construction, to restore state read back from a nvm.Store.
func (n *MemoryNode) Seed(output bool) { n.output = output }
