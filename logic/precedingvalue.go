package logic

// PrecedingValueNode breaks intra-tick feedback loops: Get returns the
// value observed at the previous Update, not the current one. A consumer
// that needs "my own output from last tick" reads Get before computing
// anything this tick, and the node's Update is called last, once this
// tick's true value is known.
type PrecedingValueNode struct {
	predecessor bool
}

func NewPrecedingValue() *PrecedingValueNode { return &PrecedingValueNode{} }

// Get returns the value stored by the previous Update (false before the
// first Update).
func (n *PrecedingValueNode) Get() bool { return n.predecessor }

// Update stores value as the new predecessor, to be returned by the next Get.
func (n *PrecedingValueNode) Update(value bool) { n.predecessor = value }
