package willowfx

import "time"

// SequenceConfig configures NewSequence.
type SequenceConfig struct {
	Delay   time.Duration
	Stagger time.Duration
}

// DefaultSequenceConfig returns no base delay and a 100ms stagger.
func DefaultSequenceConfig() SequenceConfig {
	return SequenceConfig{Stagger: 100 * time.Millisecond}
}

// ParallelConfig configures NewParallel.
type ParallelConfig struct {
	Delay time.Duration
}

// NewSequence creates a container holding children and gives the child at
// index i a delay of Delay + i*Stagger. The index counts every child, so
// plain nodes still take up a slot; they are added unchanged. A nested
// Sequence or Parallel receives the delay as its own Delay.
func NewSequence(name string, cfg SequenceConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	Stagger(n, cfg)
	return n
}

// NewParallel creates a container holding children and gives every child the
// same Delay. Nested groups receive it as their own Delay.
func NewParallel(name string, cfg ParallelConfig, children ...*Node) *Node {
	n := newEntranceContainer(name, children)
	Align(n, cfg)
	return n
}

// group is the delay layout a Sequence or Parallel container hands to its
// children. Parallel is a group with zero stagger.
type group struct {
	delay   time.Duration
	stagger time.Duration
}

// Stagger re-applies sequence delays to the current children of n. Mounted
// entrances whose delay changes restart their drive. A nested Sequence or
// Parallel child takes the injected delay as its own base delay and passes
// it on to its children.
func Stagger(n *Node, cfg SequenceConfig) {
	n.group = &group{delay: cfg.Delay, stagger: cfg.Stagger}
	n.group.apply(n)
}

// Align re-applies a shared delay to the current children of n, including
// through nested Sequence and Parallel children.
func Align(n *Node, cfg ParallelConfig) {
	n.group = &group{delay: cfg.Delay}
	n.group.apply(n)
}

func (g *group) apply(n *Node) {
	for i, child := range n.children {
		injectDelay(child, g.delay+time.Duration(i)*g.stagger)
	}
}

// injectDelay hands d to an entrance or a nested group. Plain nodes are left
// alone.
func injectDelay(n *Node, d time.Duration) {
	switch {
	case n.Entrance != nil:
		n.Entrance.SetDelay(d)
	case n.group != nil:
		n.group.delay = d
		n.group.apply(n)
	}
}
