package willowfx

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and entrance counts.
// Only populated when Scene.debug is true.
type debugStats struct {
	updateTime    time.Duration
	entranceCount int
	runningCount  int
}

// debugLog prints per-frame stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[willowfx] update: %v | entrances: %d | running: %d\n",
		stats.updateTime, stats.entranceCount, stats.runningCount)
}

var eventNames = [...]string{
	EntranceStarted:   "started",
	EntranceCompleted: "completed",
	EntranceCancelled: "cancelled",
}

func debugLogEvent(ev EntranceEvent) {
	_, _ = fmt.Fprintf(os.Stderr, "[willowfx] %s %s on node %q (ID %d)\n",
		ev.Kind, eventNames[ev.Type], ev.Name, ev.NodeID)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. In release mode callers skip this entirely.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("willowfx debug: %s on disposed node %q (ID was %d)", op, n.Name, n.ID))
	}
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[willowfx] warning: tree depth %d exceeds %d (node %q)\n",
			depth, debugMaxTreeDepth, n.Name)
	}
}
