package tactile

import (
	"fmt"
	"log/slog"
	"strings"
)

// debugEnabled gates tree sanity warnings. Element operations lack a
// Manipulator pointer, so the flag is package-wide.
var (
	debugEnabled bool
	debugLogger  = slog.Default()
)

// SetDebugMode enables or disables tree sanity warnings. Warnings go to
// logger, or to slog.Default when logger is nil.
func SetDebugMode(enabled bool, logger *slog.Logger) {
	debugEnabled = enabled
	if logger == nil {
		logger = slog.Default()
	}
	debugLogger = logger
}

const (
	debugMaxTreeDepth  = 32   // CheckTree warns above this depth
	debugMaxChildCount = 1000 // attach warns above this many children
)

func debugCheckChildCount(b *elementBase) {
	if len(b.children) > debugMaxChildCount {
		debugLogger.Warn("element has too many children",
			"element", b.name, "children", len(b.children), "threshold", debugMaxChildCount)
	}
}

// TreeStats summarizes an element tree.
type TreeStats struct {
	Elements int
	Movable  int
	MaxDepth int
}

// CheckTree walks the tree rooted at root and returns its stats. In debug
// mode it warns when the tree is deeper than the supported depth.
func CheckTree(root Element) TreeStats {
	var st TreeStats
	if root == nil {
		return st
	}
	checkTree(root, 1, &st)
	if debugEnabled && st.MaxDepth > debugMaxTreeDepth {
		debugLogger.Warn("element tree too deep",
			"root", root.Name(), "depth", st.MaxDepth, "threshold", debugMaxTreeDepth)
	}
	return st
}

func checkTree(e Element, depth int, st *TreeStats) {
	st.Elements++
	if e.IsMovable() {
		st.Movable++
	}
	st.MaxDepth = max(st.MaxDepth, depth)
	for c := range e.Children() {
		checkTree(c, depth+1, st)
	}
}

// FormatTraces renders traces one per line for debug overlays.
func FormatTraces(traces []GestureTrace) string {
	var sb strings.Builder
	for i, tr := range traces {
		if tr.Len() == 0 {
			continue
		}
		f, l := tr.First(), tr.Last()
		fmt.Fprintf(&sb, "trace %d: %d samples (%d,%d)->(%d,%d) travel %d\n",
			i, tr.Len(), f.X, f.Y, l.X, l.Y, tr.Travel())
	}
	return sb.String()
}
