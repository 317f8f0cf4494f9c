package trap

// Call-stack depth accounting. The counter is conceptually per thread;
// an instance executes on a single goroutine, so a package-level counter
// matches the execution model. Generated functions bracket their bodies
// with Enter/Leave. A trap skips Leave, which is accepted because traps
// terminate the outermost invocation; Catch resets the counter.

// DefaultMaxDepth bounds recursion deeply enough for typical translated
// modules while still trapping runaway recursion.
const DefaultMaxDepth = 500

var (
	depth    uint32
	maxDepth uint32 = DefaultMaxDepth
)

// SetDepthLimit configures the call-stack ceiling. Zero disables depth
// counting entirely.
func SetDepthLimit(n uint32) {
	maxDepth = n
}

// Depth returns the current call-stack depth.
func Depth() uint32 {
	return depth
}

// Enter records entry into a generated function and traps Exhaustion
// when the configured ceiling is exceeded.
func Enter() {
	if maxDepth == 0 {
		return
	}
	depth++
	if depth > maxDepth {
		Raise(Exhaustion)
	}
}

// Leave records exit from a generated function. After any successful
// call the counter equals its pre-call value.
func Leave() {
	if maxDepth == 0 {
		return
	}
	depth--
}

func resetDepth() {
	depth = 0
}
