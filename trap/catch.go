package trap

import (
	"runtime"

	"go.uber.org/zap"
)

// Catch runs fn and converts a trap raised inside it into an error
// return. This is the embedder boundary: traps propagate freely through
// the primitives and stop here. Every Go runtime error, not only a
// slice bounds fault, is converted to an OOB trap; under guard-mode
// memory checking the bounds fault is the only signal an out-of-range
// access produces. Other panics propagate. The call-stack depth counter
// is reset after a trap so the embedder can invoke again.
func Catch(fn func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *Error:
			err = e
		case runtime.Error:
			err = &Error{Kind: OOB, Cause: e}
		default:
			panic(r)
		}
		resetDepth()
		Logger().Debug("caught trap", zap.String("kind", err.(*Error).Kind.String()))
	}()
	fn()
	return nil
}
