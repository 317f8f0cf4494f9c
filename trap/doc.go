// Package trap implements the non-local exit used by all runtime
// primitives, plus call-stack depth accounting.
//
// A trap is an unrecoverable terminating signal identified by a Kind.
// Primitives raise it with Raise and never report errors by return
// value; the embedder recovers it at the outermost frame with Catch.
// Primitives validate fully before mutating state, so an abandoned
// operation leaves no half-updates behind.
package trap
