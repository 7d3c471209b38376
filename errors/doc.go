// Package errors provides structured error types for the callbuf library.
//
// Every error carries a Phase (where it happened) and a Kind (what went
// wrong), rendered in a fixed format:
//
//	[invoke] size_mismatch: buffer is 7 bytes, argument record needs 8
//	[bind] unsupported at arg2: parameter type []string
//
// Errors match with errors.Is on (Phase, Kind) pairs, so callers can test
// for a category without string comparison:
//
//	if errors.Is(err, &cberrors.Error{Phase: cberrors.PhaseInvoke, Kind: cberrors.KindSizeMismatch}) {
//	    // resize and retry encoding
//	}
package errors
