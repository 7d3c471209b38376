// Package sig derives argument record schemas from Go function values.
//
// A Signature records, for each parameter, its kind, size, alignment and
// byte offset within the argument record, plus the record's total size.
// Offsets follow C struct layout rules: each field is aligned to its
// natural alignment and the record is padded to its maximum alignment.
//
// The supported parameter kinds form a closed set fixed at bind time:
// bool, the fixed-width integers, platform int/uint, float32/float64,
// and pointers. Pointers occupy a 4-byte handle slot in the record (see
// the handle package); everything else is rejected with an unsupported
// bind error rather than guessed at.
//
// Signatures are cached per function type, so repeated Of calls for the
// same signature are cheap.
package sig
