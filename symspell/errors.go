package symspell

import "errors"

// ErrMaxEditDistanceExceeded is returned by Lookup when called with a
// maxEditDistance greater than the engine was built with. It is a
// programming-error precondition violation, not a domain outcome, but is
// returned rather than panicking across the public API boundary.
var ErrMaxEditDistanceExceeded = errors.New("symspell: maxEditDistance exceeds engine maxEditDistance")

// ErrInvalidConfig is returned by NewEngine when the supplied configuration
// violates one of the documented parameter invariants.
var ErrInvalidConfig = errors.New("symspell: invalid engine configuration")
