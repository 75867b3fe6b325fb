// Package points implements the potential-points pool: ten named classes
// of candidate placement origins, a Strategy type describing the drain
// order across those classes, and deterministic FIFO/dedup semantics.
package points

import "errors"

// Sentinel errors for the points package.
var (
	// ErrDuplicateClass indicates a Strategy did not contain each class exactly once.
	ErrDuplicateClass = errors.New("points: strategy must contain each class exactly once")

	// ErrUnknownClass indicates a Class value outside [0, NumClasses) was encountered.
	ErrUnknownClass = errors.New("points: unknown class")
)

// Class names one of the ten potential-point buckets.
type Class int

// The ten potential-point classes, in the canonical A..F order used by
// DefaultStrategy.
const (
	ClassA Class = iota
	ClassB
	ClassC
	ClassD
	ClassAPrime
	ClassBPrime
	ClassADouble
	ClassBDouble
	ClassE
	ClassF

	// NumClasses is the fixed number of potential-point classes.
	NumClasses = 10
)

// String returns the conventional short tag for a class.
func (c Class) String() string {
	switch c {
	case ClassA:
		return "A"
	case ClassB:
		return "B"
	case ClassC:
		return "C"
	case ClassD:
		return "D"
	case ClassAPrime:
		return "A'"
	case ClassBPrime:
		return "B'"
	case ClassADouble:
		return "A''"
	case ClassBDouble:
		return "B''"
	case ClassE:
		return "E"
	case ClassF:
		return "F"
	default:
		return "?"
	}
}

// Point is an integer candidate placement origin.
type Point struct {
	X, Y int
}

// Strategy is a permutation of all ten classes, defining pool-drain order.
// A zero Strategy is not meaningful; use DefaultStrategy or ValidateStrategy
// any externally constructed value before using it.
type Strategy [NumClasses]Class

// DefaultStrategy returns the canonical class order A,B,C,D,A',B',A'',B'',E,F.
func DefaultStrategy() Strategy {
	return Strategy{
		ClassA, ClassB, ClassC, ClassD,
		ClassAPrime, ClassBPrime, ClassADouble, ClassBDouble,
		ClassE, ClassF,
	}
}

// ValidateStrategy reports whether s contains each of the ten classes
// exactly once.
// Complexity: O(NumClasses).
func ValidateStrategy(s Strategy) error {
	var seen [NumClasses]bool
	var i int
	for i = 0; i < NumClasses; i++ {
		c := s[i]
		if c < 0 || int(c) >= NumClasses {
			return ErrUnknownClass
		}
		if seen[c] {
			return ErrDuplicateClass
		}
		seen[c] = true
	}

	return nil
}
