package alarm

import "time"

// Class is the routing category of an alarm request. There are exactly two:
// requests whose expiry instant falls on an odd Unix second and requests
// whose expiry falls on an even one. Each class is served by its own worker.
type Class int

const (
	// ClassOdd routes requests with an odd expiry instant.
	ClassOdd Class = iota
	// ClassEven routes requests with an even expiry instant.
	ClassEven
)

// ClassOf derives the routing class from the parity of the expiry instant,
// measured in Unix seconds.
func ClassOf(expiry time.Time) Class {
	if expiry.Unix()%2 != 0 {
		return ClassOdd
	}

	return ClassEven
}

// Classes returns all routing classes in a stable order.
func Classes() []Class {
	return []Class{ClassOdd, ClassEven}
}

// String returns a human-readable class name used in reports and logs.
func (c Class) String() string {
	switch c {
	case ClassOdd:
		return "odd"
	case ClassEven:
		return "even"
	default:
		return "unknown"
	}
}
