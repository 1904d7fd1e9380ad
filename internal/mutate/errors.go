package mutate

import "fmt"

// NotFoundError reports a lookup miss for one requested item number.
// Batch operations collect misses per number instead of aborting; see the
// Missing field on their result structs.
type NotFoundError struct {
	Number int
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("item not found: %d", e.Number)
}

type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string {
	return "invalid input: " + e.Reason
}
