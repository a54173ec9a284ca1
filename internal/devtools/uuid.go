package devtools

import (
	"fmt"

	"github.com/google/uuid"
)

// MaxUUIDs bounds a single NewUUIDs call.
const MaxUUIDs = 100

// NewUUIDs generates n random (version 4) UUIDs.
func NewUUIDs(n int) ([]string, error) {
	if n < 1 || n > MaxUUIDs {
		return nil, fmt.Errorf("count must be between 1 and %d, got %d", MaxUUIDs, n)
	}
	out := make([]string, n)
	for i := range out {
		id, err := uuid.NewRandom()
		if err != nil {
			return nil, fmt.Errorf("generate uuid: %w", err)
		}
		out[i] = id.String()
	}
	return out, nil
}
