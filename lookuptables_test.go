//go:build unit

package lookuptables

import (
	"github.com/google/uuid"
	"math/rand"
)

// randomEntries - Returns n entries with random distinct keys
func randomEntries(n int) map[string]int {
	entries := make(map[string]int, n)
	for len(entries) < n {
		entries[uuid.NewString()] = rand.Int()
	}

	return entries
}
