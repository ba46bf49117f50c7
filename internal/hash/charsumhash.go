package hash

// CharSumHashAlgorithm - The default home slot selection. It sums the Unicode code points (runes) of the key and
// reduces the sum modulo the table size. A code point above U+FFFF counts once, not as a surrogate pair.
//
// Distribution quality is poor, anagrams always collide, but the function is deterministic and makes
// collisions easy to reason about.
type CharSumHashAlgorithm struct {
	tableSize int64
}

// NewCharSumHashAlgorithm - Returns a pointer to a new CharSumHashAlgorithm instance
func NewCharSumHashAlgorithm(tableSize int64) *CharSumHashAlgorithm {
	ha := &CharSumHashAlgorithm{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
func (C *CharSumHashAlgorithm) SetTableSize(tableSize int64) {
	C.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
func (C *CharSumHashAlgorithm) HashFunc1(key string) int64 {
	var n int64
	for _, r := range key { // code points, invalid UTF-8 bytes count as U+FFFD
		n += int64(r)
	}

	return n % C.tableSize
}

// GetTableSize - Returns the table size the implemented hash function is supporting
func (C *CharSumHashAlgorithm) GetTableSize() int64 {
	return C.tableSize
}
