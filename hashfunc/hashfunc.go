package hashfunc

// HashAlgorithm - Interface that permits an implementation using the HashTable to supply a custom home slot
// selection algorithm suited for its particular distribution of keys.
// Collisions are always resolved by linear probing from the home slot, one slot at a time, wrapping at the end of
// the table. Delete2 relies on that to relocate the entries following a removed one.
type HashAlgorithm interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called when creating a new hash table and when a hash table is resized. Hence, if a custom
	// hash algorithm is supplied that implements this interface and the instance is already having a table size, it
	// will be overwritten by the capacity of the hash table.
	//   - tableSize is the number of slots the hash table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (home slot) between 0 and table size - 1
	// Any number returned outside the table size (0 -> table size - 1) will result in an error down stream.
	// The function must be deterministic, the same key must always give the same home slot for a given table size.
	HashFunc1(key string) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	// The hash table allocates exactly this number of slots, so it must be the table size given in the latest call
	// to SetTableSize unless the implementation deliberately rounds it.
	GetTableSize() int64

}
