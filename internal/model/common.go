package model

import "github.com/gostonefire/lookuptables/hashfunc"

// SlotEmpty - State indicating a slot that is not, or has never been, in use
const SlotEmpty uint8 = 0

// SlotOccupied - State indicating a slot that is in use
const SlotOccupied uint8 = 1

// SlotTombstone - State indicating a slot that has been in use but was deleted, it keeps probe chains intact
const SlotTombstone uint8 = 2

// Slot - Represents one slot in a hash table
type Slot struct {
	State uint8
	Index int64
	Key   string
	Value any
}

// Entry - Represents one key/value pair in a look-up table
type Entry struct {
	Key   string
	Value any
}

// StorageParameters - Represents parameters specific for any implementation of storage
type StorageParameters struct {
	Capacity          int64
	NumberOfOccupied  int64
	NumberOfDeleted   int64
	NumberOfEmpty     int64
	InternalAlgorithm bool
}

// SlotsConf - Is a struct to be passed in the call to NewXXSlots and contains configuration that affects
// slot allocation and probing.
//   - Capacity is the number of slots to allocate
//   - HashFunction is the internal hash function to use if HashAlgorithm is nil
//   - HashAlgorithm is the hash function to use, overriding HashFunction
type SlotsConf struct {
	Capacity      int64
	HashFunction  int
	HashAlgorithm hashfunc.HashAlgorithm
}
