package lookuptables

import (
	"github.com/gostonefire/lookuptables/hashfunc"
	"github.com/gostonefire/lookuptables/internal/model"
	"github.com/gostonefire/lookuptables/internal/storage/linearprobing"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultCapacity - Number of slots allocated when HashTableConf.Capacity is left at 0 (zero)
const DefaultCapacity int = 50

// SlotManagement - Interface for any slot management implementation
type SlotManagement interface {
	Get(key string) (slot model.Slot, err error)
	Set(key string, value any) (slot model.Slot, err error)
	Delete(slot model.Slot) (err error)
	Clear(slot model.Slot) (err error)
	GetSlot(index int64) (slot model.Slot, err error)
	GetStorageParameters() (params model.StorageParameters)
}

// HashTableConf - Is a struct used in the call to NewHashTable holding configuration for the new hash table.
//   - Capacity is the fixed number of slots, 0 (zero) gives DefaultCapacity
//   - HashFunction is the internal hash function to use, crt.CharSumHash (default) or crt.CRC32Hash
//   - HashAlgorithm is an optional custom hash algorithm following the hashfunc.HashAlgorithm interface, it overrides HashFunction
//   - Logger receives diagnostics, nil gives a no-op logger
type HashTableConf struct {
	Capacity      int
	HashFunction  int
	HashAlgorithm hashfunc.HashAlgorithm
	Logger        *zap.Logger
}

// HashTableStat - Statistics on the slot usage
//   - Capacity is the total number of slots
//   - Occupied is the number of slots holding an entry
//   - Tombstones is the number of slots marked as deleted, they are reclaimed by insert or by a resize
//   - Empty is the number of slots never used or cleared
type HashTableStat struct {
	Capacity   int
	Occupied   int
	Tombstones int
	Empty      int
}

// HashTable - A fixed capacity, open addressed hash table mapping string keys to any value using linear probing
type HashTable struct {
	slotManagement SlotManagement
	hashFunction   int
	hashAlgorithm  hashfunc.HashAlgorithm
	logger         *zap.Logger
}

// NewHashTable - Returns a new hash table with all slots empty.
//   - hashTableConf is a HashTableConf struct with the configuration for the new hash table
//
// It returns:
//   - hashTable is a pointer to a HashTable struct
//   - err is a normal go Error which should be nil if everything went ok
func NewHashTable(hashTableConf HashTableConf) (hashTable *HashTable, err error) {
	// Check if capacity is valid
	if hashTableConf.Capacity < 0 {
		err = errors.Errorf("capacity must be 0 (zero) for default or a positive value, got %d", hashTableConf.Capacity)
		return
	}
	if hashTableConf.Capacity == 0 {
		hashTableConf.Capacity = DefaultCapacity
	}

	logger := hashTableConf.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sm, err := newSlotManagement(int64(hashTableConf.Capacity), hashTableConf.HashFunction, hashTableConf.HashAlgorithm)
	if err != nil {
		err = errors.Wrap(err, "error while allocating hash table slots")
		return
	}

	hashTable = &HashTable{
		slotManagement: sm,
		hashFunction:   hashTableConf.HashFunction,
		hashAlgorithm:  hashTableConf.HashAlgorithm,
		logger:         logger,
	}

	return
}

// newSlotManagement - Returns the slot management implementation for a given capacity
func newSlotManagement(capacity int64, hashFunction int, hashAlgorithm hashfunc.HashAlgorithm) (sm SlotManagement, err error) {
	lpSlots, err := linearprobing.NewLPSlots(model.SlotsConf{
		Capacity:      capacity,
		HashFunction:  hashFunction,
		HashAlgorithm: hashAlgorithm,
	})
	if err != nil {
		return
	}

	sm = lpSlots

	return
}
