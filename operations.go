package lookuptables

import (
	"fmt"
	"github.com/gostonefire/lookuptables/crt"
	"github.com/gostonefire/lookuptables/internal/model"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"strings"
)

// Insert - Maps key to value. If the key is already present its value is replaced, otherwise the entry is written to
// the first tombstone or empty slot found by linear probing from the home slot of the key.
//   - key is the identifier of the entry
//   - value is any value to store along with the key
//
// It returns:
//   - err is of type crt.TableOverflow if no slot is available, the table is then left unchanged
func (H *HashTable) Insert(key string, value any) (err error) {
	_, err = H.slotManagement.Set(key, value)

	return
}

// Retrieve - Gets the value mapped to key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type crt.KeyNotFound is also returned.
//   - err is of type crt.KeyNotFound if key is not present
func (H *HashTable) Retrieve(key string) (value any, err error) {
	slot, err := H.slotManagement.Get(key)
	if err != nil {
		return
	}

	value = slot.Value

	return
}

// Delete - Removes the mapping for key by leaving a tombstone in its slot. The tombstone keeps probe chains running
// through the slot intact, and the slot can be taken by a later insert.
//   - key is the identifier of the entry
//
// It returns:
//   - err is of type crt.KeyNotFound if key is not present
func (H *HashTable) Delete(key string) (err error) {
	slot, err := H.slotManagement.Get(key)
	if err != nil {
		return
	}

	err = H.slotManagement.Delete(slot)

	return
}

// Delete2 - Removes the mapping for key by emptying its slot, then relocates the entries that follow it in the
// same cluster so that no probe chain is broken by the new gap. Scanning wraps at the end of the table and stops at
// the first empty slot. Tombstones met during the scan are left in place.
//   - key is the identifier of the entry
//
// It returns:
//   - err is of type crt.KeyNotFound if key is not present
func (H *HashTable) Delete2(key string) (err error) {
	slot, err := H.slotManagement.Get(key)
	if err != nil {
		return
	}

	err = H.slotManagement.Clear(slot)
	if err != nil {
		return
	}

	capacity := H.slotManagement.GetStorageParameters().Capacity

	var next, moved model.Slot
	for i := int64(1); i < capacity; i++ {
		next, err = H.slotManagement.GetSlot((slot.Index + i) % capacity)
		if err != nil {
			return
		}

		switch next.State {
		case model.SlotEmpty:
			return
		case model.SlotTombstone:
			continue
		}

		err = H.slotManagement.Clear(next)
		if err != nil {
			return
		}
		moved, err = H.slotManagement.Set(next.Key, next.Value)
		if err != nil {
			err = errors.Wrapf(err, "error while relocating key %q from slot %d", next.Key, next.Index)
			return
		}

		if moved.Index != next.Index {
			H.logger.Debug("relocated entry after delete",
				zap.String("key", next.Key),
				zap.Int64("from", next.Index),
				zap.Int64("to", moved.Index))
		}
	}

	return
}

// Resize - Rehashes every entry into a new table of the given capacity. Tombstones are dropped.
// The new table is built aside and only replaces the current one when every entry fits. If an entry overflows
// the new table, the hash table is left unchanged and a warning is logged.
//   - capacity is the number of slots of the new table, it can be larger or smaller than the current capacity
//
// It returns:
//   - resized is true if the new table replaced the current one
//   - err is a standard error if capacity is invalid or the rehashing failed for other reasons than overflow
func (H *HashTable) Resize(capacity int) (resized bool, err error) {
	if capacity <= 0 {
		err = errors.Errorf("capacity must be a positive value higher than 0 (zero), got %d", capacity)
		return
	}

	params := H.slotManagement.GetStorageParameters()

	sm, err := newSlotManagement(int64(capacity), H.hashFunction, H.hashAlgorithm)
	if err != nil {
		H.restoreTableSize(params.Capacity)
		err = errors.Wrap(err, "error while allocating resized hash table slots")
		return
	}

	var slot model.Slot
	for i := int64(0); i < params.Capacity; i++ {
		slot, err = H.slotManagement.GetSlot(i)
		if err != nil {
			H.restoreTableSize(params.Capacity)
			return
		}
		if slot.State != model.SlotOccupied {
			continue
		}

		_, err = sm.Set(slot.Key, slot.Value)
		if err != nil {
			H.restoreTableSize(params.Capacity)
			if errors.Is(err, crt.TableOverflow{}) {
				H.logger.Warn("cannot rehash due to table overflow, table was not resized",
					zap.Int64("capacity", params.Capacity),
					zap.Int("requestedCapacity", capacity),
					zap.Int64("occupied", params.NumberOfOccupied))
				err = nil
				return
			}
			err = errors.Wrapf(err, "error while rehashing key %q", slot.Key)
			return
		}
	}

	H.slotManagement = sm
	resized = true

	H.logger.Debug("hash table resized",
		zap.Int64("fromCapacity", params.Capacity),
		zap.Int("toCapacity", capacity),
		zap.Int64("droppedTombstones", params.NumberOfDeleted))

	return
}

// Stat - Returns a HashTableStat struct with slot usage
func (H *HashTable) Stat() (hashTableStat HashTableStat) {
	params := H.slotManagement.GetStorageParameters()

	hashTableStat = HashTableStat{
		Capacity:   int(params.Capacity),
		Occupied:   int(params.NumberOfOccupied),
		Tombstones: int(params.NumberOfDeleted),
		Empty:      int(params.NumberOfEmpty),
	}

	return
}

// Capacity - Returns the number of slots in the hash table
func (H *HashTable) Capacity() int {
	return int(H.slotManagement.GetStorageParameters().Capacity)
}

// Len - Returns the number of entries in the hash table
func (H *HashTable) Len() int {
	return int(H.slotManagement.GetStorageParameters().NumberOfOccupied)
}

// String - Returns a listing with one line per slot, "<index>: <key> <value>", "<index>: <empty>" or "<index>: <tombstone>"
func (H *HashTable) String() string {
	var sb strings.Builder

	capacity := H.slotManagement.GetStorageParameters().Capacity
	for i := int64(0); i < capacity; i++ {
		slot, err := H.slotManagement.GetSlot(i)
		if err != nil {
			break
		}

		switch slot.State {
		case model.SlotOccupied:
			_, _ = fmt.Fprintf(&sb, "%d: %s %v\n", i, slot.Key, slot.Value)
		case model.SlotTombstone:
			_, _ = fmt.Fprintf(&sb, "%d: <tombstone>\n", i)
		default:
			_, _ = fmt.Fprintf(&sb, "%d: <empty>\n", i)
		}
	}

	return sb.String()
}

// restoreTableSize - Gives a custom hash algorithm back the table size of the current table after a failed resize
func (H *HashTable) restoreTableSize(capacity int64) {
	if H.hashAlgorithm != nil {
		H.hashAlgorithm.SetTableSize(capacity)
	}
}
