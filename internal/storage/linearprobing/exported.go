package linearprobing

import (
	"github.com/gostonefire/lookuptables/crt"
	"github.com/gostonefire/lookuptables/hashfunc"
	"github.com/gostonefire/lookuptables/internal/hash"
	"github.com/gostonefire/lookuptables/internal/model"
	"github.com/pkg/errors"
)

// LPSlots - Represents an in-memory implementation of the Linear Probing Collision Resolution Technique.
// It uses one array of slots where each slot holds at most one entry. In case of a collision, it probes through
// the table slot by slot, wrapping at the end, looking for an empty slot, and assigns the free slot to the entry.
// Once all slots are occupied the table will accept no more entries.
type LPSlots struct {
	slots             []model.Slot
	capacity          int64
	hashAlgorithm     hashfunc.HashAlgorithm
	internalAlgorithm bool
	nEmpty            int64
	nOccupied         int64
	nDeleted          int64
}

// NewLPSlots - Returns a pointer to a new instance of the Linear Probing slot implementation.
//   - slotsConf is a model.SlotsConf struct providing configuration parameters affecting slot allocation and probing
//
// It returns:
//   - lpSlots which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewLPSlots(slotsConf model.SlotsConf) (lpSlots *LPSlots, err error) {
	if slotsConf.Capacity <= 0 {
		err = errors.Errorf("capacity must be a positive value higher than 0 (zero), got %d", slotsConf.Capacity)
		return
	}

	// If no HashAlgorithm was given then use the selected internal
	var internalAlg bool
	if slotsConf.HashAlgorithm == nil {
		switch slotsConf.HashFunction {
		case crt.CharSumHash:
			slotsConf.HashAlgorithm = hash.NewCharSumHashAlgorithm(slotsConf.Capacity)
		case crt.CRC32Hash:
			slotsConf.HashAlgorithm = hash.NewCRC32HashAlgorithm(slotsConf.Capacity)
		default:
			err = errors.Errorf("unknown internal hash function %d", slotsConf.HashFunction)
			return
		}
		internalAlg = true
	} else {
		slotsConf.HashAlgorithm.SetTableSize(slotsConf.Capacity)
	}

	capacity := slotsConf.HashAlgorithm.GetTableSize()
	if capacity <= 0 {
		err = errors.Errorf("hash algorithm reports a table size of %d", capacity)
		return
	}

	slots := make([]model.Slot, capacity)
	for i := range slots {
		slots[i].Index = int64(i)
	}

	lpSlots = &LPSlots{
		slots:             slots,
		capacity:          capacity,
		hashAlgorithm:     slotsConf.HashAlgorithm,
		internalAlgorithm: internalAlg,
		nEmpty:            capacity,
		nOccupied:         0,
		nDeleted:          0,
	}

	return
}

// GetStorageParameters - Returns a struct with storage parameters from LPSlots
func (L *LPSlots) GetStorageParameters() (params model.StorageParameters) {
	params = model.StorageParameters{
		Capacity:          L.capacity,
		NumberOfOccupied:  L.nOccupied,
		NumberOfDeleted:   L.nDeleted,
		NumberOfEmpty:     L.nEmpty,
		InternalAlgorithm: L.internalAlgorithm,
	}

	return
}

// GetSlot - Returns the slot at the given index
//   - index is the position of the slot, 0 -> capacity - 1
//
// It returns:
//   - slot is a copy of the slot, changes to it are not reflected in the table
//   - err is a standard error if the index is out of range
func (L *LPSlots) GetSlot(index int64) (slot model.Slot, err error) {
	if index < 0 || index >= L.capacity {
		err = errors.Errorf("slot index %d outside of table range 0 -> %d", index, L.capacity-1)
		return
	}

	slot = L.slots[index]

	return
}

// Get - Gets the slot that holds the given key.
// The model.Slot that is returned contains also the index of the slot, this is to speed
// up higher levels functions such as Delete where the same slot is also supposed to be changed.
//   - key is the identifier of an entry
//
// It returns:
//   - slot is the matching slot if found, if not found an error of type crt.KeyNotFound is also returned.
//   - err is either of type crt.KeyNotFound or crt.ProbingAlgorithm
func (L *LPSlots) Get(key string) (slot model.Slot, err error) {
	slot, err = L.probingForGet(key)

	return
}

// Set - Updates an existing entry with new data or adds it if no existing is found with same key.
//   - key is the identifier of the entry
//   - value is any value to store along with the key
//
// It returns:
//   - slot is the slot written to
//   - err is either of type crt.TableOverflow or crt.ProbingAlgorithm, if no slot was available
func (L *LPSlots) Set(key string, value any) (slot model.Slot, err error) {
	slot, err = L.probingForSet(key)
	if err != nil {
		return
	}

	fromState := slot.State
	slot.State = model.SlotOccupied
	slot.Key = key
	slot.Value = value

	L.slots[slot.Index] = slot
	L.updateUtilizationInfo(fromState, slot.State)

	return
}

// Delete - Deletes an entry by setting state to SlotTombstone
//   - slot is the model.Slot to mark as deleted, and it must contain Index
//
// It returns:
//   - err is a standard error, if the slot was not occupied
func (L *LPSlots) Delete(slot model.Slot) (err error) {
	err = L.setState(slot, model.SlotTombstone)
	if err != nil {
		err = errors.Wrap(err, "error while marking slot as deleted")
	}

	return
}

// Clear - Clears an entry by setting state to SlotEmpty, which breaks any probe chain running through the slot
//   - slot is the model.Slot to clear, and it must contain Index
//
// It returns:
//   - err is a standard error, if the slot was not occupied
func (L *LPSlots) Clear(slot model.Slot) (err error) {
	err = L.setState(slot, model.SlotEmpty)
	if err != nil {
		err = errors.Wrap(err, "error while clearing slot")
	}

	return
}
