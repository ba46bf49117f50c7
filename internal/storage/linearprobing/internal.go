package linearprobing

import (
	"github.com/gostonefire/lookuptables/crt"
	"github.com/gostonefire/lookuptables/internal/model"
	"github.com/pkg/errors"
)

// setState - Moves an occupied slot to a new state, dropping its key and value
func (L *LPSlots) setState(slot model.Slot, state uint8) (err error) {
	current, err := L.GetSlot(slot.Index)
	if err != nil {
		return
	}
	if current.State != model.SlotOccupied {
		err = errors.Errorf("slot %d is not occupied", slot.Index)
		return
	}

	L.slots[slot.Index] = model.Slot{State: state, Index: slot.Index}
	L.updateUtilizationInfo(current.State, state)

	return
}

// updateUtilizationInfo - Keeps the slot state counters in line with a state transition
func (L *LPSlots) updateUtilizationInfo(fromState, toState uint8) {
	if fromState == toState {
		return
	}

	switch fromState {
	case model.SlotEmpty:
		L.nEmpty--
	case model.SlotOccupied:
		L.nOccupied--
	case model.SlotTombstone:
		L.nDeleted--
	}

	switch toState {
	case model.SlotEmpty:
		L.nEmpty++
	case model.SlotOccupied:
		L.nOccupied++
	case model.SlotTombstone:
		L.nDeleted++
	}
}

// homeSlot - Returns the home slot of key, refusing values from the hash algorithm outside the table range
func (L *LPSlots) homeSlot(key string) (home int64, err error) {
	home = L.hashAlgorithm.HashFunc1(key)
	if home < 0 || home >= L.capacity {
		err = crt.ProbingAlgorithm{}
	}

	return
}

// probingForGet - Is the Linear Probing Collision Resolution Technique algorithm for getting a slot.
// Tombstones are stepped over, an empty slot ends the probe chain.
func (L *LPSlots) probingForGet(key string) (slot model.Slot, err error) {
	home, err := L.homeSlot(key)
	if err != nil {
		return
	}

	for i := int64(0); i < L.capacity; i++ {
		current := L.slots[(home+i)%L.capacity]

		switch current.State {
		case model.SlotEmpty:
			err = crt.KeyNotFound{}
			return

		case model.SlotOccupied:
			if current.Key == key {
				slot = current
				return
			}
		}
	}

	// Every slot visited once
	err = crt.KeyNotFound{}
	return
}

// probingForSet - Is the Linear Probing Collision Resolution Technique algorithm for getting a slot for set.
// A slot already holding the key wins over the first tombstone seen, which in turn wins over the empty slot ending
// the chain. Hence, a key never occupies more than one slot.
func (L *LPSlots) probingForSet(key string) (slot model.Slot, err error) {
	var deletedSlot model.Slot
	var hasCached bool

	home, err := L.homeSlot(key)
	if err != nil {
		return
	}

	for i := int64(0); i < L.capacity; i++ {
		current := L.slots[(home+i)%L.capacity]

		switch current.State {
		case model.SlotEmpty:
			if hasCached {
				slot = deletedSlot
			} else {
				slot = current
			}
			return

		case model.SlotOccupied:
			if current.Key == key {
				slot = current
				return
			}

		case model.SlotTombstone:
			if !hasCached {
				deletedSlot = current
				hasCached = true
			}
		}
	}

	// Every slot visited once, a tombstone is the only place left
	if hasCached {
		slot = deletedSlot
		return
	}

	err = crt.TableOverflow{}
	return
}
