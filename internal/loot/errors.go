package loot

import (
	"errors"
	"fmt"
)

// Row validation failures. A row failing any of them is skipped at load.
var (
	ErrZeroMinCount         = errors.New("mincountOrRef is zero")
	ErrUnknownItem          = errors.New("unknown item id")
	ErrEqualChanceUngrouped = errors.New("equal-chanced entry outside a group")
	ErrLowChance            = errors.New("chance below 0.000001")
	ErrZeroChanceReference  = errors.New("zero chance for a reference")
)

var (
	// ErrContentNotFound is returned by Fill for an id absent from the store.
	ErrContentNotFound = errors.New("loot template not found")
	// ErrSlotNotAvailable is returned when a slot is empty, looted or not visible to the viewer.
	ErrSlotNotAvailable = errors.New("loot slot not available")
	// ErrSlotBlocked is returned for a non-quest item held by a group roll.
	ErrSlotBlocked = errors.New("loot slot blocked")
)

// LoadDataError describes a malformed loot table row.
type LoadDataError struct {
	Table string
	Entry int32
	Item  int32
	Err   error
}

func (e *LoadDataError) Error() string {
	return fmt.Sprintf("%s entry %d item %d: %v", e.Table, e.Entry, e.Item, e.Err)
}

func (e *LoadDataError) Unwrap() error { return e.Err }
