package inventory

import (
	"ReliefLink/entities"
	"time"
)

// IsOfferableNow reports whether the entry's stock may be claimed at the
// given instant under its availability mode. OnRequest entries are always
// offerable; response_hours is a response SLA surfaced to callers, not a gate.
func IsOfferableNow(entry *entities.InventoryEntry, now time.Time) bool {
	switch entry.AvailabilityMode {
	case entities.AvailabilityImmediate:
		return entry.Status != entities.EntryStatusOutOfStock
	case entities.AvailabilityScheduled:
		if entry.AvailableFrom == nil || entry.AvailableUntil == nil {
			return false
		}
		return !now.Before(*entry.AvailableFrom) && !now.After(*entry.AvailableUntil)
	case entities.AvailabilityOnRequest:
		return true
	case entities.AvailabilityLimitedTime:
		if entry.AvailableUntil == nil {
			return false
		}
		return !now.After(*entry.AvailableUntil)
	}
	return false
}
