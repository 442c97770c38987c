package inventory

import (
	"ReliefLink/entities"
)

const lowStockFloor = 5

// IsOverrideStatus reports whether status is one of the administrator
// overrides that take precedence over the quantity-derived status.
func IsOverrideStatus(status string) bool {
	switch status {
	case entities.EntryStatusReserved, entities.EntryStatusDamaged, entities.EntryStatusExpired:
		return true
	}
	return false
}

// LowStockThreshold is max(5, 20% of total). Integer truncation keeps the
// comparison equivalent to the fractional threshold for whole quantities.
func LowStockThreshold(quantityTotal int) int {
	threshold := quantityTotal / 5
	if threshold < lowStockFloor {
		return lowStockFloor
	}
	return threshold
}

// DeriveStatus computes the stock-level status from quantities. An override
// status already on the entry is returned unchanged until explicitly cleared.
// The function is idempotent.
func DeriveStatus(entry *entities.InventoryEntry) string {
	if IsOverrideStatus(entry.Status) {
		return entry.Status
	}
	if entry.QuantityAvailable == 0 {
		return entities.EntryStatusOutOfStock
	}
	if entry.QuantityAvailable <= LowStockThreshold(entry.QuantityTotal) {
		return entities.EntryStatusLowStock
	}
	return entities.EntryStatusAvailable
}
