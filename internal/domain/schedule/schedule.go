// Package schedule derives a provider's bookable slots from its opening hours.
package schedule

import (
	"sort"

	"locator/internal/domain/entity"
)

// DefaultSlotMinutes is the slot length used when none is configured.
const DefaultSlotMinutes = 60

// BuildGrid returns every slot start from Open, stepping by stepMinutes,
// that begins strictly before Close. A closed day yields no slots.
func BuildGrid(hours entity.DayHours, stepMinutes int) []entity.Slot {
	if hours.Closed || stepMinutes <= 0 || hours.Open >= hours.Close {
		return []entity.Slot{}
	}

	grid := make([]entity.Slot, 0, int(hours.Close-hours.Open)/stepMinutes+1)
	for slot := hours.Open; slot < hours.Close; slot += entity.Slot(stepMinutes) {
		grid = append(grid, slot)
	}

	return grid
}

// Contains reports whether slot is a member of grid.
func Contains(grid []entity.Slot, slot entity.Slot) bool {
	i := sort.Search(len(grid), func(i int) bool { return grid[i] >= slot })

	return i < len(grid) && grid[i] == slot
}

// Partition splits grid into the slots not taken and the slots taken.
// Taken times that fall outside the grid are ignored, so the two lists always
// cover exactly the grid.
func Partition(grid []entity.Slot, taken []entity.Slot) *entity.SlotGrid {
	takenSet := make(map[entity.Slot]struct{}, len(taken))
	for _, slot := range taken {
		takenSet[slot] = struct{}{}
	}

	result := &entity.SlotGrid{
		Available: []entity.Slot{},
		Booked:    []entity.Slot{},
	}
	for _, slot := range grid {
		if _, ok := takenSet[slot]; ok {
			result.Booked = append(result.Booked, slot)
		} else {
			result.Available = append(result.Available, slot)
		}
	}

	return result
}
