package service

import (
	"sort"
	"time"

	"social-planner/core/errors"
	"social-planner/modules/availability/entity"
	schedule "social-planner/modules/schedule/entity"
)

// SlotFinder handles the algorithm to find candidate time slots
type SlotFinder struct {
	// SlotStepMinutes - grid spacing, default 30
	SlotStepMinutes    int
	MinDurationMinutes int
	MaxDurationMinutes int
	MaxSearchRange     time.Duration
}

// NewSlotFinder creates a new slot finder with default settings
func NewSlotFinder() *SlotFinder {
	return &SlotFinder{
		SlotStepMinutes:    30,
		MinDurationMinutes: 15,
		MaxDurationMinutes: 480,
		MaxSearchRange:     31 * 24 * time.Hour,
	}
}

func (sf *SlotFinder) validate(req entity.SearchRequest) *errors.AppError {
	switch {
	case len(req.Members) == 0:
		return errors.NewAppError(errors.ErrInvalidInput, "at least one member is required", nil)
	case req.DurationMinutes < sf.MinDurationMinutes || req.DurationMinutes > sf.MaxDurationMinutes:
		return errors.NewAppError(errors.ErrInvalidInput, "duration_minutes is out of range", nil)
	case req.SearchStart.IsZero() || req.SearchEnd.IsZero():
		return errors.NewAppError(errors.ErrInvalidInput, "search range is required", nil)
	case !req.SearchEnd.After(req.SearchStart):
		return errors.NewAppError(errors.ErrInvalidInput, "search_end must be after search_start", nil)
	case req.SearchEnd.Sub(req.SearchStart) > sf.MaxSearchRange:
		return errors.NewAppError(errors.ErrInvalidInput, "search range is too long", nil)
	}
	for _, m := range req.Members {
		for _, b := range m.Busy {
			if !b.End.After(b.Start) {
				return errors.NewAppError(errors.ErrInvalidInput, "busy range must end after it starts", nil)
			}
		}
	}
	return nil
}

// FindCandidateSlots returns every grid slot in the search range together
// with how many members are free for all of it. Slots with fewer than
// MinAvailable free members are dropped. Output is in chronological order.
func (sf *SlotFinder) FindCandidateSlots(req entity.SearchRequest) ([]schedule.Slot, *errors.AppError) {
	if appErr := sf.validate(req); appErr != nil {
		return nil, appErr
	}

	loc := req.Location
	if loc == nil {
		loc = time.UTC
	}
	minAvailable := req.MinAvailable
	if minAvailable < 1 {
		minAvailable = 1
	}

	// 1. Merge overlapping busy times per member
	busy := make([][]entity.TimeSlot, len(req.Members))
	for i, m := range req.Members {
		busy[i] = sf.mergeOverlappingSlots(m.Busy)
	}

	// 2. Generate possible slots
	candidates := sf.generateTimeSlots(req.SearchStart.In(loc), req.SearchEnd.In(loc), req.DurationMinutes)

	// 3. Count free members per slot
	out := make([]schedule.Slot, 0, len(candidates))
	for _, c := range candidates {
		free := 0
		for _, memberBusy := range busy {
			if sf.isFree(c, memberBusy) {
				free++
			}
		}
		if free < minAvailable {
			continue
		}
		out = append(out, schedule.Slot{
			Start:          c.Start,
			End:            c.End,
			AvailableCount: free,
			TotalMembers:   len(req.Members),
		})
	}
	return out, nil
}

// mergeOverlappingSlots merges overlapping or adjacent busy time slots. The
// input is left untouched.
func (sf *SlotFinder) mergeOverlappingSlots(slots []entity.TimeSlot) []entity.TimeSlot {
	if len(slots) == 0 {
		return nil
	}

	sorted := make([]entity.TimeSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})

	merged := []entity.TimeSlot{sorted[0]}
	for _, current := range sorted[1:] {
		last := &merged[len(merged)-1]

		// If overlapping or adjacent, extend
		if !current.Start.After(last.End) {
			if current.End.After(last.End) {
				last.End = current.End
			}
		} else {
			merged = append(merged, current)
		}
	}
	return merged
}

// generateTimeSlots walks the grid from the first boundary at or after start
// and emits every slot that ends no later than end.
func (sf *SlotFinder) generateTimeSlots(start, end time.Time, durationMinutes int) []entity.TimeSlot {
	var slots []entity.TimeSlot
	duration := time.Duration(durationMinutes) * time.Minute
	step := time.Duration(sf.stepMinutes()) * time.Minute

	for current := sf.roundUpToGrid(start); !current.Add(duration).After(end); current = current.Add(step) {
		slots = append(slots, entity.TimeSlot{
			Start: current,
			End:   current.Add(duration),
		})
	}
	return slots
}

func (sf *SlotFinder) isFree(slot entity.TimeSlot, busy []entity.TimeSlot) bool {
	for _, b := range busy {
		if b.Start.After(slot.End) {
			break
		}
		if sf.overlaps(slot, b) {
			return false
		}
	}
	return true
}

// overlaps checks if two time slots overlap
func (sf *SlotFinder) overlaps(a, b entity.TimeSlot) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

func (sf *SlotFinder) stepMinutes() int {
	if sf.SlotStepMinutes <= 0 {
		return 30
	}
	return sf.SlotStepMinutes
}

// roundUpToGrid rounds t up to the next wall-clock grid boundary in t's
// location (:00 or :30 for the default step). The floor is subtracted from t
// so it keeps t's offset inside a repeated fall-back hour.
func (sf *SlotFinder) roundUpToGrid(t time.Time) time.Time {
	step := sf.stepMinutes()
	past := time.Duration(t.Minute()%step)*time.Minute +
		time.Duration(t.Second())*time.Second +
		time.Duration(t.Nanosecond())
	if past == 0 {
		return t
	}
	return t.Add(-past).Add(time.Duration(step) * time.Minute)
}
