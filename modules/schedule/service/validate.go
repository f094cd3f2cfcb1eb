package service

import (
	"fmt"

	"social-planner/core/errors"
	"social-planner/modules/schedule/entity"
)

// ValidateSlots checks the slot invariants: Start before End and
// 0 <= AvailableCount <= TotalMembers.
func ValidateSlots(slots []entity.Slot) *errors.AppError {
	for i, s := range slots {
		if s.Start.IsZero() || s.End.IsZero() {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("slot %d: start and end are required", i), nil)
		}
		if !s.Start.Before(s.End) {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("slot %d: start must be before end", i), nil)
		}
		if s.AvailableCount < 0 || s.TotalMembers < 0 || s.AvailableCount > s.TotalMembers {
			return errors.NewAppError(errors.ErrInvalidInput, fmt.Sprintf("slot %d: need 0 <= available_count <= total_members", i), nil)
		}
	}
	return nil
}
