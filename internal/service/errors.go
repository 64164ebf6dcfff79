package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/smartsched/smartsched/internal/model"
)

// FailureReason classifies why a scheduling request was refused.
type FailureReason string

const (
	ReasonClientNotFound      FailureReason = "client_not_found"
	ReasonEmployeeNotFound    FailureReason = "employee_not_found"
	ReasonOutsideWorkingHours FailureReason = "outside_working_hours"
	ReasonTimeSlotConflict    FailureReason = "time_slot_conflict"
	ReasonMalformedInput      FailureReason = "malformed_input"
	ReasonGenericFailure      FailureReason = "generic_failure"
)

// SchedulingError carries a machine-readable reason next to the message shown
// verbatim to the end user. OutsideWorkingHours errors additionally carry the
// weekday and its configured intervals so callers can present guidance.
type SchedulingError struct {
	Reason    FailureReason
	Message   string
	Weekday   time.Weekday
	Intervals []model.Interval
}

func (e *SchedulingError) Error() string {
	return e.Message
}

// ReasonOf extracts the failure reason from err, defaulting to
// ReasonGenericFailure for anything that is not a SchedulingError.
func ReasonOf(err error) FailureReason {
	var schedErr *SchedulingError
	if errors.As(err, &schedErr) {
		return schedErr.Reason
	}
	return ReasonGenericFailure
}

func errClientNotFound(name string) *SchedulingError {
	return &SchedulingError{
		Reason:  ReasonClientNotFound,
		Message: fmt.Sprintf("No client found with name '%s'.", name),
	}
}

func errEmployeeNotFound(name string) *SchedulingError {
	return &SchedulingError{
		Reason:  ReasonEmployeeNotFound,
		Message: fmt.Sprintf("No employee found with name '%s'.", name),
	}
}

func errOutsideWorkingHours(employee *model.Employee, weekday time.Weekday, intervals []model.Interval) *SchedulingError {
	var message string
	if len(intervals) > 0 {
		specs := make([]string, 0, len(intervals))
		for _, interval := range intervals {
			specs = append(specs, interval.String())
		}
		message = fmt.Sprintf(
			"%s only works on %ss at: %s. Please select a time within those ranges.",
			employee.Name, weekday, strings.Join(specs, ", "),
		)
	} else {
		message = fmt.Sprintf("%s does not work on %ss. Please select another day.", employee.Name, weekday)
	}

	return &SchedulingError{
		Reason:    ReasonOutsideWorkingHours,
		Message:   message,
		Weekday:   weekday,
		Intervals: intervals,
	}
}

func errTimeSlotConflict(employee *model.Employee) *SchedulingError {
	return &SchedulingError{
		Reason:  ReasonTimeSlotConflict,
		Message: fmt.Sprintf("%s already has another appointment at that time.", employee.Name),
	}
}

func errMalformedInput(message string) *SchedulingError {
	return &SchedulingError{Reason: ReasonMalformedInput, Message: message}
}

func errGeneric(err error) *SchedulingError {
	return &SchedulingError{
		Reason:  ReasonGenericFailure,
		Message: fmt.Sprintf("Error creating appointment: %s", err),
	}
}
