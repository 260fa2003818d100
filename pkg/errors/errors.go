package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so callers can distinguish a
// fixable request ("fix your input") from a lost race ("pick another slot").
type Kind string

const (
	KindMissingField    Kind = "missing-field"
	KindUnknownProvider Kind = "unknown-provider"
	KindNotAvailableDay Kind = "not-available-that-day"
	KindInvalidWindow   Kind = "invalid-window"
	KindSlotNotOffered  Kind = "slot-not-offered"
	KindSlotConflict    Kind = "slot-conflict"
	KindNotFound        Kind = "not-found"
	KindBadRequest      Kind = "bad-request"
	KindInternal        Kind = "internal"
)

// AppError is the application error carried across service boundaries.
type AppError struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// KindOf extracts the Kind from err, or KindInternal for plain errors.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func MissingField(field string) *AppError {
	return &AppError{Kind: KindMissingField, Message: fmt.Sprintf("%s is required", field)}
}

func UnknownProvider(err error) *AppError {
	return &AppError{Kind: KindUnknownProvider, Message: "provider not found", Err: err}
}

func NotAvailableDay(dayCode string) *AppError {
	return &AppError{Kind: KindNotAvailableDay, Message: fmt.Sprintf("provider not available on %s", dayCode)}
}

func InvalidWindow() *AppError {
	return &AppError{Kind: KindInvalidWindow, Message: "provider hours format invalid"}
}

func SlotNotOffered(slot string) *AppError {
	return &AppError{Kind: KindSlotNotOffered, Message: fmt.Sprintf("slot %s is not offered for this provider schedule", slot)}
}

func SlotConflict() *AppError {
	return &AppError{Kind: KindSlotConflict, Message: "this slot is already booked, choose another"}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", resource), Err: err}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{Kind: KindBadRequest, Message: message, Err: err}
}

func Internal(err error) *AppError {
	return &AppError{Kind: KindInternal, Message: "internal server error", Err: err}
}
