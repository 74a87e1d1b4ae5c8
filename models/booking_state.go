package models

import (
	"travelapp/errors"
)

// BookingState defines the interface for booking status transitions
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Complete(booking *Booking) error
}

func transitionError(message string) error {
	return errors.NewAppError(errors.ErrCodeInvalidTransition, message, nil)
}

// PendingState is the state of a newly created booking
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

func (s *PendingState) Complete(booking *Booking) error {
	return transitionError("cannot complete a pending booking")
}

// ConfirmedState is the state of an accepted booking
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return transitionError("booking already confirmed")
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Complete(booking *Booking) error {
	booking.Status = BookingStatusCompleted
	return nil
}

// CompletedState is terminal
type CompletedState struct{}

func (s *CompletedState) Confirm(booking *Booking) error {
	return transitionError("booking already completed")
}

func (s *CompletedState) Cancel(booking *Booking) error {
	return transitionError("cannot cancel a completed booking")
}

func (s *CompletedState) Complete(booking *Booking) error {
	return transitionError("booking already completed")
}

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return transitionError("cannot confirm a cancelled booking")
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return transitionError("booking already cancelled")
}

func (s *CancelledState) Complete(booking *Booking) error {
	return transitionError("cannot complete a cancelled booking")
}

// GetBookingState returns the state matching the booking status
func GetBookingState(status int) BookingState {
	switch status {
	case BookingStatusPending:
		return &PendingState{}
	case BookingStatusConfirmed:
		return &ConfirmedState{}
	case BookingStatusCompleted:
		return &CompletedState{}
	case BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}
