package model

import (
	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a reservation of one slot on one calendar day. The ledger
// enforces uniqueness on (provider_id, date, slot) across booked AND
// cancelled rows: a cancelled slot key is never handed to a different
// booking. The only permitted mutation is booked -> cancelled.
type Booking struct {
	Base
	ProviderID     uuid.UUID     `db:"provider_id" json:"provider_id"`
	Specialization string        `db:"specialization" json:"specialization"`
	RequesterID    string        `db:"requester_id" json:"requester_id"`
	PatientName    string        `db:"patient_name" json:"patient_name"`
	PatientPhone   string        `db:"patient_phone" json:"patient_phone"`
	Date           string        `db:"date" json:"date"`
	Slot           string        `db:"slot" json:"slot"`
	SlotMinutes    int           `db:"slot_minutes" json:"slot_minutes"`
	SerialNo       int           `db:"serial_no" json:"serial_no"`
	Status         BookingStatus `db:"status" json:"status"`
}

// BookSlotRequest carries a reservation attempt. Required-field checks
// happen in the scheduling service so each miss maps to a missing-field
// error kind.
type BookSlotRequest struct {
	ProviderID   string `json:"provider_id"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
	RequesterID  string `json:"requester_id"`
}

// SlotsResponse answers an availability query. Reason is present only
// when Slots is empty because the provider does not work that day or
// their hours string is unusable; it is part of the response contract.
type SlotsResponse struct {
	ProviderID  string   `json:"provider_id"`
	Date        string   `json:"date"`
	SlotMinutes int      `json:"slot_minutes"`
	Slots       []string `json:"slots"`
	Reason      string   `json:"reason,omitempty"`
}
