package model

import (
	"github.com/google/uuid"
)

type HomeVisitStatus string

const (
	HomeVisitStatusPending   HomeVisitStatus = "pending"
	HomeVisitStatusConfirmed HomeVisitStatus = "confirmed"
	HomeVisitStatusCompleted HomeVisitStatus = "completed"
	HomeVisitStatusCancelled HomeVisitStatus = "cancelled"
)

// HomeVisitRequest is a request for a practitioner visit at the
// patient's address. Unlike slot bookings these carry no uniqueness
// constraint; the preferred slot is advisory.
type HomeVisitRequest struct {
	Base
	RequesterID   string          `db:"requester_id" json:"requester_id"`
	PatientName   string          `db:"patient_name" json:"patient_name"`
	PatientPhone  string          `db:"patient_phone" json:"patient_phone"`
	ServiceType   string          `db:"service_type" json:"service_type"`
	PreferredDate string          `db:"preferred_date" json:"preferred_date"`
	PreferredSlot string          `db:"preferred_slot" json:"preferred_slot"`
	City          string          `db:"city" json:"city"`
	Area          string          `db:"area" json:"area"`
	Address       string          `db:"address" json:"address"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	BookingID     *uuid.UUID      `db:"booking_id" json:"booking_id,omitempty"`
	Status        HomeVisitStatus `db:"status" json:"status"`
}

type CreateHomeVisitRequest struct {
	RequesterID   string `json:"requester_id" binding:"required"`
	PatientName   string `json:"patient_name" binding:"required"`
	PatientPhone  string `json:"patient_phone" binding:"required"`
	ServiceType   string `json:"service_type" binding:"required"`
	PreferredDate string `json:"preferred_date" binding:"required"`
	PreferredSlot string `json:"preferred_slot" binding:"required"`
	City          string `json:"city" binding:"required"`
	Area          string `json:"area" binding:"required"`
	Address       string `json:"address" binding:"required"`
	Notes         string `json:"notes"`
	BookingID     string `json:"booking_id"`
}
