package model

import (
	"github.com/lib/pq"
)

// DefaultSlotMinutes is the slot granularity used when a provider does
// not specify one.
const DefaultSlotMinutes = 15

// Provider is a bookable practitioner. AvailableDays holds week-day
// codes ("Sun".."Sat"); Hours is a single human-readable working-hours
// string like "6 PM - 9 PM" shared by all available days. Hours that
// fail to parse are not an error: such a provider simply offers no
// slots.
type Provider struct {
	Base
	Name           string         `db:"name" json:"name"`
	Specialization string         `db:"specialization" json:"specialization"`
	Chamber        string         `db:"chamber" json:"chamber,omitempty"`
	Location       string         `db:"location" json:"location,omitempty"`
	AvailableDays  pq.StringArray `db:"available_days" json:"available_days"`
	Hours          string         `db:"hours" json:"hours"`
	SlotMinutes    int            `db:"slot_minutes" json:"slot_minutes"`
	Phone          string         `db:"phone" json:"phone,omitempty"`
	Email          string         `db:"email" json:"email,omitempty"`
	Fee            float64        `db:"fee" json:"fee"`
}

// AvailableOn reports whether the provider works on the given day code.
func (p *Provider) AvailableOn(dayCode string) bool {
	for _, d := range p.AvailableDays {
		if d == dayCode {
			return true
		}
	}
	return false
}

// Granularity returns the provider's slot length, falling back to the
// system default.
func (p *Provider) Granularity() int {
	if p.SlotMinutes > 0 {
		return p.SlotMinutes
	}
	return DefaultSlotMinutes
}

type CreateProviderRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialization string   `json:"specialization" binding:"required"`
	Chamber        string   `json:"chamber"`
	Location       string   `json:"location"`
	AvailableDays  []string `json:"available_days" binding:"dive,oneof=Sun Mon Tue Wed Thu Fri Sat"`
	Hours          string   `json:"hours"`
	SlotMinutes    int      `json:"slot_minutes" binding:"omitempty,min=5,max=240"`
	Phone          string   `json:"phone"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Fee            float64  `json:"fee" binding:"omitempty,min=0"`
}
