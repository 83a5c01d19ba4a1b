package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	EntityName = "draft"
)

// Step is the position of a draft inside the booking flow. Transitions
// only ever move one step at a time.
type Step string

const (
	StepGuestSelection    Step = "guest_selection"
	StepDateTimeSelection Step = "datetime_selection"
	StepReviewAndPay      Step = "review_and_pay"
	StepConfirmed         Step = "confirmed"
)

var stepOrder = []Step{
	StepGuestSelection,
	StepDateTimeSelection,
	StepReviewAndPay,
	StepConfirmed,
}

func (s Step) Valid() bool {
	for _, step := range stepOrder {
		if s == step {
			return true
		}
	}

	return false
}

// Next returns the following step and whether a forward transition exists.
// Confirmed is terminal.
func (s Step) Next() (Step, bool) {
	for i, step := range stepOrder[:len(stepOrder)-1] {
		if s == step {
			return stepOrder[i+1], true
		}
	}

	return s, false
}

// Prev returns the preceding step and whether a backward transition exists.
// Confirmed cannot be left by going back.
func (s Step) Prev() (Step, bool) {
	if s == StepConfirmed {
		return s, false
	}

	for i, step := range stepOrder[1:] {
		if s == step {
			return stepOrder[i], true
		}
	}

	return s, false
}

// Draft is the in-progress booking for one session. It lives in Redis
// only and snapshots the lounge so later catalog edits do not shift an
// open checkout.
type Draft struct {
	ID            string          `json:"id"`
	SessionID     string          `json:"session_id"`
	LoungeID      string          `json:"lounge_id"`
	LoungeName    string          `json:"lounge_name"`
	Terminal      string          `json:"terminal"`
	AirportID     string          `json:"airport_id"`
	OpenTime      string          `json:"open_time"`
	CloseTime     string          `json:"close_time"`
	Guests        int             `json:"guests"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	PricePerGuest decimal.Decimal `json:"price_per_guest"`
	Currency      string          `json:"currency"`
	Total         decimal.Decimal `json:"total"`
	Step          Step            `json:"step"`
	CreatedAt     time.Time       `json:"created_at"`
	ModifiedAt    time.Time       `json:"modified_at"`
}

// RecalculateTotal keeps the total in lockstep with the guest count.
func (d *Draft) RecalculateTotal() {
	d.Total = d.PricePerGuest.Mul(decimal.NewFromInt(int64(d.Guests)))
}

// Complete reports whether the draft holds everything checkout needs.
func (d *Draft) Complete() bool {
	return d.LoungeID != "" && d.Guests > 0 && d.Date != "" && d.Time != ""
}
