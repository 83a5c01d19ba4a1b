package model

import (
	"loungepass/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldReference     = "reference"
	FieldSessionID     = "session_id"
	FieldLoungeID      = "lounge_id"
	FieldLoungeName    = "lounge_name"
	FieldTerminal      = "terminal"
	FieldAirportID     = "airport_id"
	FieldDate          = "date"
	FieldTime          = "time"
	FieldGuests        = "guests"
	FieldPricePerGuest = "price_per_guest"
	FieldTotal         = "total"
	FieldCurrency      = "currency"
	FieldFirstName     = "first_name"
	FieldLastName      = "last_name"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldStatus        = "status"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Booking is a finalized reservation. The lounge fields are copied from
// the draft snapshot, so the row stays self-contained even if the
// catalog changes later.
type Booking struct {
	ID            string          `db:"id"`
	Reference     string          `db:"reference"`
	SessionID     string          `db:"session_id"`
	LoungeID      string          `db:"lounge_id"`
	LoungeName    string          `db:"lounge_name"`
	Terminal      string          `db:"terminal"`
	AirportID     string          `db:"airport_id"`
	Date          string          `db:"date"`
	Time          string          `db:"time"`
	Guests        int             `db:"guests"`
	PricePerGuest decimal.Decimal `db:"price_per_guest"`
	Total         decimal.Decimal `db:"total"`
	Currency      string          `db:"currency"`
	FirstName     string          `db:"first_name"`
	LastName      string          `db:"last_name"`
	Email         string          `db:"email"`
	Phone         string          `db:"phone"`
	Status        string          `db:"status"`
	model.Metadata
}
