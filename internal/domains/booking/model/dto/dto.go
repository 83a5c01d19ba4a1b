package dto

import (
	"time"

	"loungepass/internal/domains/booking/model"
	draftModel "loungepass/internal/domains/draft/model"
	gDto "loungepass/shared/dto"
	gModel "loungepass/shared/model"
	"loungepass/shared/timezone"

	"github.com/google/uuid"
)

type FinalizeRequest struct {
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name"  validate:"required,max=100"`
	Email     string `json:"email"      validate:"required,email,max=255"`
	Phone     string `json:"phone"      validate:"required,max=20"`
}

// ToModel stamps a confirmed draft into a booking row.
func (f *FinalizeRequest) ToModel(draft draftModel.Draft, reference string) model.Booking {
	return model.Booking{
		ID:            uuid.NewString(),
		Reference:     reference,
		SessionID:     draft.SessionID,
		LoungeID:      draft.LoungeID,
		LoungeName:    draft.LoungeName,
		Terminal:      draft.Terminal,
		AirportID:     draft.AirportID,
		Date:          draft.Date,
		Time:          draft.Time,
		Guests:        draft.Guests,
		PricePerGuest: draft.PricePerGuest,
		Total:         draft.Total,
		Currency:      draft.Currency,
		FirstName:     f.FirstName,
		LastName:      f.LastName,
		Email:         f.Email,
		Phone:         f.Phone,
		Status:        model.StatusConfirmed,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  draft.SessionID,
			ModifiedBy: draft.SessionID,
		},
	}
}

type BookingResponse struct {
	ID            string `json:"id"`
	Reference     string `json:"reference"`
	LoungeID      string `json:"lounge_id"`
	LoungeName    string `json:"lounge_name"`
	Terminal      string `json:"terminal"`
	AirportID     string `json:"airport_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Guests        int    `json:"guests"`
	PricePerGuest string `json:"price_per_guest"`
	Total         string `json:"total"`
	Currency      string `json:"currency"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Status        string `json:"status"`
	PassToken     string `json:"pass_token,omitempty"`
	QRURL         string `json:"qr_url,omitempty"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID
	r.Reference = booking.Reference
	r.LoungeID = booking.LoungeID
	r.LoungeName = booking.LoungeName
	r.Terminal = booking.Terminal
	r.AirportID = booking.AirportID
	r.Date = booking.Date
	r.Time = booking.Time
	r.Guests = booking.Guests
	r.PricePerGuest = booking.PricePerGuest.StringFixed(2)
	r.Total = booking.Total.StringFixed(2)
	r.Currency = booking.Currency
	r.FirstName = booking.FirstName
	r.LastName = booking.LastName
	r.Status = booking.Status
}

type VerifyPassResponse struct {
	Valid      bool   `json:"valid"`
	Reference  string `json:"reference"`
	LoungeName string `json:"lounge_name"`
	Date       string `json:"date"`
	Guests     int    `json:"guests"`
}

// BookingConfirmedEvent is published to Kafka after a booking row lands.
type BookingConfirmedEvent struct {
	Reference  string    `json:"reference"`
	SessionID  string    `json:"session_id"`
	LoungeID   string    `json:"lounge_id"`
	AirportID  string    `json:"airport_id"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Guests     int       `json:"guests"`
	Total      string    `json:"total"`
	Currency   string    `json:"currency"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewBookingConfirmedEvent(booking model.Booking) BookingConfirmedEvent {
	return BookingConfirmedEvent{
		Reference:  booking.Reference,
		SessionID:  booking.SessionID,
		LoungeID:   booking.LoungeID,
		AirportID:  booking.AirportID,
		Date:       booking.Date,
		Time:       booking.Time,
		Guests:     booking.Guests,
		Total:      booking.Total.StringFixed(2),
		Currency:   booking.Currency,
		OccurredAt: timezone.Now(),
	}
}

// ReferenceFilter matches a booking by its public reference.
func ReferenceFilter(reference string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReference,
				Value:    reference,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
