package dto

import (
	"loungepass/internal/domains/draft/model"
	loungeModel "loungepass/internal/domains/lounge/model"
	"loungepass/shared/timezone"

	"github.com/google/uuid"
)

type StartDraftRequest struct {
	LoungeID string `json:"lounge_id" validate:"required,uuid"`
}

type UpdateGuestsRequest struct {
	Guests int `json:"guests" validate:"required,min=1,max=10"`
}

type UpdateScheduleRequest struct {
	Date string `json:"date" validate:"required,dateymd"`
	Time string `json:"time" validate:"required,timehhmm"`
}

type DraftResponse struct {
	ID            string `json:"id"`
	LoungeID      string `json:"lounge_id"`
	LoungeName    string `json:"lounge_name"`
	Terminal      string `json:"terminal"`
	AirportID     string `json:"airport_id"`
	OpenTime      string `json:"open_time"`
	CloseTime     string `json:"close_time"`
	Guests        int    `json:"guests"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	PricePerGuest string `json:"price_per_guest"`
	Currency      string `json:"currency"`
	Total         string `json:"total"`
	Step          string `json:"step"`
}

func (r *DraftResponse) FromModel(draft model.Draft) {
	r.ID = draft.ID
	r.LoungeID = draft.LoungeID
	r.LoungeName = draft.LoungeName
	r.Terminal = draft.Terminal
	r.AirportID = draft.AirportID
	r.OpenTime = draft.OpenTime
	r.CloseTime = draft.CloseTime
	r.Guests = draft.Guests
	r.Date = draft.Date
	r.Time = draft.Time
	r.PricePerGuest = draft.PricePerGuest.StringFixed(2)
	r.Currency = draft.Currency
	r.Total = draft.Total.StringFixed(2)
	r.Step = string(draft.Step)
}

// NewDraft seeds a draft from the lounge snapshot. Date and time start
// unset so the schedule step always asks for them explicitly.
func NewDraft(sessionID string, lounge loungeModel.Lounge) model.Draft {
	draft := model.Draft{
		ID:            uuid.NewString(),
		SessionID:     sessionID,
		LoungeID:      lounge.ID,
		LoungeName:    lounge.Name,
		Terminal:      lounge.Terminal,
		AirportID:     lounge.AirportID,
		OpenTime:      lounge.OpenTime,
		CloseTime:     lounge.CloseTime,
		Guests:        1,
		PricePerGuest: lounge.PricePerGuest,
		Currency:      lounge.Currency,
		Step:          model.StepGuestSelection,
		CreatedAt:     timezone.Now(),
		ModifiedAt:    timezone.Now(),
	}
	draft.RecalculateTotal()

	return draft
}
