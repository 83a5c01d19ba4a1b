package model

import (
	"loungepass/shared/model"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

const (
	TableName  = "lounges"
	EntityName = "lounge"

	FieldID            = "id"
	FieldAirportID     = "airport_id"
	FieldName          = "name"
	FieldTerminal      = "terminal"
	FieldDescription   = "description"
	FieldImages        = "images"
	FieldAmenities     = "amenities"
	FieldOpenTime      = "open_time"
	FieldCloseTime     = "close_time"
	FieldPricePerGuest = "price_per_guest"
	FieldCurrency      = "currency"
	FieldRating        = "rating"
)

type Lounge struct {
	ID            string          `db:"id"`
	AirportID     string          `db:"airport_id"`
	Name          string          `db:"name"`
	Terminal      string          `db:"terminal"`
	Description   string          `db:"description"`
	Images        pq.StringArray  `db:"images"`
	Amenities     pq.StringArray  `db:"amenities"`
	OpenTime      string          `db:"open_time"`
	CloseTime     string          `db:"close_time"`
	PricePerGuest decimal.Decimal `db:"price_per_guest"`
	Currency      string          `db:"currency"`
	Rating        float64         `db:"rating"`
	model.Metadata
}
