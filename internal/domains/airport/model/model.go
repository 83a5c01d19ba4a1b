package model

import "loungepass/shared/model"

const (
	TableName  = "airports"
	EntityName = "airport"

	FieldID      = "id"
	FieldName    = "name"
	FieldCode    = "code"
	FieldCity    = "city"
	FieldCountry = "country"
)

type Airport struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Code    string `db:"code"`
	City    string `db:"city"`
	Country string `db:"country"`
	model.Metadata
}
