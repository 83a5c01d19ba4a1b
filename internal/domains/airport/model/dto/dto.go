package dto

import (
	"loungepass/internal/domains/airport/model"
	"loungepass/shared"
	gDto "loungepass/shared/dto"
)

type AirportResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Code    string `json:"code"`
	City    string `json:"city"`
	Country string `json:"country"`
	gDto.Metadata
}

func (a *AirportResponse) FromModel(model model.Airport) {
	a.ID = model.ID
	a.Name = model.Name
	a.Code = model.Code
	a.City = model.City
	a.Country = model.Country
	a.Metadata.FromModel(model.Metadata)
}

type GetAirportsResponse struct {
	Airports  []AirportResponse `json:"airports"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (a *GetAirportsResponse) FromModels(models []model.Airport, totalData, limit int) {
	a.TotalData = totalData
	a.TotalPage = shared.CalculateTotalPage(totalData, limit)

	a.Airports = make([]AirportResponse, len(models))
	for i, mod := range models {
		a.Airports[i].FromModel(mod)
	}
}

// SearchFilter matches the free-text query against name, code and city, the
// same fields the airport picker searches on.
func SearchFilter(query string) gDto.FilterGroup {
	if query == "" {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{
				ArgName:  "q_name",
				Field:    model.FieldName,
				Value:    query,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_code",
				Field:    model.FieldCode,
				Value:    query,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "q_city",
				Field:    model.FieldCity,
				Value:    query,
				Operator: gDto.FilterOperatorLike,
				Table:    model.TableName,
			},
		},
	}
}
