package dto

import (
	"loungepass/internal/domains/lounge/model"
	"loungepass/shared"
	gDto "loungepass/shared/dto"
	gModel "loungepass/shared/model"
	"loungepass/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type CreateLoungeRequest struct {
	AirportID     string   `json:"airport_id"      validate:"required"`
	Name          string   `json:"name"            validate:"required,max=100"`
	Terminal      string   `json:"terminal"        validate:"omitempty,max=50"`
	Description   string   `json:"description"     validate:"omitempty"`
	Amenities     []string `json:"amenities"       validate:"omitempty"`
	OpenTime      string   `json:"open_time"       validate:"required,timehhmm"`
	CloseTime     string   `json:"close_time"      validate:"required,timehhmm"`
	PricePerGuest string   `json:"price_per_guest" validate:"required"`
	Currency      string   `json:"currency"        validate:"required,len=3"`
	Rating        float64  `json:"rating"          validate:"omitempty,gte=0,lte=5"`
}

func (c *CreateLoungeRequest) ToModel(user string, price decimal.Decimal) model.Lounge {
	return model.Lounge{
		ID:            uuid.NewString(),
		AirportID:     c.AirportID,
		Name:          c.Name,
		Terminal:      c.Terminal,
		Description:   c.Description,
		Images:        pq.StringArray{},
		Amenities:     pq.StringArray(c.Amenities),
		OpenTime:      c.OpenTime,
		CloseTime:     c.CloseTime,
		PricePerGuest: price,
		Currency:      c.Currency,
		Rating:        c.Rating,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateLoungeRequest struct {
	Name        string   `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Terminal    string   `db:"terminal"    json:"terminal"    validate:"omitempty,max=50"`
	Description string   `db:"description" json:"description" validate:"omitempty"`
	Amenities   []string `db:"amenities"   json:"amenities"   validate:"omitempty"`
	OpenTime    string   `db:"open_time"   json:"open_time"   validate:"omitempty,timehhmm"`
	CloseTime   string   `db:"close_time"  json:"close_time"  validate:"omitempty,timehhmm"`
	Currency    string   `db:"currency"    json:"currency"    validate:"omitempty,len=3"`
	Rating      *float64 `db:"rating"      json:"rating"      validate:"omitempty,gte=0,lte=5"`
}

type LoungeResponse struct {
	ID            string   `json:"id"`
	AirportID     string   `json:"airport_id"`
	Name          string   `json:"name"`
	Terminal      string   `json:"terminal"`
	Description   string   `json:"description"`
	Images        []string `json:"images"`
	Amenities     []string `json:"amenities"`
	OpenTime      string   `json:"open_time"`
	CloseTime     string   `json:"close_time"`
	PricePerGuest string   `json:"price_per_guest"`
	Currency      string   `json:"currency"`
	Rating        float64  `json:"rating"`
	gDto.Metadata
}

func (r *LoungeResponse) FromModel(model model.Lounge) {
	r.ID = model.ID
	r.AirportID = model.AirportID
	r.Name = model.Name
	r.Terminal = model.Terminal
	r.Description = model.Description
	r.Images = model.Images
	r.Amenities = model.Amenities
	r.OpenTime = model.OpenTime
	r.CloseTime = model.CloseTime
	r.PricePerGuest = model.PricePerGuest.StringFixed(2)
	r.Currency = model.Currency
	r.Rating = model.Rating
	r.Metadata.FromModel(model.Metadata)
}

type GetLoungesResponse struct {
	Lounges   []LoungeResponse `json:"lounges"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetLoungesResponse) FromModels(models []model.Lounge, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Lounges = make([]LoungeResponse, len(models))
	for i, m := range models {
		r.Lounges[i].FromModel(m)
	}
}

type UploadImageRequest struct {
	Image string `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=2"`
}

type UploadImageResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadImageResponse) FromModel(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type DeleteImageRequest struct {
	ImageURL string `json:"image_url" validate:"required,url"`
}

// ListFilter narrows lounges by airport and optionally terminal.
func ListFilter(airportID, terminal string) gDto.FilterGroup {
	filters := []any{
		gDto.Filter{
			Field:    model.FieldAirportID,
			Value:    airportID,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		},
	}

	if terminal != "" {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldTerminal,
			Value:    terminal,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}
}
