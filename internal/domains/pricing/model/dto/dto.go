package dto

import (
	"time"
	"villadesk/internal/domains/pricing/model"
	"villadesk/shared"
	"villadesk/shared/constant"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateSeasonalPriceRequest struct {
	VillaID      string `json:"villa_id"      validate:"required,uuid"`
	Name         string `json:"name"          validate:"required,max=100"`
	StartDate    string `json:"start_date"    validate:"required,dateonly"`
	EndDate      string `json:"end_date"      validate:"required,dateonly"`
	NightlyPrice int64  `json:"nightly_price" validate:"required,gt=0"`
	WeeklyPrice  *int64 `json:"weekly_price"  validate:"omitempty,gt=0"`
	Active       *bool  `json:"active"        validate:"omitempty"`
	Description  string `json:"description"   validate:"omitempty"`
}

func (c *CreateSeasonalPriceRequest) ToModel(user string) (model.SeasonalPrice, error) {
	startDate, err := time.Parse(constant.DateOnlyFormat, c.StartDate)
	if err != nil {
		return model.SeasonalPrice{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyFormat, c.EndDate)
	if err != nil {
		return model.SeasonalPrice{}, err
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.SeasonalPrice{
		ID:           uuid.NewString(),
		VillaID:      c.VillaID,
		Name:         c.Name,
		StartDate:    startDate,
		EndDate:      endDate,
		NightlyPrice: c.NightlyPrice,
		WeeklyPrice:  c.WeeklyPrice,
		Active:       active,
		Description:  c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateSeasonalPriceRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	NightlyPrice int64  `db:"nightly_price" json:"nightly_price" validate:"omitempty,gt=0"`
	WeeklyPrice  *int64 `db:"weekly_price"  json:"weekly_price"  validate:"omitempty,gt=0"`
	Active       *bool  `db:"active"        json:"active"        validate:"omitempty"`
	Description  string `db:"description"   json:"description"   validate:"omitempty"`
}

type SeasonalPriceResponse struct {
	ID           string `json:"id"`
	VillaID      string `json:"villa_id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	NightlyPrice int64  `json:"nightly_price"`
	WeeklyPrice  *int64 `json:"weekly_price,omitempty"`
	Active       bool   `json:"active"`
	Description  string `json:"description"`
	gDto.Metadata
}

func (r *SeasonalPriceResponse) FromModel(model model.SeasonalPrice) {
	r.ID = model.ID
	r.VillaID = model.VillaID
	r.Name = model.Name
	r.StartDate = model.StartDate.Format(constant.DateOnlyFormat)
	r.EndDate = model.EndDate.Format(constant.DateOnlyFormat)
	r.NightlyPrice = model.NightlyPrice
	r.WeeklyPrice = model.WeeklyPrice
	r.Active = model.Active
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetSeasonalPricesResponse struct {
	SeasonalPrices []SeasonalPriceResponse `json:"seasonal_prices"`
	TotalPage      int                     `json:"total_page"`
	TotalData      int                     `json:"total_data"`
}

func (r *GetSeasonalPricesResponse) FromModels(models []model.SeasonalPrice, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SeasonalPrices = make([]SeasonalPriceResponse, len(models))
	for i, mod := range models {
		r.SeasonalPrices[i].FromModel(mod)
	}
}

type RateResponse struct {
	VillaID    string `json:"villa_id"`
	Date       string `json:"date"`
	Price      int64  `json:"price"`
	Source     string `json:"source"`
	SeasonName string `json:"season_name,omitempty"`
}

type NightRate struct {
	Date   string `json:"date"`
	Price  int64  `json:"price"`
	Source string `json:"source"`
}

type QuoteResponse struct {
	VillaID   string      `json:"villa_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Nights    []NightRate `json:"nights"`
	NightsQty int         `json:"nights_qty"`
	Total     int64       `json:"total"`
}
