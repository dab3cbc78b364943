package dto

import (
	"villadesk/internal/domains/villa/model"
	"villadesk/shared"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type CreateVillaRequest struct {
	Name         string   `json:"name"           validate:"required,max=150"`
	Slug         string   `json:"slug"           validate:"required,max=150"`
	RegionID     string   `json:"region_id"      validate:"required,uuid"`
	Description  string   `json:"description"    validate:"omitempty"`
	Bedrooms     int      `json:"bedrooms"       validate:"required,gte=1"`
	Bathrooms    int      `json:"bathrooms"      validate:"required,gte=1"`
	MaxGuests    int      `json:"max_guests"     validate:"required,gte=1"`
	MinimumStay  int      `json:"minimum_stay"   validate:"omitempty,gte=1"`
	CheckInTime  string   `json:"check_in_time"  validate:"required,timeonly"`
	CheckOutTime string   `json:"check_out_time" validate:"required,timeonly"`
	Active       *bool    `json:"active"         validate:"omitempty"`
	Featured     bool     `json:"featured"       validate:"omitempty"`
	Tags         []string `json:"tags"           validate:"omitempty,dive,uuid"`
}

func (c *CreateVillaRequest) ToModel(user string) model.Villa {
	minimumStay := c.MinimumStay
	if minimumStay == 0 {
		minimumStay = 1
	}

	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Villa{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Slug:         c.Slug,
		RegionID:     c.RegionID,
		Description:  c.Description,
		Bedrooms:     c.Bedrooms,
		Bathrooms:    c.Bathrooms,
		MaxGuests:    c.MaxGuests,
		MinimumStay:  minimumStay,
		CheckInTime:  c.CheckInTime,
		CheckOutTime: c.CheckOutTime,
		Active:       active,
		Featured:     c.Featured,
		Tags:         pq.StringArray(c.Tags),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVillaRequest struct {
	Name         string   `db:"name"           json:"name"           validate:"omitempty,max=150"`
	Slug         string   `db:"slug"           json:"slug"           validate:"omitempty,max=150"`
	RegionID     string   `db:"region_id"      json:"region_id"      validate:"omitempty,uuid"`
	Description  string   `db:"description"    json:"description"    validate:"omitempty"`
	Bedrooms     int      `db:"bedrooms"       json:"bedrooms"       validate:"omitempty,gte=1"`
	Bathrooms    int      `db:"bathrooms"      json:"bathrooms"      validate:"omitempty,gte=1"`
	MaxGuests    int      `db:"max_guests"     json:"max_guests"     validate:"omitempty,gte=1"`
	MinimumStay  int      `db:"minimum_stay"   json:"minimum_stay"   validate:"omitempty,gte=1"`
	CheckInTime  string   `db:"check_in_time"  json:"check_in_time"  validate:"omitempty,timeonly"`
	CheckOutTime string   `db:"check_out_time" json:"check_out_time" validate:"omitempty,timeonly"`
	Active       *bool    `db:"active"         json:"active"         validate:"omitempty"`
	Featured     *bool    `db:"featured"       json:"featured"       validate:"omitempty"`
	Tags         []string `json:"tags"          validate:"omitempty,dive,uuid"`
}

type VillaResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Slug         string   `json:"slug"`
	RegionID     string   `json:"region_id"`
	Description  string   `json:"description"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	MaxGuests    int      `json:"max_guests"`
	MinimumStay  int      `json:"minimum_stay"`
	CheckInTime  string   `json:"check_in_time"`
	CheckOutTime string   `json:"check_out_time"`
	Active       bool     `json:"active"`
	Featured     bool     `json:"featured"`
	Tags         []string `json:"tags"`
	gDto.Metadata
}

func (r *VillaResponse) FromModel(model model.Villa) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.RegionID = model.RegionID
	r.Description = model.Description
	r.Bedrooms = model.Bedrooms
	r.Bathrooms = model.Bathrooms
	r.MaxGuests = model.MaxGuests
	r.MinimumStay = model.MinimumStay
	r.CheckInTime = model.CheckInTime
	r.CheckOutTime = model.CheckOutTime
	r.Active = model.Active
	r.Featured = model.Featured
	r.Tags = model.Tags
	r.Metadata.FromModel(model.Metadata)
}

type GetVillasResponse struct {
	Villas    []VillaResponse `json:"villas"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetVillasResponse) FromModels(models []model.Villa, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Villas = make([]VillaResponse, len(models))
	for i, mod := range models {
		r.Villas[i].FromModel(mod)
	}
}
