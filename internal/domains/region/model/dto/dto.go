package dto

import (
	"villadesk/internal/domains/region/model"
	"villadesk/shared"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateRegionRequest struct {
	Name        string `json:"name"        validate:"required,max=100"`
	Slug        string `json:"slug"        validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

func (c *CreateRegionRequest) ToModel(user string) model.Region {
	return model.Region{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRegionRequest struct {
	Name        string `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Slug        string `db:"slug"        json:"slug"        validate:"omitempty,max=100"`
	Description string `db:"description" json:"description" validate:"omitempty"`
}

type RegionResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	gDto.Metadata
}

func (r *RegionResponse) FromModel(model model.Region) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Description = model.Description
	r.Metadata.FromModel(model.Metadata)
}

type GetRegionsResponse struct {
	Regions   []RegionResponse `json:"regions"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRegionsResponse) FromModels(models []model.Region, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Regions = make([]RegionResponse, len(models))
	for i, mod := range models {
		r.Regions[i].FromModel(mod)
	}
}
