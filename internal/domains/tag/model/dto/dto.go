package dto

import (
	"villadesk/internal/domains/tag/model"
	"villadesk/shared"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name string `json:"name" validate:"required,max=100"`
	Slug string `json:"slug" validate:"required,max=100"`
}

func (c *CreateTagRequest) ToModel(user string) model.Tag {
	return model.Tag{
		ID:   uuid.NewString(),
		Name: c.Name,
		Slug: c.Slug,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateTagRequest struct {
	Name string `db:"name" json:"name" validate:"omitempty,max=100"`
	Slug string `db:"slug" json:"slug" validate:"omitempty,max=100"`
}

type TagResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	gDto.Metadata
}

func (r *TagResponse) FromModel(model model.Tag) {
	r.ID = model.ID
	r.Name = model.Name
	r.Slug = model.Slug
	r.Metadata.FromModel(model.Metadata)
}

type GetTagsResponse struct {
	Tags      []TagResponse `json:"tags"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetTagsResponse) FromModels(models []model.Tag, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tags = make([]TagResponse, len(models))
	for i, mod := range models {
		r.Tags[i].FromModel(mod)
	}
}
