package dto

import (
	"villadesk/internal/domains/seo/model"
	"villadesk/shared"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateSeoRequest struct {
	PageKey      string `json:"page_key"      validate:"required,max=150"`
	Title        string `json:"title"         validate:"required,max=200"`
	Description  string `json:"description"   validate:"omitempty,max=500"`
	Keywords     string `json:"keywords"      validate:"omitempty,max=500"`
	CanonicalURL string `json:"canonical_url" validate:"omitempty,url,max=300"`
	OgImageURL   string `json:"og_image_url"  validate:"omitempty,url,max=300"`
}

func (c *CreateSeoRequest) ToModel(user string) model.Seo {
	return model.Seo{
		ID:           uuid.NewString(),
		PageKey:      c.PageKey,
		Title:        c.Title,
		Description:  c.Description,
		Keywords:     c.Keywords,
		CanonicalURL: c.CanonicalURL,
		OgImageURL:   c.OgImageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateSeoRequest struct {
	Title        string `db:"title"         json:"title"         validate:"omitempty,max=200"`
	Description  string `db:"description"   json:"description"   validate:"omitempty,max=500"`
	Keywords     string `db:"keywords"      json:"keywords"      validate:"omitempty,max=500"`
	CanonicalURL string `db:"canonical_url" json:"canonical_url" validate:"omitempty,url,max=300"`
	OgImageURL   string `db:"og_image_url"  json:"og_image_url"  validate:"omitempty,url,max=300"`
}

type SeoResponse struct {
	ID           string `json:"id"`
	PageKey      string `json:"page_key"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Keywords     string `json:"keywords"`
	CanonicalURL string `json:"canonical_url"`
	OgImageURL   string `json:"og_image_url"`
	gDto.Metadata
}

func (r *SeoResponse) FromModel(model model.Seo) {
	r.ID = model.ID
	r.PageKey = model.PageKey
	r.Title = model.Title
	r.Description = model.Description
	r.Keywords = model.Keywords
	r.CanonicalURL = model.CanonicalURL
	r.OgImageURL = model.OgImageURL
	r.Metadata.FromModel(model.Metadata)
}

type GetSeoResponse struct {
	Pages     []SeoResponse `json:"pages"`
	TotalPage int           `json:"total_page"`
	TotalData int           `json:"total_data"`
}

func (r *GetSeoResponse) FromModels(models []model.Seo, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Pages = make([]SeoResponse, len(models))
	for i, mod := range models {
		r.Pages[i].FromModel(mod)
	}
}
