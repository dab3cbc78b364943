package model

import (
	"villadesk/shared/model"
)

const (
	TableName  = "seo_metadata"
	EntityName = "seo"

	FieldID           = "id"
	FieldPageKey      = "page_key"
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldKeywords     = "keywords"
	FieldCanonicalURL = "canonical_url"
	FieldOgImageURL   = "og_image_url"
)

type Seo struct {
	ID           string `db:"id"`
	PageKey      string `db:"page_key"`
	Title        string `db:"title"`
	Description  string `db:"description"`
	Keywords     string `db:"keywords"`
	CanonicalURL string `db:"canonical_url"`
	OgImageURL   string `db:"og_image_url"`
	model.Metadata
}
