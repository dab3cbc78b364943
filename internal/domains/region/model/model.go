package model

import (
	"villadesk/shared/model"
)

const (
	TableName  = "regions"
	EntityName = "region"

	FieldID          = "id"
	FieldName        = "name"
	FieldSlug        = "slug"
	FieldDescription = "description"
)

type Region struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Description string `db:"description"`
	model.Metadata
}
