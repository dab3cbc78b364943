package model

import (
	"villadesk/shared/model"
)

const (
	TableName  = "tags"
	EntityName = "tag"

	FieldID   = "id"
	FieldName = "name"
	FieldSlug = "slug"
)

type Tag struct {
	ID   string `db:"id"`
	Name string `db:"name"`
	Slug string `db:"slug"`
	model.Metadata
}
