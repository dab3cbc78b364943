package model

import (
	"villadesk/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "villas"
	EntityName = "villa"

	FieldID           = "id"
	FieldName         = "name"
	FieldSlug         = "slug"
	FieldRegionID     = "region_id"
	FieldDescription  = "description"
	FieldBedrooms     = "bedrooms"
	FieldBathrooms    = "bathrooms"
	FieldMaxGuests    = "max_guests"
	FieldMinimumStay  = "minimum_stay"
	FieldCheckInTime  = "check_in_time"
	FieldCheckOutTime = "check_out_time"
	FieldActive       = "active"
	FieldFeatured     = "featured"
	FieldTags         = "tags"
)

type Villa struct {
	ID           string         `db:"id"`
	Name         string         `db:"name"`
	Slug         string         `db:"slug"`
	RegionID     string         `db:"region_id"`
	Description  string         `db:"description"`
	Bedrooms     int            `db:"bedrooms"`
	Bathrooms    int            `db:"bathrooms"`
	MaxGuests    int            `db:"max_guests"`
	MinimumStay  int            `db:"minimum_stay"`
	CheckInTime  string         `db:"check_in_time"`
	CheckOutTime string         `db:"check_out_time"`
	Active       bool           `db:"active"`
	Featured     bool           `db:"featured"`
	Tags         pq.StringArray `db:"tags"`
	model.Metadata
}
