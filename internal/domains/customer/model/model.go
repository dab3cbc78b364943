package model

import (
	"villadesk/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldCountry  = "country"
	FieldNote     = "note"
)

type Customer struct {
	ID       string `db:"id"`
	FullName string `db:"full_name"`
	Email    string `db:"email"`
	Phone    string `db:"phone"`
	Country  string `db:"country"`
	Note     string `db:"note"`
	model.Metadata
}
