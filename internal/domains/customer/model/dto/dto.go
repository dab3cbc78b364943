package dto

import (
	"villadesk/internal/domains/customer/model"
	"villadesk/shared"
	gDto "villadesk/shared/dto"
	gModel "villadesk/shared/model"
	"villadesk/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	FullName string `json:"full_name" validate:"required,max=150"`
	Email    string `json:"email"     validate:"omitempty,email,max=150"`
	Phone    string `json:"phone"     validate:"omitempty,max=30"`
	Country  string `json:"country"   validate:"omitempty,max=100"`
	Note     string `json:"note"      validate:"omitempty"`
}

func (c *CreateCustomerRequest) ToModel(user string) model.Customer {
	return model.Customer{
		ID:       uuid.NewString(),
		FullName: c.FullName,
		Email:    c.Email,
		Phone:    c.Phone,
		Country:  c.Country,
		Note:     c.Note,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,max=150"`
	Email    string `db:"email"     json:"email"     validate:"omitempty,email,max=150"`
	Phone    string `db:"phone"     json:"phone"     validate:"omitempty,max=30"`
	Country  string `db:"country"   json:"country"   validate:"omitempty,max=100"`
	Note     string `db:"note"      json:"note"      validate:"omitempty"`
}

type CustomerResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Country  string `json:"country"`
	Note     string `json:"note"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.FullName = model.FullName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Country = model.Country
	r.Note = model.Note
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
