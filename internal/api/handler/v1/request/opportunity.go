package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/shopspring/decimal"

	"github.com/oportuna/oportuna-api/internal/domain"
)

type CreateOpportunityRequest struct {
	UserID      uint            `json:"user_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Vacancies   int             `json:"vacancies"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Address     string          `json:"address"`
}

func (req *CreateOpportunityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Vacancies, validation.Required, validation.Min(1), validation.Max(domain.MaxVacancies)),
		validation.Field(&req.Address, validation.Required, validation.Length(2, 200)),
	)
}

func (req *CreateOpportunityRequest) ToDomain() domain.Opportunity {
	return domain.Opportunity{
		UserID:      req.UserID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Vacancies:   req.Vacancies,
		Category:    req.Category,
		Location:    req.Location,
		Address:     req.Address,
	}
}

type UpdateOpportunityRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Vacancies   int             `json:"vacancies"`
	IsActive    bool            `json:"is_active"`
	Category    string          `json:"category"`
	Location    string          `json:"location"`
	Address     string          `json:"address"`
}

func (req *UpdateOpportunityRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Vacancies, validation.Required, validation.Min(1), validation.Max(domain.MaxVacancies)),
		validation.Field(&req.Address, validation.Required, validation.Length(2, 200)),
	)
}

func (req *UpdateOpportunityRequest) ToDomain() domain.Opportunity {
	return domain.Opportunity{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Vacancies:   req.Vacancies,
		IsActive:    req.IsActive,
		Category:    req.Category,
		Location:    req.Location,
		Address:     req.Address,
	}
}
