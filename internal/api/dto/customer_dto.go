package dto

import "github.com/spec-kit/commerce-api/internal/domain"

// CustomerDTO is the transport representation of a customer.
type CustomerDTO struct {
	CustomerID   string `json:"customerId"`
	CompanyName  string `json:"companyName"`
	ContactName  string `json:"contactName"`
	ContactTitle string `json:"contactTitle"`
	Address      string `json:"address"`
	City         string `json:"city"`
	Region       string `json:"region"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Fax          string `json:"fax"`
}

// CustomerToEntity maps a DTO onto the domain model.
func CustomerToEntity(d CustomerDTO) *domain.Customer {
	return &domain.Customer{
		CustomerID:   d.CustomerID,
		CompanyName:  d.CompanyName,
		ContactName:  d.ContactName,
		ContactTitle: d.ContactTitle,
		Address:      d.Address,
		City:         d.City,
		Region:       d.Region,
		PostalCode:   d.PostalCode,
		Country:      d.Country,
		Phone:        d.Phone,
		Fax:          d.Fax,
	}
}

// CustomerFromEntity maps the domain model back to its DTO.
func CustomerFromEntity(c *domain.Customer) CustomerDTO {
	return CustomerDTO{
		CustomerID:   c.CustomerID,
		CompanyName:  c.CompanyName,
		ContactName:  c.ContactName,
		ContactTitle: c.ContactTitle,
		Address:      c.Address,
		City:         c.City,
		Region:       c.Region,
		PostalCode:   c.PostalCode,
		Country:      c.Country,
		Phone:        c.Phone,
		Fax:          c.Fax,
	}
}
