package dto

import (
	"time"

	"github.com/Shrey-Singhal/Internet-Banking-App/internal/core/domain"
)

// CustomerResponse defines the profile data returned for a customer.
type CustomerResponse struct {
	CustomerID int    `json:"customerID"`
	Name       string `json:"name"`
	TFN        string `json:"tfn,omitempty"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostCode   string `json:"postCode,omitempty"`
	Mobile     string `json:"mobile,omitempty"`
}

// ToCustomerResponse converts a domain.Customer to CustomerResponse.
func ToCustomerResponse(c *domain.Customer) CustomerResponse {
	return CustomerResponse{
		CustomerID: c.CustomerID,
		Name:       c.Name,
		TFN:        c.TFN,
		Address:    c.Address,
		City:       c.City,
		State:      c.State,
		PostCode:   c.PostCode,
		Mobile:     c.Mobile,
	}
}

// UpdateProfileRequest defines the editable profile fields. Pointers
// distinguish "not provided" from explicit empty values. Mobile must match
// the 04XX XXX XXX format enforced by the au_mobile validator.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=50"`
	Address  *string `json:"address" binding:"omitempty,max=50"`
	City     *string `json:"city" binding:"omitempty,max=40"`
	State    *string `json:"state" binding:"omitempty,max=3"`
	PostCode *string `json:"postCode" binding:"omitempty,max=4"`
	TFN      *string `json:"tfn" binding:"omitempty,max=11"`
	Mobile   *string `json:"mobile" binding:"omitempty,au_mobile"`
}

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	LoginID  string `json:"loginID" binding:"required,len=8,numeric"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expiresAt"`
	Customer  CustomerResponse `json:"customer"`
}
