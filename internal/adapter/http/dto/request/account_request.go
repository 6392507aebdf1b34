package request

import "agency_ops/internal/usecase"

type UpdateUserStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateClientProfileRequest struct {
	Industry       *string `json:"industry"`
	WebsiteURL     *string `json:"website_url"`
	TechnicalVault *string `json:"technical_vault"`
}

func (r UpdateClientProfileRequest) ToInput() usecase.ClientProfileInput {
	return usecase.ClientProfileInput{
		Industry:       r.Industry,
		WebsiteURL:     r.WebsiteURL,
		TechnicalVault: r.TechnicalVault,
	}
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}
