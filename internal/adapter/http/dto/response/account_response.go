package response

import (
	"time"

	"agency_ops/internal/domain/entities"
	"agency_ops/internal/usecase"
)

type UserResponse struct {
	ID              string    `json:"id"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	IsEmailVerified bool      `json:"is_email_verified"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:              u.ID,
		FullName:        u.FullName,
		Email:           u.Email,
		Role:            string(u.Role),
		Status:          string(u.Status),
		IsEmailVerified: u.IsEmailVerified,
		CreatedAt:       u.CreatedAt,
	}
}

func FromUsers(in []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(in))
	for _, u := range in {
		out = append(out, FromUser(u))
	}
	return out
}

type NotificationResponse struct {
	Attempted bool   `json:"attempted"`
	Delivered bool   `json:"delivered"`
	Error     string `json:"error,omitempty"`
}

// UserStatusChangeResponse reports the approval email outcome next to the user; a
// failed email does not undo the status change.
type UserStatusChangeResponse struct {
	User         UserResponse         `json:"user"`
	Notification NotificationResponse `json:"notification"`
}

func FromUserStatusChange(c usecase.UserStatusChange) UserStatusChangeResponse {
	return UserStatusChangeResponse{
		User: FromUser(c.User),
		Notification: NotificationResponse{
			Attempted: c.NotificationAttempted,
			Delivered: c.NotificationDelivered,
			Error:     c.NotificationError,
		},
	}
}

type ClientProfileResponse struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry"`
	WebsiteURL     string    `json:"website_url"`
	TechnicalVault string    `json:"technical_vault"`
	CreatedAt      time.Time `json:"created_at"`
}

func FromClientProfile(p usecase.ClientProfile) ClientProfileResponse {
	return ClientProfileResponse{
		ID:             p.Client.ID,
		UserID:         p.Client.UserID,
		CompanyName:    p.Client.CompanyName,
		Industry:       p.Client.Industry,
		WebsiteURL:     p.Client.WebsiteURL,
		TechnicalVault: p.TechnicalVault,
		CreatedAt:      p.Client.CreatedAt,
	}
}

type CategoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromCategory(c entities.ServiceCategory) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name, Description: c.Description, CreatedAt: c.CreatedAt}
}

func FromCategories(in []entities.ServiceCategory) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(in))
	for _, c := range in {
		out = append(out, FromCategory(c))
	}
	return out
}
