package entities

import (
	"strings"
	"time"
)

type Role string

const (
	RoleClient Role = "Client"
	RoleAgent  Role = "Agent"
	RoleAdmin  Role = "Admin"
)

// ParseRole accepts role literals case-insensitively ("admin" == "Admin").
func ParseRole(v string) (Role, bool) {
	v = strings.TrimSpace(v)
	for _, r := range []Role{RoleClient, RoleAgent, RoleAdmin} {
		if strings.EqualFold(string(r), v) {
			return r, true
		}
	}
	return "", false
}

// Principal is the authenticated caller of an operation.
type Principal struct {
	ID   string
	Role Role
}

// UserStatus gates access to the platform.
//
// Email verification is tracked separately (User.IsEmailVerified); there is a single
// waiting state for admin approval. Older records written with the literal "PENDING"
// are read as UserStatusPendingApproval.
type UserStatus string

const (
	UserStatusPendingApproval UserStatus = "Pending Approval"
	UserStatusActive          UserStatus = "Active"
	UserStatusSuspended       UserStatus = "Suspended"
	UserStatusRejected        UserStatus = "Rejected"
)

const legacyPendingStatus = "PENDING"

func ParseUserStatus(v string) (UserStatus, bool) {
	v = strings.TrimSpace(v)
	if v == legacyPendingStatus {
		return UserStatusPendingApproval, true
	}
	for _, s := range []UserStatus{UserStatusPendingApproval, UserStatusActive, UserStatusSuspended, UserStatusRejected} {
		if strings.EqualFold(string(s), v) {
			return s, true
		}
	}
	return "", false
}

// User is an account of any role. Credentials are owned by the auth service.
type User struct {
	ID              string     `json:"id"`
	FullName        string     `json:"full_name"`
	Email           string     `json:"email"`
	Role            Role       `json:"role"`
	Status          UserStatus `json:"status"`
	IsEmailVerified bool       `json:"is_email_verified"`
	CreatedAt       time.Time  `json:"created_at"`
}

// Client is the company profile attached to a user with role Client.
//
// TechnicalVault is stored encrypted and only decrypted on explicit vault reads.
type Client struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	CompanyName    string    `json:"company_name"`
	Industry       string    `json:"industry,omitempty"`
	WebsiteURL     string    `json:"website_url,omitempty"`
	TechnicalVault string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// ClientProfileUpdate holds the fields a client may change on its own profile.
type ClientProfileUpdate struct {
	Industry       string
	WebsiteURL     string
	TechnicalVault *string
}

type ServiceCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
