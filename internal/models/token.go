package models

import "github.com/google/uuid"

// LoginResponse is returned by a successful login
type LoginResponse struct {
	User      PublicUser `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int        `json:"expiresIn"`
}

// TenantRegistration is returned after a tenant and its first admin were created
type TenantRegistration struct {
	TenantID  uuid.UUID  `json:"tenantId"`
	Subdomain string     `json:"subdomain"`
	AdminUser PublicUser `json:"adminUser"`
}

// TenantSummary is the tenant block embedded in the current-user response
type TenantSummary struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Subdomain        string    `json:"subdomain"`
	SubscriptionPlan string    `json:"subscriptionPlan"`
	MaxUsers         int       `json:"maxUsers"`
	MaxProjects      int       `json:"maxProjects"`
}

// CurrentUser is the authenticated caller together with its tenant
type CurrentUser struct {
	ID       uuid.UUID     `json:"id"`
	Email    string        `json:"email"`
	FullName string        `json:"fullName"`
	Role     string        `json:"role"`
	IsActive bool          `json:"isActive"`
	Tenant   TenantSummary `json:"tenant"`
}
