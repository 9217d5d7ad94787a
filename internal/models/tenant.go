package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	TenantStatusActive    = "active"
	TenantStatusSuspended = "suspended"
)

const (
	PlanFree       = "free"
	PlanPro        = "pro"
	PlanEnterprise = "enterprise"
)

// PlanLimits are the quotas a subscription plan grants a tenant
type PlanLimits struct {
	MaxUsers    int `json:"maxUsers"`
	MaxProjects int `json:"maxProjects"`
}

var planLimits = map[string]PlanLimits{
	PlanFree:       {MaxUsers: 5, MaxProjects: 3},
	PlanPro:        {MaxUsers: 25, MaxProjects: 15},
	PlanEnterprise: {MaxUsers: 100, MaxProjects: 50},
}

// LimitsForPlan returns the quotas for plan, falling back to the free tier.
func LimitsForPlan(plan string) PlanLimits {
	if limits, ok := planLimits[plan]; ok {
		return limits
	}
	return planLimits[PlanFree]
}

type Tenant struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Name             string    `json:"name" db:"name"`
	Subdomain        string    `json:"subdomain" db:"subdomain"`
	Status           string    `json:"status" db:"status"`
	SubscriptionPlan string    `json:"subscriptionPlan" db:"subscription_plan"`
	MaxUsers         int       `json:"maxUsers" db:"max_users"`
	MaxProjects      int       `json:"maxProjects" db:"max_projects"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time `json:"updatedAt" db:"updated_at"`
}

func (t *Tenant) IsActive() bool {
	return t.Status == TenantStatusActive
}
