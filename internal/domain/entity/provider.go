package entity

import (
	"time"

	"github.com/google/uuid"
)

// Provider is a mechanic shop listed in the directory.
type Provider struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID // Operator account allowed to drive appointment status
	Name         string
	Address      string
	Location     GeoPoint
	Rating       float64 // 0-5, maintained by the review subsystem
	Services     []ServiceType
	WorkingHours WorkingHours
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Offers reports whether the provider lists the given service type.
func (p *Provider) Offers(service ServiceType) bool {
	for _, s := range p.Services {
		if s == service {
			return true
		}
	}

	return false
}

// ServiceNames returns the service types as plain strings.
func (p *Provider) ServiceNames() []string {
	names := make([]string, 0, len(p.Services))
	for _, s := range p.Services {
		names = append(names, string(s))
	}

	return names
}
