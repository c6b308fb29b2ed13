package guest

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Guest struct {
	id         uuid.UUID
	name       Name
	nationalID NationalID
	phone      *string
	address    *string
	createdAt  time.Time
	updatedAt  time.Time
}

func NewGuest(name Name, nationalID NationalID, phone, address *string, now time.Time) *Guest {
	return &Guest{
		id:         uuid.New(),
		name:       name,
		nationalID: nationalID,
		phone:      normalizeOptional(phone),
		address:    normalizeOptional(address),
		createdAt:  now,
		updatedAt:  now,
	}
}

func ReconstructGuest(
	id uuid.UUID,
	name Name,
	nationalID NationalID,
	phone, address *string,
	createdAt, updatedAt time.Time,
) *Guest {
	return &Guest{
		id:         id,
		name:       name,
		nationalID: nationalID,
		phone:      phone,
		address:    address,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Edit replaces the guest's identity and contact details.
func (g *Guest) Edit(name Name, nationalID NationalID, phone, address *string, now time.Time) {
	g.name = name
	g.nationalID = nationalID
	g.phone = normalizeOptional(phone)
	g.address = normalizeOptional(address)
	g.updatedAt = now
}

func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func (g *Guest) ID() uuid.UUID          { return g.id }
func (g *Guest) Name() Name             { return g.name }
func (g *Guest) NationalID() NationalID { return g.nationalID }
func (g *Guest) Phone() *string         { return g.phone }
func (g *Guest) Address() *string       { return g.address }
func (g *Guest) CreatedAt() time.Time   { return g.createdAt }
func (g *Guest) UpdatedAt() time.Time   { return g.updatedAt }
