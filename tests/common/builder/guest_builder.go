//go:build unit || e2e

package builder

import (
	"time"

	"mansion-pos/internal/domain/guest"
	reqdto "mansion-pos/internal/handler/dto/request"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestBuilder struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	NationalID string
	Phone      *string
	Address    *string
	CreatedAt  time.Time
}

func NewGuestBuilder() *GuestBuilder {
	phone := "0812345678"
	return &GuestBuilder{
		ID:         uuid.New(),
		FirstName:  "Somchai",
		LastName:   "Jaidee",
		NationalID: "1101700203451",
		Phone:      &phone,
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (g *GuestBuilder) With(mutate func(*GuestBuilder)) *GuestBuilder {
	mutate(g)
	return g
}

func (g *GuestBuilder) BuildDomain() *guest.Guest {
	return guest.ReconstructGuest(
		g.ID,
		guest.ReconstructName(g.FirstName, g.LastName),
		guest.ReconstructNationalID(g.NationalID),
		g.Phone, g.Address,
		g.CreatedAt, g.CreatedAt,
	)
}

func (g *GuestBuilder) BuildView() *queries.GuestView {
	return &queries.GuestView{
		ID:         g.ID,
		FirstName:  g.FirstName,
		LastName:   g.LastName,
		NationalID: g.NationalID,
		Phone:      g.Phone,
		Address:    g.Address,
		CreatedAt:  g.CreatedAt,
		UpdatedAt:  g.CreatedAt,
	}
}

func (g *GuestBuilder) BuildRequest() reqdto.GuestRequest {
	return reqdto.GuestRequest{
		FirstName:  g.FirstName,
		LastName:   g.LastName,
		NationalID: g.NationalID,
		Phone:      g.Phone,
		Address:    g.Address,
	}
}
