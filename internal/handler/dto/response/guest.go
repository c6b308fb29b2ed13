package response

import (
	"time"

	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	NationalID string    `json:"national_id"`
	Phone      *string   `json:"phone,omitempty"`
	Address    *string   `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type GuestLookupResponse struct {
	GuestResponse
	ReturningCustomer bool `json:"returning_customer"`
}

func FromGuest(g *guest.Guest) *GuestResponse {
	return &GuestResponse{
		ID:         g.ID(),
		FirstName:  g.Name().First(),
		LastName:   g.Name().Last(),
		NationalID: g.NationalID().Value(),
		Phone:      g.Phone(),
		Address:    g.Address(),
		CreatedAt:  g.CreatedAt(),
		UpdatedAt:  g.UpdatedAt(),
	}
}

func FromGuestLookup(g *guest.Guest, returning bool) *GuestLookupResponse {
	return &GuestLookupResponse{GuestResponse: *FromGuest(g), ReturningCustomer: returning}
}

func FromGuestView(v *queries.GuestView) (*GuestResponse, error) {
	var res GuestResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "copy guest view")
	}
	return &res, nil
}

func FromGuestViews(vs []*queries.GuestView) ([]*GuestResponse, error) {
	res := make([]*GuestResponse, 0, len(vs))
	if err := copier.Copy(&res, &vs); err != nil {
		return nil, errs.Wrap(err, "copy guest views")
	}
	return res, nil
}
