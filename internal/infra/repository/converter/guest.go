package converter

import (
	"mansion-pos/internal/domain/guest"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
)

func GuestToCreateParams(g *guest.Guest) sqlc.CreateGuestParams {
	return sqlc.CreateGuestParams{
		ID:         g.ID(),
		FirstName:  g.Name().First(),
		LastName:   g.Name().Last(),
		NationalID: g.NationalID().Value(),
		Phone:      pgconv.StringPtrToPgtype(g.Phone()),
		Address:    pgconv.StringPtrToPgtype(g.Address()),
		CreatedAt:  pgconv.TimeToPgtype(g.CreatedAt()),
		UpdatedAt:  pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func GuestToUpdateParams(g *guest.Guest) sqlc.UpdateGuestParams {
	return sqlc.UpdateGuestParams{
		ID:         g.ID(),
		FirstName:  g.Name().First(),
		LastName:   g.Name().Last(),
		NationalID: g.NationalID().Value(),
		Phone:      pgconv.StringPtrToPgtype(g.Phone()),
		Address:    pgconv.StringPtrToPgtype(g.Address()),
		UpdatedAt:  pgconv.TimeToPgtype(g.UpdatedAt()),
	}
}

func GuestToDomain(row sqlc.Guests) *guest.Guest {
	return guest.ReconstructGuest(
		row.ID,
		guest.ReconstructName(row.FirstName, row.LastName),
		guest.ReconstructNationalID(row.NationalID),
		pgconv.StringPtrFromPgtype(row.Phone),
		pgconv.StringPtrFromPgtype(row.Address),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
