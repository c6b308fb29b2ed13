package readstore

//go:generate mockgen -source=guest.go -destination=../../../tests/mock/readstore/guest.go -package=readstoremock

import (
	"context"
	"strings"

	"mansion-pos/internal/infra"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type GuestReadQueries interface {
	GetGuestByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Guests, error)
	ListGuests(ctx context.Context, db sqlc.DBTX, arg sqlc.ListGuestsParams) ([]sqlc.Guests, error)
}

type GuestReadStore struct {
	queries GuestReadQueries
	db      sqlc.DBTX
}

func NewGuestReadStore(queries GuestReadQueries, db sqlc.DBTX) *GuestReadStore {
	return &GuestReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *GuestReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.GuestView, error) {
	row, err := r.queries.GetGuestByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify("failed to get guest view", err)
	}
	return toGuestView(row), nil
}

// likeEscaper makes a search term match literally inside ILIKE ... ESCAPE '\'.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *GuestReadStore) List(ctx context.Context, search, nationalID *string, limit int32) ([]*queries.GuestView, error) {
	if search != nil {
		escaped := likeEscaper.Replace(*search)
		search = &escaped
	}
	rows, err := r.queries.ListGuests(ctx, r.db, sqlc.ListGuestsParams{
		Search:     pgconv.StringPtrToPgtype(search),
		NationalID: pgconv.StringPtrToPgtype(nationalID),
		RowLimit:   limit,
	})
	if err != nil {
		return nil, infra.Classify("failed to list guests", err)
	}
	views := make([]*queries.GuestView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toGuestView(row))
	}
	return views, nil
}

func toGuestView(row sqlc.Guests) *queries.GuestView {
	return &queries.GuestView{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		NationalID: row.NationalID,
		Phone:      pgconv.StringPtrFromPgtype(row.Phone),
		Address:    pgconv.StringPtrFromPgtype(row.Address),
		CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:  pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
