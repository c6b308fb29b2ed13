package readstore

//go:generate mockgen -source=stay.go -destination=../../../tests/mock/readstore/stay.go -package=readstoremock

import (
	"context"

	"mansion-pos/internal/infra"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
	"mansion-pos/internal/usecase/queries"

	"github.com/google/uuid"
)

type StayReadQueries interface {
	GetStayDetail(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetStayDetailRow, error)
	ListActiveStays(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActiveStaysRow, error)
	ListStays(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.ListStaysRow, error)
}

type StayReadStore struct {
	queries StayReadQueries
	db      sqlc.DBTX
}

func NewStayReadStore(queries StayReadQueries, db sqlc.DBTX) *StayReadStore {
	return &StayReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *StayReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.StayView, error) {
	row, err := r.queries.GetStayDetail(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify("failed to get stay view", err)
	}
	return toStayView(sqlc.ListStaysRow(row))
}

func (r *StayReadStore) ListActive(ctx context.Context) ([]*queries.StayView, error) {
	rows, err := r.queries.ListActiveStays(ctx, r.db)
	if err != nil {
		return nil, infra.Classify("failed to list active stays", err)
	}
	views := make([]*queries.StayView, 0, len(rows))
	for _, row := range rows {
		v, err := toStayView(sqlc.ListStaysRow(row))
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (r *StayReadStore) ListRecent(ctx context.Context, limit int32) ([]*queries.StayView, error) {
	rows, err := r.queries.ListStays(ctx, r.db, limit)
	if err != nil {
		return nil, infra.Classify("failed to list stays", err)
	}
	views := make([]*queries.StayView, 0, len(rows))
	for _, row := range rows {
		v, err := toStayView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

// The three stay queries select the same columns, so their rows convert
// into one another.
func toStayView(row sqlc.ListStaysRow) (*queries.StayView, error) {
	price, err := pgconv.DecimalFromNumeric(row.PricePerDay)
	if err != nil {
		return nil, infra.Classify("failed to decode room rate", err)
	}
	return &queries.StayView{
		ID:            row.ID,
		GuestID:       row.GuestID,
		RoomID:        row.RoomID,
		CheckIn:       pgconv.TimeFromPgtype(row.CheckIn),
		CheckOut:      pgconv.TimePtrFromPgtype(row.CheckOut),
		PlannedDays:   int(row.PlannedDays),
		Status:        row.Status,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		NationalID:    row.NationalID,
		Phone:         pgconv.StringPtrFromPgtype(row.Phone),
		RoomNumber:    row.RoomNumber,
		BedType:       row.BedType,
		PricePerDay:   price,
		DepositStatus: pgconv.StringPtrFromPgtype(row.DepositStatus),
	}, nil
}
