package converter

import (
	"mansion-pos/internal/domain/room"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
)

func RoomToCreateParams(r *room.Room) sqlc.CreateRoomParams {
	return sqlc.CreateRoomParams{
		ID:          r.ID(),
		RoomNumber:  r.Number(),
		BedType:     r.BedType().String(),
		PricePerDay: pgconv.DecimalToNumeric(r.DailyRate()),
		Status:      r.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:   pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}

func RoomToDomain(row sqlc.Rooms) (*room.Room, error) {
	rate, err := pgconv.DecimalFromNumeric(row.PricePerDay)
	if err != nil {
		return nil, err
	}
	return room.ReconstructRoom(
		row.ID,
		row.RoomNumber,
		room.BedType(row.BedType),
		rate,
		room.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
