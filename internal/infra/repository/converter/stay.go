package converter

import (
	"fmt"
	"math"

	"mansion-pos/internal/domain/stay"
	sqlc "mansion-pos/internal/infra/sqlc/generated"
	"mansion-pos/internal/pkg/pgconv"
)

func StayToCreateParams(s *stay.Stay) sqlc.CreateStayParams {
	days := s.PlannedDays().Int()
	if days > math.MaxInt32 {
		panic(fmt.Sprintf("planned days out of int32 range: %d", days))
	}

	return sqlc.CreateStayParams{
		ID:          s.ID(),
		GuestID:     s.GuestID(),
		RoomID:      s.RoomID(),
		CheckIn:     pgconv.TimeToPgtype(s.CheckIn()),
		PlannedDays: int32(days),
		Status:      s.Status().String(),
		CreatedAt:   pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func StayToCloseParams(s *stay.Stay) sqlc.CloseStayParams {
	return sqlc.CloseStayParams{
		ID:       s.ID(),
		CheckOut: pgconv.TimePtrToPgtype(s.CheckOut()),
		Status:   s.Status().String(),
	}
}

func StayToDomain(row sqlc.Stays) *stay.Stay {
	return stay.ReconstructStay(
		row.ID,
		row.GuestID,
		row.RoomID,
		pgconv.TimeFromPgtype(row.CheckIn),
		pgconv.TimePtrFromPgtype(row.CheckOut),
		stay.ReconstructPlannedDays(int(row.PlannedDays)),
		stay.Status(row.Status),
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}
