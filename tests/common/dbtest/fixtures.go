//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateTestGuest(t *testing.T, db DBLike, firstName, nationalID string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO guests (id, first_name, last_name, national_id) VALUES ($1, $2, 'Test', $3)",
		id, firstName, nationalID)
	require.NoError(t, err)
	return id
}

func CreateTestRoom(t *testing.T, db DBLike, number, bedType string, pricePerDay int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, room_number, bed_type, price_per_day) VALUES ($1, $2, $3, $4)",
		id, number, bedType, pricePerDay)
	require.NoError(t, err)
	return id
}

// BackdateStay moves a stay's check-in into the past so that checkout can be
// exercised against the wall clock.
func BackdateStay(t *testing.T, db DBLike, stayID uuid.UUID, checkIn time.Time) {
	t.Helper()

	tag, err := db.Exec(context.Background(), "UPDATE stays SET check_in = $2 WHERE id = $1", stayID, checkIn)
	require.NoError(t, err)
	require.EqualValues(t, 1, tag.RowsAffected())
}

func RoomStatus(t *testing.T, db DBLike, roomID uuid.UUID) string {
	t.Helper()

	var status string
	require.NoError(t, db.QueryRow(context.Background(), "SELECT status FROM rooms WHERE id = $1", roomID).Scan(&status))
	return status
}

// CountRows returns the row count of a fixed table name.
func CountRows(t *testing.T, db DBLike, table string) int {
	t.Helper()

	var n int
	require.NoError(t, db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n))
	return n
}

// PaymentTotal sums the ledger of a stay.
func PaymentTotal(t *testing.T, db DBLike, stayID uuid.UUID) string {
	t.Helper()

	var total string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(amount), 0)::text FROM payments WHERE stay_id = $1", stayID).Scan(&total))
	return total
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
