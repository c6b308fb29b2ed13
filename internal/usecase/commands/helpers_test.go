//go:build unit

package commands_test

import (
	"testing"
	"time"

	"mansion-pos/internal/domain/guest"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/pkg/clock"
	"mansion-pos/tests/common/memuow"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var hotel = time.FixedZone("ICT", 7*60*60)

// day 0 of every scenario, 09:00 hotel time
var base = time.Date(2025, 3, 10, 9, 0, 0, 0, hotel)

type fixture struct {
	store *memuow.Store
	clock *clock.FixedClock
}

func newFixture() *fixture {
	return &fixture{store: memuow.New(), clock: clock.NewFixedClock(base)}
}

func (f *fixture) seedGuest(t *testing.T, nid string) *guest.Guest {
	t.Helper()
	name, err := guest.NewName("Somchai", "Jaidee")
	require.NoError(t, err)
	id, err := guest.NewNationalID(nid)
	require.NoError(t, err)
	g := guest.NewGuest(name, id, nil, nil, base)
	f.store.SeedGuest(g)
	return g
}

func (f *fixture) seedRoom(t *testing.T, number string, rate int64) *room.Room {
	t.Helper()
	rm, err := room.NewRoom(number, room.BedTypeSingle, decimal.NewFromInt(rate), base)
	require.NoError(t, err)
	f.store.SeedRoom(rm)
	return rm
}

func intPtr(n int) *int { return &n }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var unknownID = uuid.MustParse("00000000-0000-0000-0000-00000000abcd")
