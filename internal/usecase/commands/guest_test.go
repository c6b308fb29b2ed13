//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/tests/common/memuow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestLookupOrCreateGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("first visit registers the guest", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewGuestUseCase(f.store, f.clock)

		res, err := uc.LookupOrCreateGuest(ctx, commands.GuestInput{
			FirstName:  "Malee",
			LastName:   "Srisuk",
			NationalID: " 3100200300400 ",
			Phone:      strPtr("0812345678"),
		})
		require.NoError(t, err)
		assert.False(t, res.ReturningCustomer)
		assert.Equal(t, "3100200300400", res.Guest.NationalID().Value())
		assert.Equal(t, 1, f.store.Counts().Guests)
	})

	t.Run("returning customer keeps the stored record", func(t *testing.T) {
		f := newFixture()
		existing := f.seedGuest(t, "3100200300400")
		uc := commands.NewGuestUseCase(f.store, f.clock)

		res, err := uc.LookupOrCreateGuest(ctx, commands.GuestInput{
			FirstName:  "Someone",
			LastName:   "Else",
			NationalID: "3100200300400",
		})
		require.NoError(t, err)
		assert.True(t, res.ReturningCustomer)
		assert.Equal(t, existing.ID(), res.Guest.ID())
		assert.Equal(t, "Somchai", res.Guest.Name().First())
		assert.Equal(t, 1, f.store.Counts().Guests)
	})

	t.Run("invalid identity", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewGuestUseCase(f.store, f.clock)

		_, err := uc.LookupOrCreateGuest(ctx, commands.GuestInput{FirstName: "A", LastName: "B", NationalID: "   "})
		assert.True(t, errs.Is(err, commands.ErrValidation))

		_, err = uc.LookupOrCreateGuest(ctx, commands.GuestInput{NationalID: "1"})
		assert.True(t, errs.Is(err, commands.ErrValidation))
	})

	t.Run("lookup failure is a storage error", func(t *testing.T) {
		f := newFixture()
		f.store.FailOn(memuow.OpGuestFindByNID, errors.New("timeout"))
		uc := commands.NewGuestUseCase(f.store, f.clock)

		_, err := uc.LookupOrCreateGuest(ctx, commands.GuestInput{FirstName: "A", LastName: "B", NationalID: "1"})
		assert.True(t, errs.Is(err, commands.ErrStorage))
	})
}

func TestUpdateGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("edits the record", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1")
		uc := commands.NewGuestUseCase(f.store, f.clock)

		updated, err := uc.UpdateGuest(ctx, g.ID(), commands.GuestInput{
			FirstName:  "Somsak",
			LastName:   "Jaidee",
			NationalID: "1",
			Address:    strPtr("Chiang Mai"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Somsak Jaidee", updated.Name().Full())

		stored, ok := f.store.Guest(g.ID())
		require.True(t, ok)
		require.NotNil(t, stored.Address())
		assert.Equal(t, "Chiang Mai", *stored.Address())
	})

	t.Run("national id of another guest", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1")
		f.seedGuest(t, "2")
		uc := commands.NewGuestUseCase(f.store, f.clock)

		_, err := uc.UpdateGuest(ctx, g.ID(), commands.GuestInput{FirstName: "A", LastName: "B", NationalID: "2"})
		assert.True(t, errs.Is(err, commands.ErrDuplicateKey))

		stored, _ := f.store.Guest(g.ID())
		assert.Equal(t, "1", stored.NationalID().Value())
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewGuestUseCase(f.store, f.clock)

		_, err := uc.UpdateGuest(ctx, unknownID, commands.GuestInput{FirstName: "A", LastName: "B", NationalID: "1"})
		assert.True(t, errs.Is(err, commands.ErrGuestNotFound))
	})
}

func TestDeleteGuest(t *testing.T) {
	ctx := context.Background()

	t.Run("guest without history", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1")
		uc := commands.NewGuestUseCase(f.store, f.clock)

		require.NoError(t, uc.DeleteGuest(ctx, g.ID()))
		assert.Zero(t, f.store.Counts().Guests)
	})

	t.Run("guest with a stay is kept", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1")
		rm := f.seedRoom(t, "101", 400)
		_, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID()})
		require.NoError(t, err)
		uc := commands.NewGuestUseCase(f.store, f.clock)

		err = uc.DeleteGuest(ctx, g.ID())
		assert.True(t, errs.Is(err, commands.ErrGuestInUse))
		assert.Equal(t, 1, f.store.Counts().Guests)
	})

	t.Run("unknown guest", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewGuestUseCase(f.store, f.clock)

		err := uc.DeleteGuest(ctx, unknownID)
		assert.True(t, errs.Is(err, commands.ErrGuestNotFound))
	})
}
