//go:build unit

package commands_test

import (
	"context"
	"testing"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReturnDeposit(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, checkOut bool) (*fixture, *commands.CheckInResult) {
		t.Helper()
		f := newFixture()
		g := f.seedGuest(t, "1100100000001")
		rm := f.seedRoom(t, "101", 400)
		in, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID()})
		require.NoError(t, err)
		if checkOut {
			_, err = f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID()})
			require.NoError(t, err)
		}
		return f, in
	}

	t.Run("key handed in after check-out", func(t *testing.T) {
		f, in := setup(t, true)
		uc := commands.NewDepositUseCase(f.store, f.clock)

		d, err := uc.ReturnDeposit(ctx, commands.ReturnDepositInput{StayID: in.Stay.ID(), PaymentMethod: "CASH"})
		require.NoError(t, err)
		assert.Equal(t, deposit.StatusReturned, d.Status())
		require.NotNil(t, d.ReturnedAt())

		ledger := f.store.Payments(in.Stay.ID())
		last := ledger[len(ledger)-1]
		assert.Equal(t, payment.TypeDepositReturn, last.Type())
		assert.True(t, dec("-100").Equal(last.Amount()))
	})

	t.Run("second return is rejected without a ledger entry", func(t *testing.T) {
		f, in := setup(t, true)
		uc := commands.NewDepositUseCase(f.store, f.clock)

		_, err := uc.ReturnDeposit(ctx, commands.ReturnDepositInput{StayID: in.Stay.ID()})
		require.NoError(t, err)
		before := f.store.Counts()

		_, err = uc.ReturnDeposit(ctx, commands.ReturnDepositInput{StayID: in.Stay.ID()})
		assert.True(t, errs.Is(err, commands.ErrAlreadyReturned))
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("active stay settles its deposit at check-out", func(t *testing.T) {
		f, in := setup(t, false)
		uc := commands.NewDepositUseCase(f.store, f.clock)

		_, err := uc.ReturnDeposit(ctx, commands.ReturnDepositInput{StayID: in.Stay.ID()})
		assert.True(t, errs.Is(err, commands.ErrValidation))
		assert.Equal(t, deposit.StatusPaid, f.store.DepositForStay(in.Stay.ID()).Status())
	})

	t.Run("unknown stay", func(t *testing.T) {
		f := newFixture()
		uc := commands.NewDepositUseCase(f.store, f.clock)

		_, err := uc.ReturnDeposit(ctx, commands.ReturnDepositInput{StayID: unknownID})
		assert.True(t, errs.Is(err, commands.ErrStayNotFound))
	})
}
