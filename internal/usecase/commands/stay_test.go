//go:build unit

package commands_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"mansion-pos/internal/domain/deposit"
	"mansion-pos/internal/domain/payment"
	"mansion-pos/internal/domain/room"
	"mansion-pos/internal/domain/stay"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/tests/common/memuow"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *fixture) stays() commands.StayCommands {
	return commands.NewStayUseCase(f.store, f.clock, stay.NewFeePolicy(hotel))
}

func TestCheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("opens the stay and books the ledger", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1100100000001")
		rm := f.seedRoom(t, "101", 400)

		res, err := f.stays().CheckIn(ctx, commands.CheckInInput{
			GuestID:       g.ID(),
			RoomID:        rm.ID(),
			PaymentMethod: "TRANSFER",
			PlannedDays:   intPtr(2),
		})
		require.NoError(t, err)

		assert.Equal(t, stay.StatusCheckedIn, res.Stay.Status())
		assert.Equal(t, base, res.Stay.CheckIn())
		assert.Equal(t, 2, res.Stay.PlannedDays().Int())
		assert.True(t, dec("800").Equal(res.RoomCharge))
		assert.True(t, dec("900").Equal(res.TotalPaid))
		assert.Equal(t, room.StatusOccupied, f.store.Room(rm.ID()).Status())

		d := f.store.DepositForStay(res.Stay.ID())
		require.NotNil(t, d)
		assert.Equal(t, deposit.StatusPaid, d.Status())
		assert.True(t, dec("100").Equal(d.Amount()))

		ledger := f.store.Payments(res.Stay.ID())
		require.Len(t, ledger, 2)
		assert.Equal(t, payment.TypeRoomCharge, ledger[0].Type())
		assert.True(t, dec("800").Equal(ledger[0].Amount()))
		assert.Equal(t, payment.TypeDeposit, ledger[1].Type())
		assert.True(t, dec("100").Equal(ledger[1].Amount()))
		for _, p := range ledger {
			assert.Equal(t, payment.MethodTransfer, p.Method())
		}
	})

	t.Run("defaults to one night paid in cash", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1100100000001")
		rm := f.seedRoom(t, "101", 400)

		res, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID()})
		require.NoError(t, err)

		assert.Equal(t, 1, res.Stay.PlannedDays().Int())
		assert.True(t, dec("400").Equal(res.RoomCharge))
		for _, p := range f.store.Payments(res.Stay.ID()) {
			assert.Equal(t, payment.MethodCash, p.Method())
		}
	})

	t.Run("rejected requests leave no trace", func(t *testing.T) {
		tests := []struct {
			name    string
			mutate  func(in *commands.CheckInInput)
			wantErr error
		}{
			{"room already occupied", nil, commands.ErrRoomUnavailable},
			{"unknown room", func(in *commands.CheckInInput) { in.RoomID = unknownID }, commands.ErrRoomUnavailable},
			{"unknown guest", func(in *commands.CheckInInput) { in.GuestID = unknownID }, commands.ErrValidation},
			{"missing guest id", func(in *commands.CheckInInput) { in.GuestID = uuid.Nil }, commands.ErrValidation},
			{"zero planned days", func(in *commands.CheckInInput) { in.PlannedDays = intPtr(0) }, commands.ErrValidation},
			{"too many planned days", func(in *commands.CheckInInput) { in.PlannedDays = intPtr(366) }, commands.ErrValidation},
			{"unknown payment method", func(in *commands.CheckInInput) { in.PaymentMethod = "BITCOIN" }, commands.ErrValidation},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				g := f.seedGuest(t, "1100100000001")
				rm := f.seedRoom(t, "101", 400)
				in := commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID()}

				if tt.mutate == nil {
					// occupy the room first
					other := f.seedGuest(t, "1100100000002")
					_, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: other.ID(), RoomID: rm.ID()})
					require.NoError(t, err)
				} else {
					tt.mutate(&in)
				}
				before := f.store.Counts()

				_, err := f.stays().CheckIn(ctx, in)
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				if diff := cmp.Diff(before, f.store.Counts()); diff != "" {
					t.Errorf("store changed (-before +after):\n%s", diff)
				}
			})
		}
	})

	t.Run("storage failure rolls everything back", func(t *testing.T) {
		f := newFixture()
		g := f.seedGuest(t, "1100100000001")
		rm := f.seedRoom(t, "101", 400)
		f.store.FailOn(memuow.OpPaymentAppend, errors.New("connection reset"))

		_, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID()})
		require.Error(t, err)
		assert.True(t, errs.Is(err, commands.ErrStorage))

		assert.Equal(t, memuow.Counts{Guests: 1, Rooms: 1}, f.store.Counts())
		assert.Equal(t, room.StatusAvailable, f.store.Room(rm.ID()).Status())
	})

	t.Run("concurrent check-ins into one room admit a single guest", func(t *testing.T) {
		f := newFixture()
		rm := f.seedRoom(t, "101", 400)

		const attempts = 8
		var guests []uuid.UUID
		for i := 0; i < attempts; i++ {
			guests = append(guests, f.seedGuest(t, "11001000000"+string(rune('a'+i))).ID())
		}

		var (
			wg          sync.WaitGroup
			mu          sync.Mutex
			succeeded   int
			unavailable int
		)
		for _, gid := range guests {
			wg.Add(1)
			go func(gid uuid.UUID) {
				defer wg.Done()
				_, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: gid, RoomID: rm.ID()})
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case errs.Is(err, commands.ErrRoomUnavailable):
					unavailable++
				}
			}(gid)
		}
		wg.Wait()

		assert.Equal(t, 1, succeeded)
		assert.Equal(t, attempts-1, unavailable)
		assert.Equal(t, 1, f.store.Counts().Stays)
	})
}

func TestCheckOut(t *testing.T) {
	ctx := context.Background()

	checkIn := func(t *testing.T, f *fixture, planned int) *commands.CheckInResult {
		t.Helper()
		g := f.seedGuest(t, "1100100000001")
		rm := f.seedRoom(t, "101", 400)
		res, err := f.stays().CheckIn(ctx, commands.CheckInInput{GuestID: g.ID(), RoomID: rm.ID(), PlannedDays: intPtr(planned)})
		require.NoError(t, err)
		return res
	}

	t.Run("late departure with the key returned", func(t *testing.T) {
		f := newFixture()
		in := checkIn(t, f, 1)
		f.clock.Set(base.Add(30 * time.Hour))

		res, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID(), KeyReturned: true})
		require.NoError(t, err)

		assert.Equal(t, "101", res.RoomNumber)
		assert.Equal(t, time.Date(2025, 3, 11, 12, 0, 0, 0, hotel), res.ExpectedCheckout)
		assert.Equal(t, 1, res.ExtraDays)
		assert.True(t, dec("400").Equal(res.LateFee))
		assert.True(t, res.DepositReturned)
		assert.True(t, dec("300").Equal(res.TotalAdditionalCharge))

		s := f.store.Stay(in.Stay.ID())
		assert.Equal(t, stay.StatusCheckedOut, s.Status())
		require.NotNil(t, s.CheckOut())
		assert.Equal(t, base.Add(30*time.Hour), *s.CheckOut())
		assert.Equal(t, room.StatusCleaning, f.store.Room(in.Room.ID()).Status())
		assert.Equal(t, deposit.StatusReturned, f.store.DepositForStay(in.Stay.ID()).Status())

		want := []payment.Type{payment.TypeDeposit, payment.TypeDepositReturn, payment.TypeLateFee, payment.TypeRoomCharge}
		assert.Equal(t, want, f.store.PaymentTypes(in.Stay.ID()))
		for _, p := range f.store.Payments(in.Stay.ID()) {
			if p.Type() == payment.TypeDepositReturn {
				assert.True(t, dec("-100").Equal(p.Amount()))
			}
		}
	})

	t.Run("on time without the key keeps the deposit", func(t *testing.T) {
		f := newFixture()
		in := checkIn(t, f, 2)
		f.clock.Set(time.Date(2025, 3, 12, 11, 30, 0, 0, hotel))

		res, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID()})
		require.NoError(t, err)

		assert.Zero(t, res.ExtraDays)
		assert.True(t, res.LateFee.IsZero())
		assert.False(t, res.DepositReturned)
		assert.True(t, res.TotalAdditionalCharge.IsZero())
		assert.Equal(t, deposit.StatusPaid, f.store.DepositForStay(in.Stay.ID()).Status())
		assert.Equal(t, []payment.Type{payment.TypeDeposit, payment.TypeRoomCharge}, f.store.PaymentTypes(in.Stay.ID()))
	})

	t.Run("stay cannot be checked out twice", func(t *testing.T) {
		f := newFixture()
		in := checkIn(t, f, 1)

		_, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID(), KeyReturned: true})
		require.NoError(t, err)
		before := f.store.Counts()

		_, err = f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID(), KeyReturned: true})
		assert.True(t, errs.Is(err, commands.ErrStayNotFound))
		assert.Equal(t, before, f.store.Counts())
	})

	t.Run("unknown stay", func(t *testing.T) {
		f := newFixture()
		_, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: unknownID})
		assert.True(t, errs.Is(err, commands.ErrStayNotFound))
	})

	t.Run("unknown payment method", func(t *testing.T) {
		f := newFixture()
		in := checkIn(t, f, 1)
		_, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID(), PaymentMethod: "IOU"})
		assert.True(t, errs.Is(err, commands.ErrValidation))
		assert.Equal(t, stay.StatusCheckedIn, f.store.Stay(in.Stay.ID()).Status())
	})

	t.Run("failure while returning the deposit keeps the stay open", func(t *testing.T) {
		f := newFixture()
		in := checkIn(t, f, 1)
		f.clock.Set(base.Add(30 * time.Hour))
		f.store.FailOn(memuow.OpDepositReturn, errors.New("disk full"))

		_, err := f.stays().CheckOut(ctx, commands.CheckOutInput{StayID: in.Stay.ID(), KeyReturned: true})
		assert.True(t, errs.Is(err, commands.ErrStorage))

		assert.Equal(t, stay.StatusCheckedIn, f.store.Stay(in.Stay.ID()).Status())
		assert.Equal(t, room.StatusOccupied, f.store.Room(in.Room.ID()).Status())
		assert.Len(t, f.store.Payments(in.Stay.ID()), 2)
	})
}
