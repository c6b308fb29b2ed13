//go:build unit

package deposit_test

import (
	"testing"
	"time"

	"mansion-pos/internal/domain/deposit"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssue(t *testing.T) {
	stayID := uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	d := deposit.Issue(stayID, now)

	assert.NotEqual(t, uuid.Nil, d.ID())
	assert.Equal(t, stayID, d.StayID())
	assert.True(t, decimal.NewFromInt(100).Equal(d.Amount()))
	assert.Equal(t, deposit.StatusPaid, d.Status())
	assert.Equal(t, now, d.PaidAt())
	assert.Nil(t, d.ReturnedAt())
	assert.False(t, d.IsReturned())
}

func TestReturn(t *testing.T) {
	paidAt := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	returnAt := paidAt.Add(27 * time.Hour)

	t.Run("first return settles the deposit", func(t *testing.T) {
		d := deposit.Issue(uuid.New(), paidAt)

		require.NoError(t, d.Return(returnAt))
		assert.Equal(t, deposit.StatusReturned, d.Status())
		require.NotNil(t, d.ReturnedAt())
		assert.Equal(t, returnAt, *d.ReturnedAt())
		assert.True(t, decimal.NewFromInt(-100).Equal(d.RefundAmount()))
	})

	t.Run("second return is rejected and keeps the first timestamp", func(t *testing.T) {
		d := deposit.Issue(uuid.New(), paidAt)
		require.NoError(t, d.Return(returnAt))

		err := d.Return(returnAt.Add(time.Hour))
		assert.ErrorIs(t, err, deposit.ErrAlreadyReturned)
		assert.Equal(t, returnAt, *d.ReturnedAt())
	})

	t.Run("reconstructed returned deposit is rejected", func(t *testing.T) {
		d := deposit.ReconstructDeposit(uuid.New(), uuid.New(), deposit.KeyDepositAmount, deposit.StatusReturned, paidAt, &returnAt)
		assert.ErrorIs(t, d.Return(returnAt), deposit.ErrAlreadyReturned)
	})
}
