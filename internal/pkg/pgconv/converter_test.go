//go:build unit

package pgconv_test

import (
	"fmt"
	"math/big"
	"testing"
	"time"

	"mansion-pos/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalNumericRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "400", "400.50", "-100.00", "0.01"} {
		t.Run(s, func(t *testing.T) {
			d := decimal.RequireFromString(s)

			got, err := pgconv.DecimalFromNumeric(pgconv.DecimalToNumeric(d))
			require.NoError(t, err)
			assert.True(t, d.Equal(got), "want %s got %s", d, got)
		})
	}
}

func TestDecimalFromNumeric(t *testing.T) {
	t.Run("null numeric is zero", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{})
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("scaled integer", func(t *testing.T) {
		got, err := pgconv.DecimalFromNumeric(pgtype.Numeric{Int: big.NewInt(12345), Exp: -2, Valid: true})
		require.NoError(t, err)
		assert.Equal(t, "123.45", got.StringFixed(2))
	})

	t.Run("NaN is rejected", func(t *testing.T) {
		_, err := pgconv.DecimalFromNumeric(pgtype.Numeric{NaN: true, Valid: true})
		assert.ErrorIs(t, err, pgconv.ErrInvalidNumericValue)
	})
}

func TestTimePtr(t *testing.T) {
	assert.Nil(t, pgconv.TimePtrFromPgtype(pgtype.Timestamptz{}))

	now := time.Now()
	got := pgconv.TimePtrFromPgtype(pgconv.TimeToPgtype(now))
	require.NotNil(t, got)
	assert.True(t, now.Equal(*got))
	assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("lookup: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(assert.AnError))
}
