//go:build unit

package infra_test

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"mansion-pos/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "42P01"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), want: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, infra.KindOf(tt.err))
		})
	}
}

func TestWrapRepoErr(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cause := &pgconn.PgError{Code: "23505", Message: "duplicate key value"}

	err := infra.WrapRepoErr(logger, infra.KindDuplicateKey, "failed to create guest", cause)

	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	assert.False(t, infra.IsKind(err, infra.KindNotFound))
	assert.Contains(t, err.Error(), "DUPLICATE_KEY: failed to create guest")

	var pgErr *pgconn.PgError
	assert.True(t, errors.As(err, &pgErr))
}

func TestClassify(t *testing.T) {
	assert.NoError(t, infra.Classify("noop", nil))
	assert.True(t, infra.IsKind(infra.Classify("guest not found", pgx.ErrNoRows), infra.KindNotFound))
}
