//go:build unit

package guest_test

import (
	"strings"
	"testing"
	"time"

	"mansion-pos/internal/domain/guest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewNationalID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "citizen id", input: "1103700012345", want: "1103700012345"},
		{name: "trimmed", input: "  AB123456 ", want: "AB123456"},
		{name: "blank", input: "   ", errIs: guest.ErrNationalIDRequired},
		{name: "too long", input: strings.Repeat("9", guest.MaxNationalIDLength+1), errIs: guest.ErrNationalIDTooLong},
		{name: "multibyte at limit", input: strings.Repeat("ก", guest.MaxNationalIDLength), want: strings.Repeat("ก", guest.MaxNationalIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := guest.NewNationalID(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Value())
		})
	}
}

func TestNewName(t *testing.T) {
	n, err := guest.NewName(" Somchai ", "Jaidee")
	require.NoError(t, err)
	assert.Equal(t, "Somchai Jaidee", n.Full())

	_, err = guest.NewName("Somchai", "")
	assert.ErrorIs(t, err, guest.ErrNameRequired)

	_, err = guest.NewName(strings.Repeat("a", guest.MaxNameLength+1), "Jaidee")
	assert.ErrorIs(t, err, guest.ErrNameTooLong)

	// Thai letters are three bytes each; the limit counts characters.
	thai := strings.Repeat("ส", guest.MaxNameLength)
	n, err = guest.NewName(thai, "ใจดี")
	require.NoError(t, err)
	assert.Equal(t, thai, n.First())

	_, err = guest.NewName(thai+"ส", "ใจดี")
	assert.ErrorIs(t, err, guest.ErrNameTooLong)
}

func TestGuestEdit(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	name, _ := guest.NewName("Somchai", "Jaidee")
	id, _ := guest.NewNationalID("1103700012345")

	g := guest.NewGuest(name, id, strPtr(" 0812345678 "), strPtr("   "), now)
	require.NotNil(t, g.Phone())
	assert.Equal(t, "0812345678", *g.Phone())
	assert.Nil(t, g.Address())

	newName, _ := guest.NewName("Somsri", "Jaidee")
	later := now.Add(time.Hour)
	g.Edit(newName, id, nil, strPtr("Bangkok"), later)

	assert.Equal(t, "Somsri", g.Name().First())
	assert.Nil(t, g.Phone())
	assert.Equal(t, "Bangkok", *g.Address())
	assert.Equal(t, later, g.UpdatedAt())
	assert.Equal(t, now, g.CreatedAt())
}
