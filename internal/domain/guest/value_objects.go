package guest

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Lengths are in characters, matching the VARCHAR columns.
const (
	MaxNameLength       = 100
	MaxNationalIDLength = 20
)

var (
	ErrNationalIDRequired = errors.New("national id is required")
	ErrNationalIDTooLong  = errors.New("national id is too long")
	ErrNameRequired       = errors.New("first and last name are required")
	ErrNameTooLong        = errors.New("name is too long")
)

// NationalID identifies a guest across visits (citizen id or passport number).
type NationalID struct {
	value string
}

func NewNationalID(value string) (NationalID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return NationalID{}, ErrNationalIDRequired
	}
	if utf8.RuneCountInString(value) > MaxNationalIDLength {
		return NationalID{}, ErrNationalIDTooLong
	}
	return NationalID{value: value}, nil
}

func (n NationalID) Value() string {
	return n.value
}

func (n NationalID) String() string {
	return n.value
}

type Name struct {
	first string
	last  string
}

func NewName(first, last string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	if first == "" || last == "" {
		return Name{}, ErrNameRequired
	}
	if utf8.RuneCountInString(first) > MaxNameLength || utf8.RuneCountInString(last) > MaxNameLength {
		return Name{}, ErrNameTooLong
	}
	return Name{first: first, last: last}, nil
}

func (n Name) First() string { return n.first }
func (n Name) Last() string  { return n.last }

func (n Name) Full() string {
	return n.first + " " + n.last
}

// ReconstructName and ReconstructNationalID rebuild values that were validated
// before they were stored.
func ReconstructName(first, last string) Name {
	return Name{first: first, last: last}
}

func ReconstructNationalID(value string) NationalID {
	return NationalID{value: value}
}
