package commands

import (
	"mansion-pos/internal/infra"
	"mansion-pos/internal/pkg/errs"
)

// Every error returned from this package is marked with exactly one of these
// kinds; callers branch with errs.Is.
var (
	ErrValidation      = errs.New("validation error")
	ErrRoomUnavailable = errs.New("room unavailable")
	ErrStayNotFound    = errs.New("stay not found")
	ErrDuplicateKey    = errs.New("duplicate key")
	ErrAlreadyReturned = errs.New("deposit already returned")
	ErrStorage         = errs.New("storage error")
	ErrGuestNotFound   = errs.New("guest not found")
	ErrRoomNotFound    = errs.New("room not found")
	ErrGuestInUse      = errs.New("guest has stay history")
)

var kinds = []error{
	ErrValidation,
	ErrRoomUnavailable,
	ErrStayNotFound,
	ErrDuplicateKey,
	ErrAlreadyReturned,
	ErrStorage,
	ErrGuestNotFound,
	ErrRoomNotFound,
	ErrGuestInUse,
}

func hasKind(err error) bool {
	for _, k := range kinds {
		if errs.Is(err, k) {
			return true
		}
	}
	return false
}

func invalid(err error) error {
	return errs.Mark(err, ErrValidation)
}

// fromRepo marks a repository failure. A NOT_FOUND result becomes notFound
// when one is given; everything else is a storage failure.
func fromRepo(err error, notFound error) error {
	if notFound != nil && infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, notFound)
	}
	return errs.Mark(err, ErrStorage)
}

// settle is applied to whatever comes out of a unit of work. Errors already
// carrying a kind pass through untouched; begin/commit failures and anything
// unexpected become storage failures.
func settle(err error) error {
	if err == nil || hasKind(err) {
		return err
	}
	return errs.Mark(err, ErrStorage)
}
