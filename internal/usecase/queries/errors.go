package queries

import "mansion-pos/internal/pkg/errs"

var (
	ErrGuestNotFound = errs.New("guest not found")
	ErrStayNotFound  = errs.New("stay not found")
	ErrInvalidFilter = errs.New("invalid filter")
)
