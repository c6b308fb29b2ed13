package api

import (
	"net/http"

	"mansion-pos/internal/handler/httperr"
	"mansion-pos/internal/pkg/errs"
	"mansion-pos/internal/usecase/commands"
	"mansion-pos/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	KindValidation      = "VALIDATION_ERROR"
	KindRoomUnavailable = "ROOM_UNAVAILABLE"
	KindStayNotFound    = "STAY_NOT_FOUND"
	KindDuplicateKey    = "DUPLICATE_KEY"
	KindAlreadyReturned = "ALREADY_RETURNED"
	KindStorage         = httperr.KindInternal
	KindGuestNotFound   = "GUEST_NOT_FOUND"
	KindRoomNotFound    = "ROOM_NOT_FOUND"
	KindGuestInUse      = "GUEST_IN_USE"
)

// An empty message means the cause is safe to show: it comes from request
// validation, never from the driver.
type errorKind struct {
	target  error
	status  int
	kind    string
	message string
}

var errorKinds = []errorKind{
	{commands.ErrValidation, http.StatusBadRequest, KindValidation, ""},
	{commands.ErrRoomUnavailable, http.StatusConflict, KindRoomUnavailable, "Room is not available"},
	{commands.ErrStayNotFound, http.StatusNotFound, KindStayNotFound, "Active stay not found"},
	{commands.ErrDuplicateKey, http.StatusConflict, KindDuplicateKey, "Record already exists"},
	{commands.ErrAlreadyReturned, http.StatusConflict, KindAlreadyReturned, "Deposit already returned"},
	{commands.ErrGuestNotFound, http.StatusNotFound, KindGuestNotFound, "Guest not found"},
	{commands.ErrRoomNotFound, http.StatusNotFound, KindRoomNotFound, "Room not found"},
	{commands.ErrGuestInUse, http.StatusConflict, KindGuestInUse, "Guest has stay history"},
	{queries.ErrInvalidFilter, http.StatusBadRequest, KindValidation, ""},
	{queries.ErrGuestNotFound, http.StatusNotFound, KindGuestNotFound, "Guest not found"},
	{queries.ErrStayNotFound, http.StatusNotFound, KindStayNotFound, "Stay not found"},
}

// abortWithUseCaseError translates a command or query error into the JSON
// error envelope. Storage failures and unknown errors stay opaque.
func abortWithUseCaseError(c *gin.Context, err error) {
	for _, k := range errorKinds {
		if errs.Is(err, k.target) {
			msg := k.message
			if msg == "" {
				msg = err.Error()
			}
			httperr.AbortWithKind(c, k.status, k.kind, err, msg, nil)
			return
		}
	}
	resp := httperr.Internal()
	httperr.AbortWithKind(c, resp.Status, resp.Error.Kind, err, resp.Error.Message, nil)
}

// abortWithBindError reports a malformed request body, path or query.
func abortWithBindError(c *gin.Context, err error, msg string) {
	var detail map[string]string
	var ve validator.ValidationErrors
	if errs.As(err, &ve) {
		detail = make(map[string]string, len(ve))
		for _, fe := range ve {
			detail[fe.Field()] = fe.Tag()
		}
	}
	var d any
	if detail != nil {
		d = detail
	}
	httperr.AbortWithKind(c, http.StatusBadRequest, KindValidation, err, msg, d)
}
