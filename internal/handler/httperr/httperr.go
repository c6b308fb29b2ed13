package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// KindInternal is reported for every failure whose cause must stay private.
const KindInternal = "STORAGE_ERROR"

type Body struct {
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
}

type Response struct {
	Status int  `json:"-"`
	Error  Body `json:"error"`
	Detail any  `json:"detail,omitempty"`
}

func Internal() Response {
	return Response{
		Status: http.StatusInternalServerError,
		Error:  Body{Kind: KindInternal, Message: "Internal server error"},
	}
}

// AbortWithKind writes the error envelope and keeps err on the context for the
// request log.
func AbortWithKind(c *gin.Context, status int, kind string, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithKind: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  Body{Kind: kind, Message: msg},
		Detail: detail,
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
