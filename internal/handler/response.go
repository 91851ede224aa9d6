package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/domain"
	"blog-cms/internal/gateway"
)

// StatusFor maps a gateway error category to its HTTP status.
func StatusFor(category gateway.Category) int {
	switch category {
	case gateway.CategoryValidation:
		return http.StatusBadRequest
	case gateway.CategoryNotFound:
		return http.StatusNotFound
	case gateway.CategoryConflict, gateway.CategoryInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {code, message, category, fields?} with the mapped
// status. The error is attached to the context for the access log.
func respondError(c *gin.Context, err error) {
	ge := gateway.FromError(err)
	_ = c.Error(err)
	c.JSON(StatusFor(ge.Category), ge)
}

// bindJSON decodes the body into req. An empty body is accepted when
// optional is set.
func bindJSON(c *gin.Context, req any, optional bool) bool {
	err := c.ShouldBindJSON(req)
	if err == nil || (optional && errors.Is(err, io.EOF)) {
		return true
	}
	respondError(c, &gateway.Error{
		Category: gateway.CategoryValidation,
		Code:     string(domain.CodeValidationFailed),
		Message:  "request body is not valid JSON",
		Fields:   map[string]string{"request": err.Error()},
	})
	return false
}

// bindQuery decodes query parameters into req.
func bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		respondError(c, &gateway.Error{
			Category: gateway.CategoryValidation,
			Code:     string(domain.CodeValidationFailed),
			Message:  "query parameters are invalid",
			Fields:   map[string]string{"request": err.Error()},
		})
		return false
	}
	return true
}

// serve runs req through the gateway and writes the response with status.
func serve[Req, Resp any](c *gin.Context, g *gateway.Gateway[Req, Resp], req Req, status int) {
	resp, err := g.Handle(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, resp)
}
