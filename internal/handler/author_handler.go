package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/gateway"
)

// AuthorHandler handles author HTTP requests.
type AuthorHandler struct {
	gateways *gateway.AuthorGateways
}

// NewAuthorHandler creates a new AuthorHandler.
func NewAuthorHandler(gateways *gateway.AuthorGateways) *AuthorHandler {
	return &AuthorHandler{gateways: gateways}
}

// Register mounts the author routes on rg.
func (h *AuthorHandler) Register(rg *gin.RouterGroup) {
	authors := rg.Group("/authors")
	authors.POST("", h.Create)
	authors.GET("", h.List)
	authors.GET("/:id", h.Get)
	authors.PUT("/:id", h.Update)
	authors.DELETE("/:id", h.Delete)
}

// Create handles POST /api/v1/authors
func (h *AuthorHandler) Create(c *gin.Context) {
	var req gateway.CreateAuthorRequest
	if !bindJSON(c, &req, false) {
		return
	}
	serve(c, h.gateways.Create, req, http.StatusCreated)
}

// List handles GET /api/v1/authors?page=&limit=
func (h *AuthorHandler) List(c *gin.Context) {
	var req gateway.ListAuthorsRequest
	if !bindQuery(c, &req) {
		return
	}
	serve(c, h.gateways.List, req, http.StatusOK)
}

// Get handles GET /api/v1/authors/:id
func (h *AuthorHandler) Get(c *gin.Context) {
	serve(c, h.gateways.Get, gateway.AuthorIDRequest{AuthorID: c.Param(paramID)}, http.StatusOK)
}

// Update handles PUT /api/v1/authors/:id
func (h *AuthorHandler) Update(c *gin.Context) {
	var req gateway.UpdateAuthorRequest
	if !bindJSON(c, &req, false) {
		return
	}
	req.AuthorID = c.Param(paramID)
	serve(c, h.gateways.Update, req, http.StatusOK)
}

// Delete handles DELETE /api/v1/authors/:id
func (h *AuthorHandler) Delete(c *gin.Context) {
	serve(c, h.gateways.Delete, gateway.AuthorIDRequest{AuthorID: c.Param(paramID)}, http.StatusOK)
}
