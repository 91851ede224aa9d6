package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/gateway"
)

// CategoryHandler handles category HTTP requests.
type CategoryHandler struct {
	gateways *gateway.CategoryGateways
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(gateways *gateway.CategoryGateways) *CategoryHandler {
	return &CategoryHandler{gateways: gateways}
}

// Register mounts the category routes on rg. /tree is registered before
// /:id so it is not read as an id.
func (h *CategoryHandler) Register(rg *gin.RouterGroup) {
	categories := rg.Group("/categories")
	categories.POST("", h.Create)
	categories.GET("/tree", h.Tree)
	categories.GET("/:id", h.Get)
	categories.PUT("/:id", h.Update)
	categories.DELETE("/:id", h.Delete)
}

// Create handles POST /api/v1/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req gateway.CategoryRequest
	if !bindJSON(c, &req, false) {
		return
	}
	req.CategoryID = ""
	serve(c, h.gateways.Create, req, http.StatusCreated)
}

// Tree handles GET /api/v1/categories/tree?max_depth=
func (h *CategoryHandler) Tree(c *gin.Context) {
	var req gateway.CategoryTreeRequest
	if !bindQuery(c, &req) {
		return
	}
	serve(c, h.gateways.Tree, req, http.StatusOK)
}

// Get handles GET /api/v1/categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	serve(c, h.gateways.Get, gateway.CategoryIDRequest{CategoryID: c.Param(paramID)}, http.StatusOK)
}

// Update handles PUT /api/v1/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req gateway.CategoryRequest
	if !bindJSON(c, &req, false) {
		return
	}
	req.CategoryID = c.Param(paramID)
	serve(c, h.gateways.Update, req, http.StatusOK)
}

// Delete handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	serve(c, h.gateways.Delete, gateway.CategoryIDRequest{CategoryID: c.Param(paramID)}, http.StatusOK)
}
