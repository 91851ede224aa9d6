package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-cms/internal/gateway"
)

// ArticleHandler handles article HTTP requests.
type ArticleHandler struct {
	gateways *gateway.ArticleGateways
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(gateways *gateway.ArticleGateways) *ArticleHandler {
	return &ArticleHandler{gateways: gateways}
}

// Register mounts the article routes on rg.
func (h *ArticleHandler) Register(rg *gin.RouterGroup) {
	articles := rg.Group("/articles")
	articles.POST("", h.Create)
	articles.GET("", h.List)
	articles.GET("/:id", h.Get)
	articles.PUT("/:id", h.Update)
	articles.PATCH("/:id/autosave", h.AutoSave)
	articles.POST("/:id/submit", h.Submit)
	articles.POST("/:id/review", h.Review)
	articles.POST("/:id/publish", h.Publish)
	articles.DELETE("/:id", h.Delete)
}

// Create handles POST /api/v1/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req gateway.CreateArticleRequest
	if !bindJSON(c, &req, false) {
		return
	}
	serve(c, h.gateways.Create, req, http.StatusCreated)
}

// List handles GET /api/v1/articles?page=&limit=&status=&author_id=
func (h *ArticleHandler) List(c *gin.Context) {
	var req gateway.ListArticlesRequest
	if !bindQuery(c, &req) {
		return
	}
	serve(c, h.gateways.List, req, http.StatusOK)
}

// Get handles GET /api/v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	serve(c, h.gateways.Get, gateway.ArticleIDRequest{ArticleID: c.Param(paramID)}, http.StatusOK)
}

// Update handles PUT /api/v1/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	var req gateway.UpdateArticleRequest
	if !bindJSON(c, &req, false) {
		return
	}
	req.ArticleID = c.Param(paramID)
	serve(c, h.gateways.Update, req, http.StatusOK)
}

// AutoSave handles PATCH /api/v1/articles/:id/autosave
func (h *ArticleHandler) AutoSave(c *gin.Context) {
	var req gateway.AutoSaveArticleRequest
	if !bindJSON(c, &req, true) {
		return
	}
	req.ArticleID = c.Param(paramID)
	serve(c, h.gateways.AutoSave, req, http.StatusOK)
}

// Submit handles POST /api/v1/articles/:id/submit
func (h *ArticleHandler) Submit(c *gin.Context) {
	serve(c, h.gateways.Submit, gateway.ArticleIDRequest{ArticleID: c.Param(paramID)}, http.StatusOK)
}

// Review handles POST /api/v1/articles/:id/review
func (h *ArticleHandler) Review(c *gin.Context) {
	var req gateway.ReviewArticleRequest
	if !bindJSON(c, &req, false) {
		return
	}
	req.ArticleID = c.Param(paramID)
	serve(c, h.gateways.Review, req, http.StatusOK)
}

// Publish handles POST /api/v1/articles/:id/publish. The body is optional.
func (h *ArticleHandler) Publish(c *gin.Context) {
	var req gateway.PublishArticleRequest
	if !bindJSON(c, &req, true) {
		return
	}
	req.ArticleID = c.Param(paramID)
	serve(c, h.gateways.Publish, req, http.StatusOK)
}

// Delete handles DELETE /api/v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	serve(c, h.gateways.Delete, gateway.ArticleIDRequest{ArticleID: c.Param(paramID)}, http.StatusOK)
}
