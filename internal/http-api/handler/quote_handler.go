package handler

import (
	"net/http"
	"strconv"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type QuoteHandler struct {
	svc service.QuoteService
}

func NewQuoteHandler(svc service.QuoteService) *QuoteHandler {
	return &QuoteHandler{svc: svc}
}

func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.POST("/:id/like", h.Like)
	rg.DELETE("/:id", h.Delete)
}

func (h *QuoteHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if v := c.Query("characterId"); v != "" {
		characterID, _ := strconv.ParseInt(v, 10, 64)
		list, err := h.svc.GetByCharacterID(ctx, characterID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	list, err := h.svc.GetAll(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get answers a missing quote with a literal null body and a 200.
func (h *QuoteHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	q, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// Create responds 200, not 201, same as characters.
func (h *QuoteHandler) Create(c *gin.Context) {
	var q models.Quote
	c.ShouldBindJSON(&q)

	if err := h.svc.Create(c.Request.Context(), &q); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

// Like fails loudly on a missing quote or a NULL likes_count.
func (h *QuoteHandler) Like(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	q, err := h.svc.Like(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
