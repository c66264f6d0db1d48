package handler

import (
	"net/http"
	"strconv"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type CharacterHandler struct {
	svc service.CharacterService
}

func NewCharacterHandler(svc service.CharacterService) *CharacterHandler {
	return &CharacterHandler{svc: svc}
}

func (h *CharacterHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	// PATCH, while shows and episodes take PUT
	rg.PATCH("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns a bare array. ?search= takes precedence over ?showId=, and a
// present-but-empty search still hits the search path.
func (h *CharacterHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if search, ok := c.GetQuery("search"); ok {
		list, err := h.svc.Search(ctx, search)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
		return
	}

	if v, ok := c.GetQuery("showId"); ok {
		showID, _ := strconv.ParseInt(v, 10, 64)
		list, err := h.svc.GetByShowID(ctx, showID)
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

// Get surfaces the raw store failure for a missing id instead of a 404.
func (h *CharacterHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ch, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ch)
}

// Create responds 200, not 201; shows and episodes respond 201.
func (h *CharacterHandler) Create(c *gin.Context) {
	var ch models.Character
	c.ShouldBindJSON(&ch)

	if err := h.svc.Create(c.Request.Context(), &ch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *CharacterHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var ch models.Character
	c.ShouldBindJSON(&ch)

	if err := h.svc.Update(c.Request.Context(), id, &ch); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *CharacterHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusOK)
}
