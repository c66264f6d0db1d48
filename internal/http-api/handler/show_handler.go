package handler

import (
	"net/http"
	"strconv"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

// Status codes and error shapes differ between the five resource handlers.
// The frontend depends on each resource's exact behavior, so none of them
// are unified here.

type ShowHandler struct {
	svc service.ShowService
}

func NewShowHandler(svc service.ShowService) *ShowHandler {
	return &ShowHandler{svc: svc}
}

func (h *ShowHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List returns every show as a bare array, unpaginated.
func (h *ShowHandler) List(c *gin.Context) {
	list, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ShowHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	show, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if show == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Show not found"})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (h *ShowHandler) Create(c *gin.Context) {
	var show models.Show
	// bind errors fall through; a malformed payload persists a zero-value row
	c.ShouldBindJSON(&show)

	if err := h.svc.Create(c.Request.Context(), &show); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, show)
}

func (h *ShowHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var show models.Show
	c.ShouldBindJSON(&show)

	if err := h.svc.Update(c.Request.Context(), id, &show); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, show)
}

func (h *ShowHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
