package handler

import (
	"net/http"
	"strconv"

	"fanhub/internal/http-api/models"
	"fanhub/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type EpisodeHandler struct {
	svc service.EpisodeService
}

func NewEpisodeHandler(svc service.EpisodeService) *EpisodeHandler {
	return &EpisodeHandler{svc: svc}
}

func (h *EpisodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}

// List wraps results in {success, count, data}, unlike the other resources.
func (h *EpisodeHandler) List(c *gin.Context) {
	var (
		episodes []models.Episode
		err      error
	)

	if v := c.Query("seasonId"); v != "" {
		seasonID, _ := strconv.ParseInt(v, 10, 64)
		episodes, err = h.svc.GetBySeasonID(c.Request.Context(), seasonID)
	} else {
		episodes, err = h.svc.GetAll(c.Request.Context())
	}
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(episodes),
		"data":    episodes,
	})
}

// Get answers a missing id with an empty-body 404.
func (h *EpisodeHandler) Get(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	ep, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	if ep == nil {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *EpisodeHandler) Create(c *gin.Context) {
	var ep models.Episode
	c.ShouldBindJSON(&ep)

	if err := h.svc.Create(c.Request.Context(), &ep); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusCreated, ep)
}

func (h *EpisodeHandler) Update(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	var ep models.Episode
	c.ShouldBindJSON(&ep)

	if err := h.svc.Update(c.Request.Context(), id, &ep); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, ep)
}

func (h *EpisodeHandler) Delete(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusNoContent)
}
