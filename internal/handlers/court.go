package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/service"
)

type CourtHandler struct {
	svc *service.CourtSvc
}

func NewCourtHandler(s *service.CourtSvc) *CourtHandler {
	return &CourtHandler{svc: s}
}

// POST /v1/courts
func (h *CourtHandler) Create(c *gin.Context) {
	var in struct {
		Name           string  `json:"name" binding:"required"`
		Surface        string  `json:"surface"`
		TariffPerHour  float64 `json:"tariff_per_hour"`
		Description    string  `json:"description"`
		PlayerCapacity int     `json:"player_capacity"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	court, err := h.svc.Create(c.Request.Context(), domain.Court{
		Name:           in.Name,
		Surface:        domain.Surface(in.Surface),
		TariffPerHour:  in.TariffPerHour,
		Description:    in.Description,
		PlayerCapacity: in.PlayerCapacity,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "court": court})
}

// GET /v1/courts?page=1&page_size=20&q=name
func (h *CourtHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	courts, err := h.svc.List(c.Request.Context(), int32(page-1), int32(size), c.Query("q"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "courts": courts})
}

// GET /v1/courts/:id
func (h *CourtHandler) Get(c *gin.Context) {
	court, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "court": court})
}

// PUT /v1/courts/:id
func (h *CourtHandler) Update(c *gin.Context) {
	var in struct {
		Name           string  `json:"name" binding:"required"`
		Surface        string  `json:"surface" binding:"required"`
		TariffPerHour  float64 `json:"tariff_per_hour"`
		Description    string  `json:"description"`
		PlayerCapacity int     `json:"player_capacity" binding:"required"`
		Active         bool    `json:"active"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	court, err := h.svc.Update(c.Request.Context(), domain.Court{
		ID:             c.Param("id"),
		Name:           in.Name,
		Surface:        domain.Surface(in.Surface),
		TariffPerHour:  in.TariffPerHour,
		Description:    in.Description,
		PlayerCapacity: in.PlayerCapacity,
		Active:         in.Active,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "court": court})
}

// DELETE /v1/courts/:id (soft: deactivates, never drops rows)
func (h *CourtHandler) Deactivate(c *gin.Context) {
	if err := h.svc.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /v1/courts/:id/availability?date=2026-08-27
func (h *CourtHandler) Availability(c *gin.Context) {
	date, err := time.Parse(time.DateOnly, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
		return
	}
	slots, err := h.svc.AvailableSlots(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	type slotOut struct {
		Time        string `json:"time"`
		DisplayTime string `json:"display_time"`
	}
	out := make([]slotOut, 0, len(slots))
	for _, s := range slots {
		out = append(out, slotOut{Time: s.String(), DisplayTime: s.Display()})
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "slots": out})
}
