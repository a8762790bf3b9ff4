package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/service"
)

type PlayerHandler struct {
	players      *service.PlayerSvc
	reservations *service.ReservationSvc
}

func NewPlayerHandler(players *service.PlayerSvc, reservations *service.ReservationSvc) *PlayerHandler {
	return &PlayerHandler{players: players, reservations: reservations}
}

// POST /v1/players
func (h *PlayerHandler) Create(c *gin.Context) {
	var in struct {
		FirstName  string `json:"first_name" binding:"required"`
		LastName   string `json:"last_name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone"`
		SkillLevel string `json:"skill_level"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	p, err := h.players.Create(c.Request.Context(), domain.Player{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		SkillLevel: domain.SkillLevel(in.SkillLevel),
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "player": p})
}

// GET /v1/players/:id
func (h *PlayerHandler) Get(c *gin.Context) {
	p, err := h.players.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "player": p})
}

// GET /v1/players?page=&page_size=&active=true
func (h *PlayerHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	activeOnly := c.Query("active") == "true"
	list, err := h.players.List(c.Request.Context(), int32(page-1), int32(size), activeOnly)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "players": list})
}

// PUT /v1/players/:id
func (h *PlayerHandler) Update(c *gin.Context) {
	var in struct {
		FirstName  string `json:"first_name" binding:"required"`
		LastName   string `json:"last_name" binding:"required"`
		Email      string `json:"email" binding:"required,email"`
		Phone      string `json:"phone"`
		SkillLevel string `json:"skill_level"`
		Active     bool   `json:"active"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	p, err := h.players.Update(c.Request.Context(), domain.Player{
		ID:         c.Param("id"),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Phone:      in.Phone,
		SkillLevel: domain.SkillLevel(in.SkillLevel),
		Active:     in.Active,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "player": p})
}

// POST /v1/players/:id/deactivate
func (h *PlayerHandler) Deactivate(c *gin.Context) {
	if err := h.players.Deactivate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// POST /v1/players/:id/activate (admin reinstatement)
func (h *PlayerHandler) Activate(c *gin.Context) {
	if err := h.players.Activate(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /v1/players/:id/reservations?active=true — active means confirmed
// and not yet past; otherwise the full history, newest first.
func (h *PlayerHandler) Reservations(c *gin.Context) {
	playerID := c.Param("id")
	if _, err := h.players.Get(c.Request.Context(), playerID); err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	f := domain.ReservationFilter{
		PlayerID: playerID,
		Page:     int32(page - 1),
		PageSize: int32(size),
	}
	if c.Query("active") == "true" {
		f.Status = domain.StatusConfirmed
		f.DateFrom = domain.DateOnly(time.Now())
	}
	list, total, err := h.reservations.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total": total, "reservations": list})
}
