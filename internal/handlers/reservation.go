package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/you/padel-club/internal/domain"
	"github.com/you/padel-club/internal/schedule"
	"github.com/you/padel-club/internal/service"
)

type ReservationHandler struct {
	svc *service.ReservationSvc
}

func NewReservationHandler(s *service.ReservationSvc) *ReservationHandler {
	return &ReservationHandler{svc: s}
}

// POST /v1/reservations
func (h *ReservationHandler) Create(c *gin.Context) {
	var in struct {
		CourtID    string   `json:"court_id" binding:"required"`
		PlayerID   string   `json:"player_id" binding:"required"`
		Date       string   `json:"date" binding:"required"`       // YYYY-MM-DD
		StartTime  string   `json:"start_time" binding:"required"` // HH:MM
		EndTime    string   `json:"end_time"`                      // optional override
		Notes      string   `json:"notes"`
		TotalPrice *float64 `json:"total_price"` // optional override
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	date, err := time.Parse(time.DateOnly, in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
		return
	}
	start, err := schedule.Parse(in.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "start_time must be HH:MM"})
		return
	}
	input := service.CreateReservationInput{
		CourtID:  in.CourtID,
		PlayerID: in.PlayerID,
		Date:     date,
		Start:    start,
		Notes:    in.Notes,
		Price:    in.TotalPrice,
	}
	if in.EndTime != "" {
		end, err := schedule.Parse(in.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "end_time must be HH:MM"})
			return
		}
		input.End = &end
	}
	res, err := h.svc.Create(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation_id": res.ID, "reservation": res})
}

// POST /v1/reservations/quick — the calendar's one-click flow; same
// write path as Create, trimmed payload.
func (h *ReservationHandler) QuickBook(c *gin.Context) {
	var in struct {
		CourtID  string `json:"court_id" binding:"required"`
		PlayerID string `json:"player_id" binding:"required"`
		Date     string `json:"date" binding:"required"`
		Time     string `json:"time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	date, err := time.Parse(time.DateOnly, in.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date must be YYYY-MM-DD"})
		return
	}
	start, err := schedule.Parse(in.Time)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "time must be HH:MM"})
		return
	}
	res, err := h.svc.Create(c.Request.Context(), service.CreateReservationInput{
		CourtID:  in.CourtID,
		PlayerID: in.PlayerID,
		Date:     date,
		Start:    start,
	})
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "reservation_id": res.ID})
}

// POST /v1/reservations/:id/cancel
func (h *ReservationHandler) Cancel(c *gin.Context) {
	var in struct {
		ActorID string `json:"actor_id"`
	}
	_ = c.ShouldBindJSON(&in) // body optional
	ok, err := h.svc.Cancel(c.Request.Context(), c.Param("id"), in.ActorID)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	// ok=false is a lifecycle no-op, not an error
	c.JSON(http.StatusOK, gin.H{"success": ok})
}

// GET /v1/reservations/:id
func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "reservation": res})
}

// GET /v1/reservations?player_id=&court_id=&status=&date_from=&date_to=&page=&page_size=
func (h *ReservationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	f := domain.ReservationFilter{
		PlayerID: c.Query("player_id"),
		CourtID:  c.Query("court_id"),
		Status:   domain.ReservationStatus(c.Query("status")),
		Page:     int32(page - 1),
		PageSize: int32(size),
	}
	if v := c.Query("date_from"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_from must be YYYY-MM-DD"})
			return
		}
		f.DateFrom = d
	}
	if v := c.Query("date_to"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_to must be YYYY-MM-DD"})
			return
		}
		f.DateTo = d
	}
	list, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "total": total, "reservations": list})
}

// POST /v1/reservations/complete {ids} (admin bulk)
func (h *ReservationHandler) Complete(c *gin.Context) {
	h.bulkTransition(c, h.svc.Complete)
}

// POST /v1/reservations/no-show {ids} (admin bulk)
func (h *ReservationHandler) NoShow(c *gin.Context) {
	h.bulkTransition(c, h.svc.MarkNoShow)
}

func (h *ReservationHandler) bulkTransition(c *gin.Context, apply func(ctx context.Context, ids []string) (int64, error)) {
	var in struct {
		IDs []string `json:"ids" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	n, err := apply(c.Request.Context(), in.IDs)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "updated": n})
}

// GET /v1/reports/reservations?date_from=&date_to=
func (h *ReservationHandler) Stats(c *gin.Context) {
	var from, to time.Time
	var err error
	if v := c.Query("date_from"); v != "" {
		if from, err = time.Parse(time.DateOnly, v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_from must be YYYY-MM-DD"})
			return
		}
	}
	if v := c.Query("date_to"); v != "" {
		if to, err = time.Parse(time.DateOnly, v); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "date_to must be YYYY-MM-DD"})
			return
		}
	}
	stats, err := h.svc.Stats(c.Request.Context(), from, to)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"success": false, "error": errorMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "stats": stats})
}
