package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/you/padel-club/internal/domain"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(db *gorm.DB) *ReservationRepo {
	return &ReservationRepo{db: db}
}

// Migrate creates the reservations table plus the partial unique index
// that backs the booking-conflict guarantee: at most one confirmed row
// per (court, date, start). Non-confirmed rows may share the key so a
// cancelled slot can be rebooked.
func (r *ReservationRepo) Migrate() error {
	if err := r.db.AutoMigrate(&domain.Reservation{}); err != nil {
		return err
	}
	return r.db.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS uniq_confirmed_reservation
		 ON reservations (court_id, date, start_time)
		 WHERE status = 'confirmed'`,
	).Error
}

// CreateConfirmed persists a new confirmed reservation, closing the
// check-then-write race in a txn: candidate conflicting rows are locked
// FOR UPDATE before the insert, and a duplicate slipping past the lock
// (e.g. committed by a concurrent txn) trips the partial unique index.
// Either path surfaces as domain.ErrSlotTaken; first committer wins.
func (r *ReservationRepo) CreateConfirmed(ctx context.Context, res *domain.Reservation) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing domain.Reservation
		err := tx.Model(&domain.Reservation{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("court_id = ? AND date = ? AND status = ?", res.CourtID, res.Date, domain.StatusConfirmed).
			Where("start_time < ? AND end_time > ?", res.EndTime, res.StartTime). // overlap condition
			Take(&existing).Error

		if err == nil {
			return domain.ErrSlotTaken
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if res.ID == "" {
			res.ID = uuid.NewString()
		}
		return tx.Create(res).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrSlotTaken
	}
	return err
}

func (r *ReservationRepo) ByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	return r.db.WithContext(ctx).Save(res).Error
}

// ConfirmedByCourtDate lists the confirmed reservations occupying
// slots on a court for one date, ascending by start time.
func (r *ReservationRepo) ConfirmedByCourtDate(ctx context.Context, courtID string, date time.Time) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("court_id = ? AND date = ? AND status = ?", courtID, date, domain.StatusConfirmed).
		Order("start_time ASC").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepo) List(ctx context.Context, f domain.ReservationFilter) ([]domain.Reservation, int64, error) {
	size := f.PageSize
	if size <= 0 {
		size = 20
	}
	page := f.Page
	if page < 0 {
		page = 0
	}
	qb := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if f.PlayerID != "" {
		qb = qb.Where("player_id = ?", f.PlayerID)
	}
	if f.CourtID != "" {
		qb = qb.Where("court_id = ?", f.CourtID)
	}
	if f.Status != "" {
		qb = qb.Where("status = ?", f.Status)
	}
	if !f.DateFrom.IsZero() {
		qb = qb.Where("date >= ?", f.DateFrom)
	}
	if !f.DateTo.IsZero() {
		qb = qb.Where("date <= ?", f.DateTo)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Reservation
	if err := qb.Order("date DESC, start_time DESC").
		Limit(int(size)).Offset(int(page * size)).
		Find(&out).Error; err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// UpdateStatusBulk moves every listed reservation that is still
// confirmed into the target status; rows in any other status are left
// untouched. Returns how many rows changed.
func (r *ReservationRepo) UpdateStatusBulk(ctx context.Context, ids []string, to domain.ReservationStatus) (int64, error) {
	tx := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("id IN ? AND status = ?", ids, domain.StatusConfirmed).
		Update("status", to)
	return tx.RowsAffected, tx.Error
}

// Stats aggregates the reporting period: per-status counts, revenue over
// confirmed + completed rows, and per-court usage ordered busiest first.
func (r *ReservationRepo) Stats(ctx context.Context, from, to time.Time) (*domain.ReservationStats, error) {
	base := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("date BETWEEN ? AND ?", from, to)

	var rows []struct {
		Status domain.ReservationStatus
		N      int64
	}
	if err := base.Session(&gorm.Session{}).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := &domain.ReservationStats{}
	for _, row := range rows {
		stats.Total += row.N
		switch row.Status {
		case domain.StatusConfirmed:
			stats.Confirmed = row.N
		case domain.StatusCancelled:
			stats.Cancelled = row.N
		case domain.StatusCompleted:
			stats.Completed = row.N
		case domain.StatusNoShow:
			stats.NoShow = row.N
		}
	}

	if err := base.Session(&gorm.Session{}).
		Where("status IN ?", []domain.ReservationStatus{domain.StatusConfirmed, domain.StatusCompleted}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&stats.Revenue).Error; err != nil {
		return nil, err
	}

	if err := base.Session(&gorm.Session{}).
		Select("court_id, COUNT(*) AS reservations, COALESCE(SUM(total_price), 0) AS revenue").
		Group("court_id").
		Order("reservations DESC").
		Scan(&stats.ByCourt).Error; err != nil {
		return nil, err
	}
	return stats, nil
}
