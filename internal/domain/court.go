package domain

import "time"

type Surface string

const (
	SurfaceGlass Surface = "glass"
	SurfaceWall  Surface = "wall"
	SurfaceMixed Surface = "mixed"
)

func (s Surface) Valid() bool {
	switch s {
	case SurfaceGlass, SurfaceWall, SurfaceMixed:
		return true
	}
	return false
}

// Court is a padel court. Courts are never hard-deleted while
// reservations reference them; "deleting" flips Active off.
type Court struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex" json:"name"`
	Surface        Surface   `json:"surface"`
	TariffPerHour  float64   `gorm:"type:numeric(8,2)" json:"tariff_per_hour"`
	Description    string    `json:"description,omitempty"`
	PlayerCapacity int       `json:"player_capacity"`
	Active         bool      `gorm:"index" json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

const (
	MinPlayerCapacity = 2
	MaxPlayerCapacity = 6
)
