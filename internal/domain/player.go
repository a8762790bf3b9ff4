package domain

import "time"

// Role is a capability tag consumed by the boundary layer; the core
// never branches on it beyond "is privileged".
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
	SkillProfessional SkillLevel = "professional"
)

func (s SkillLevel) Valid() bool {
	switch s {
	case SkillBeginner, SkillIntermediate, SkillAdvanced, SkillProfessional:
		return true
	}
	return false
}

type Player struct {
	ID         string     `gorm:"primaryKey" json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      string     `gorm:"uniqueIndex" json:"email"`
	Phone      string     `json:"phone,omitempty"`
	Role       Role       `gorm:"index" json:"role"`
	SkillLevel SkillLevel `json:"skill_level,omitempty"`
	Active     bool       `gorm:"index" json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (p *Player) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

func (p *Player) IsAdmin() bool { return p.Role == RoleAdmin }
