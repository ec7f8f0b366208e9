package models

import "time"

// Role is the application role assigned to a profile. The set is closed;
// route guards only understand these three values.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleForeman Role = "foreman"
	RoleTrucker Role = "trucker"
)

// DefaultRole is assigned when a profile has no stored role.
const DefaultRole = RoleForeman

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleForeman, RoleTrucker:
		return true
	}
	return false
}

// Profile is the per-identity record. The primary key is the identity
// provider's subject (uid), not a locally generated id: profiles are created
// lazily on first sign-in and never deleted by this service.
type Profile struct {
	ID          string    `gorm:"primaryKey;size:128" json:"id"`
	Email       string    `gorm:"size:255;index" json:"email"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	Role        Role      `gorm:"size:20;default:'foreman'" json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
