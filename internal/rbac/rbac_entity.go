package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RolePermission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Resource string    `gorm:"type:varchar(50);not null"`
	Action   string    `gorm:"type:varchar(50);not null"`
}

type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	RoleID uuid.UUID `gorm:"type:uuid;not null;index"`
}
