package models

import "time"

// User represents a registered account of the shop.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"` // bcrypt hash, never serialized
	Name      string    `json:"name" gorm:"type:varchar(255)" validate:"required,max=255"`
	Role      Role      `json:"role" gorm:"type:varchar(50);default:user"`
	CreatedAt time.Time `json:"created_at"`
}
