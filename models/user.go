package models

import "time"

type User struct {
	ID        string  `gorm:"primaryKey" json:"id"` // identity-provider UID
	Email     string  `gorm:"unique;not null" json:"email"`
	Name      string  `json:"name"`
	Picture   string  `json:"picture"`
	Provider  string  `json:"provider"`
	Orders    []Order `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	CreatedAt time.Time
}
