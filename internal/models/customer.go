package models

import "github.com/google/uuid"

type Customer struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string    `gorm:"index;not null" json:"name"`
	Email    string    `json:"email"`
	ImageURL string    `json:"image_url"`
}
