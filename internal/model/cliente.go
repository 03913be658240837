package model

import (
	"time"

	"github.com/google/uuid"
)

// Cliente identifies a customer by CUIL (Argentine tax id).
// CUIL uniqueness is enforced by the store.
type Cliente struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Nombre    string    `gorm:"index;not null"`
	CUIL      string    `gorm:"uniqueIndex;not null;column:cuil"`
	Telefono  *string
	Email     *string
	Direccion *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cliente) TableName() string { return "customers" }
