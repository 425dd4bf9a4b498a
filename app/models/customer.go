package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Customer struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:254;not null;uniqueIndex"`
	Phone     string `gorm:"size:20"`
	Address   string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Customer) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}
