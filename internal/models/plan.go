package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Plan represents a fund holding plan.
type Plan struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	ShortID     string         `gorm:"size:8;uniqueIndex;not null" json:"shortId"` // 8 位数字短 ID，方便口头/手工引用
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"size:1000" json:"description,omitempty"`
	Rules       datatypes.JSON `json:"rules,omitempty"` // 计划规则，原样存储，不做校验
	CreatedAt   time.Time      `json:"createdAt"`
}

// BeforeCreate fills the primary key when the caller did not set one.
func (p *Plan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
