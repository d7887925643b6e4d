package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Fund represents a single fund holding inside a plan.
// 金额字段用 decimal 存储，避免浮点误差；对外序列化为字符串。
type Fund struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID    uuid.UUID       `gorm:"type:uuid;index;not null" json:"planId"`
	Plan      Plan            `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	FundCode  string          `gorm:"size:32;not null" json:"fundCode"`
	FundName  string          `gorm:"size:50" json:"fundName,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null" json:"amount"`
	FeeRate   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0" json:"feeRate"`
	CreatedAt time.Time       `json:"createdAt"`
}

func (f *Fund) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
