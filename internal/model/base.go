package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDBase 以 UUID 字符串作为主键；用户永不删除，因此没有软删除字段
// swagger:model
type UUIDBase struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"column:createdAt" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updatedAt" json:"updatedAt"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) (err error) {
	if b.ID == "" {
		b.ID = GenerateUUID()
	}
	return
}

func GenerateUUID() string {
	return uuid.New().String()
}
