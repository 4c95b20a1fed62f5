package model

import (
	"time"
)

// GORM이 CreatedAt, UpdatedAt을 자동으로 관리
// CreatedBy, UpdatedBy는 Service에서 인증된 회원 ID로 설정
type BaseEntity struct {
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
	CreatedBy *int64    `gorm:"column:created_by"`
	UpdatedBy *int64    `gorm:"column:updated_by"`
}

// Models returns every persistent model in dependency order (FK 참조 순서)
func Models() []any {
	return []any{
		&Member{},
	}
}
