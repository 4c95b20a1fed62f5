package member

import (
	"context"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/model"
	"gorm.io/gorm"
)

// MemberRepository is stateless; every method runs against the db handle it is given,
// which may be the connection pool or an open transaction owned by the caller.
type MemberRepository struct{}

func NewMemberRepository() *MemberRepository {
	return &MemberRepository{}
}

// FindByName returns every member whose name is exactly equal to name (case-sensitive),
// ordered by id. No match yields an empty slice and a nil error.
// Query: SELECT * FROM member WHERE name = ? ORDER BY id
func (m *MemberRepository) FindByName(ctx context.Context, db *gorm.DB, name string) ([]model.Member, error) {
	members := make([]model.Member, 0)
	err := db.WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]model.Member, error) {
	members := make([]model.Member, 0)
	if err := db.WithContext(ctx).Order("id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (m *MemberRepository) IsExist(ctx context.Context, db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

func (m *MemberRepository) Create(ctx context.Context, db *gorm.DB, member *model.Member) error {
	return db.WithContext(ctx).Create(member).Error
}

func (m *MemberRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("email = ?", email).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (m *MemberRepository) FindByID(ctx context.Context, db *gorm.DB, ID uint32) (*model.Member, error) {
	var member model.Member
	err := db.WithContext(ctx).Where("id = ?", ID).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpdateName returns the number of rows affected (0 if the member does not exist)
func (m *MemberRepository) UpdateName(ctx context.Context, db *gorm.DB, ID uint32, name string, updatedBy *int64) (int64, error) {
	result := db.WithContext(ctx).
		Model(&model.Member{}).
		Where("id = ?", ID).
		Updates(map[string]any{
			"name":       name,
			"updated_by": updatedBy,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes the row permanently and returns the number of rows affected
func (m *MemberRepository) Delete(ctx context.Context, db *gorm.DB, ID uint32) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", ID).Delete(&model.Member{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
