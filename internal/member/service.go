package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"gorm.io/gorm"
)

type MemberService struct {
	db               *gorm.DB
	memberRepository *MemberRepository
}

func NewMemberService(db *gorm.DB, memberRepository *MemberRepository) *MemberService {
	return &MemberService{
		db:               db,
		memberRepository: memberRepository,
	}
}

// FindByName is read-only and runs outside a transaction.
// Persistence failures are wrapped, so errors.Is still matches the driver error.
func (s *MemberService) FindByName(ctx context.Context, name string) ([]MemberResponse, error) {
	members, err := s.memberRepository.FindByName(ctx, s.db, name)
	if err != nil {
		logger.FromContext(ctx).Error("이름으로 회원 조회 실패", "name", logger.MaskName(name), "error", err)
		return nil, fmt.Errorf("이름으로 회원 조회 실패: %w", err)
	}

	return toMemberResponses(members), nil
}

func (s *MemberService) FindAll(ctx context.Context) ([]MemberResponse, error) {
	members, err := s.memberRepository.FindAll(ctx, s.db)
	if err != nil {
		return nil, fmt.Errorf("회원 목록 조회 실패: %w", err)
	}

	return toMemberResponses(members), nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID uint32) (*MemberResponse, error) {
	member, err := s.memberRepository.FindByID(ctx, s.db, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil, fmt.Errorf("회원 조회 실패: %w", err)
	}

	response := toMemberResponse(member)
	return &response, nil
}

func (s *MemberService) GetProfile(ctx context.Context, memberID uint32) (*GetProfileResponse, error) {
	var response *GetProfileResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
			}
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		response = &GetProfileResponse{
			ID:      member.ID,
			Name:    member.Name,
			Email:   member.Email,
			Address: toAddressResponse(member.Address),
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func (s *MemberService) UpdateName(ctx context.Context, memberID uint32, name string) (*MemberResponse, error) {
	log := logger.FromContext(ctx)
	var response *MemberResponse

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		updatedBy := int64(memberID)
		affected, err := s.memberRepository.UpdateName(ctx, tx, memberID, name, &updatedBy)
		if err != nil {
			log.Error("회원 이름 변경 실패", "member_id", memberID, "error", err)
			return fmt.Errorf("회원 이름 변경 실패: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}

		member, err := s.memberRepository.FindByID(ctx, tx, memberID)
		if err != nil {
			return fmt.Errorf("회원 조회 실패: %w", err)
		}

		updated := toMemberResponse(member)
		response = &updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	log.Info("회원 이름 변경 성공", "member_id", memberID)
	return response, nil
}

// Withdraw permanently deletes the member
func (s *MemberService) Withdraw(ctx context.Context, memberID uint32) error {
	log := logger.FromContext(ctx)

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		affected, err := s.memberRepository.Delete(ctx, tx, memberID)
		if err != nil {
			log.Error("회원 탈퇴 실패", "member_id", memberID, "error", err)
			return fmt.Errorf("회원 탈퇴 실패: %w", err)
		}
		if affected == 0 {
			return fmt.Errorf("회원을 찾을 수 없습니다 memberID=%d %w", memberID, ErrMemberNotFound)
		}
		return nil
	})

	if err != nil {
		return err
	}

	log.Info("회원 탈퇴 완료", "member_id", memberID)
	return nil
}
