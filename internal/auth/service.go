package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/changhyeonkim/jpashop/go-api-server/internal/member"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/model"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	db               *gorm.DB
	memberRepository *member.MemberRepository
	tokenManager     token.Manager
}

func NewAuthService(db *gorm.DB, memberRepository *member.MemberRepository, tokenManager token.Manager) *AuthService {
	return &AuthService{
		db:               db,
		memberRepository: memberRepository,
		tokenManager:     tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Find member by email
	found, err := a.memberRepository.FindByEmail(ctx, a.db, request.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("로그인 실패 - member email not found", "email", logger.MaskEmail(request.Email))
			return nil, fmt.Errorf("login: %w", ErrIncorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Validate password
	if err := bcrypt.CompareHashAndPassword([]byte(found.Password), []byte(request.Password)); err != nil {
		log.Warn("로그인 실패 - invalid password", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("login: %w", ErrIncorrectEmailPassword)
	}

	// 3. Generate JWT tokens
	response, err := a.issueTokens(ctx, found)
	if err != nil {
		return nil, err
	}

	log.Info("로그인 성공", "email", logger.MaskEmail(request.Email))
	return response, nil
}

// Refresh exchanges a refresh token for a new token pair.
// 탈퇴한 회원의 refresh token은 거부
func (a *AuthService) Refresh(ctx context.Context, request *RefreshRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	claims, err := a.tokenManager.ValidateToken(request.RefreshToken, token.REFRESH)
	if err != nil {
		log.Warn("refresh token 검증 실패", "error", err.Error())
		return nil, fmt.Errorf("validate refresh token: %w", ErrInvalidRefreshToken)
	}

	memberID, err := strconv.ParseUint(claims.MemberID, 10, 32)
	if err != nil {
		log.Warn("refresh token member_id 형식 오류", "member_id", claims.MemberID)
		return nil, fmt.Errorf("memberID=%q: %w", claims.MemberID, ErrInvalidRefreshToken)
	}

	found, err := a.memberRepository.FindByID(ctx, a.db, uint32(memberID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("refresh 실패 - 존재하지 않는 회원", "member_id", memberID)
			return nil, fmt.Errorf("memberID=%d: %w", memberID, ErrInvalidRefreshToken)
		}
		log.Error("refresh 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("find member: %w", err)
	}

	response, err := a.issueTokens(ctx, found)
	if err != nil {
		return nil, err
	}

	log.Info("토큰 재발급 성공", "member_id", found.ID)
	return response, nil
}

func (a *AuthService) issueTokens(ctx context.Context, found *model.Member) (*LoginResponse, error) {
	log := logger.FromContext(ctx)
	memberID := strconv.FormatUint(uint64(found.ID), 10)

	accessToken, err := a.tokenManager.GenerateAccessToken(memberID, found.Email)
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(memberID, found.Email)
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Signup creates a member. 이메일은 unique, 이름은 중복 허용
func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	log := logger.FromContext(ctx)
	var response *SignupResponse

	err := database.WithTransaction(ctx, a.db, func(tx *gorm.DB) error {
		exists, err := a.memberRepository.IsExist(ctx, tx, request.Email)
		if err != nil {
			log.Error("Failed to check member existence", "error", err)
			return fmt.Errorf("check member existence: %w", err)
		}
		if exists {
			log.Warn("Member already exists", "email", logger.MaskEmail(request.Email))
			return fmt.Errorf("email=%s: %w", logger.MaskEmail(request.Email), member.ErrMemberAlreadyExists)
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Error("Failed to hash password", "error", err)
			return fmt.Errorf("hash password: %w", err)
		}

		newMember := model.NewMember(request.Name, request.Email, string(hashedPassword), toAddress(request.Address))
		if err := a.memberRepository.Create(ctx, tx, newMember); err != nil {
			log.Error("Failed to create member", "error", err)
			return fmt.Errorf("create member: %w", err)
		}

		response = &SignupResponse{ID: newMember.ID}
		log.Info("Member created successfully", "member_id", newMember.ID, "email", logger.MaskEmail(request.Email))
		return nil
	})

	if err != nil {
		return nil, err
	}

	return response, nil
}

func toAddress(request *AddressRequest) model.Address {
	if request == nil {
		return model.Address{}
	}
	return model.NewAddress(request.City, request.Street, request.Zipcode)
}
