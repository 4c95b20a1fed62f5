package auth

import (
	"net/http"

	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
)

const (
	incorrectEmailPassword = "INCORRECT_EMAIL_PASSWORD" // errInfo
	invalidRefreshToken    = "INVALID_REFRESH_TOKEN"    // errInfo
)

var (
	ErrIncorrectEmailPassword = sharedError.NewDomainError(incorrectEmailPassword)
	// 만료, 위조, access token 사용, 탈퇴한 회원 모두 동일하게 취급
	ErrInvalidRefreshToken = sharedError.NewDomainError(invalidRefreshToken)
)

func init() {
	sharedError.RegisterDomainErrorResponse(incorrectEmailPassword, sharedError.ErrorResponse{
		Status:  http.StatusBadRequest,
		Code:    "AUTH-003",
		Message: "이메일 또는 비밀번호가 일치하지 않습니다.",
	})
	sharedError.RegisterDomainErrorResponse(invalidRefreshToken, sharedError.ErrorResponse{
		Status:  http.StatusUnauthorized,
		Code:    "AUTH-004",
		Message: "다시 로그인 해주세요.",
	})
}
