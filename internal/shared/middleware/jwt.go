package middleware

import (
	"errors"
	"net/http"
	"strings"

	sharedContext "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/context"
	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Register JWT error responses
// 어떤 토큰 오류든 클라이언트에는 동일한 응답을 준다
func init() {
	for _, errInfo := range []string{missingToken, invalidToken, expiredToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedContext.Unauthenticated)
	}
}

// JWT authenticates the request with an access token and stores the member in the gin context
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 요청 정보 (로깅용, request_id는 request logger에 이미 바인딩됨)
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"user_agent", c.Request.UserAgent(),
		)

		// Step 1: 토큰 추출
		rawToken, err := extractToken(c)
		if err != nil {
			// 에러 발생 지점에서 바로 로깅
			log.Warn("JWT 토큰 추출 실패", "step", "extract_token", "error", err.Error())
			handleJWTError(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(rawToken, token.ACCESS)
		if err != nil {
			// 에러 발생 지점에서 바로 로깅
			log.Warn("JWT 토큰 검증 실패", "step", "validate_token", "error", err.Error())
			handleJWTError(c, mapTokenError(err))
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		c.Set(sharedContext.MemberIDKey, claims.MemberID)
		c.Set(sharedContext.MemberEmailKey, claims.Email)
		c.Next()
	}
}

// handleJWTError handles JWT errors using the standardized error response format
// Note: Logging is done at the point of error detection in JWT() function
func handleJWTError(c *gin.Context, err error) {
	if resp, ok := sharedError.ResolveDomainError(err); ok {
		c.JSON(resp.Status, resp)
	} else {
		// 예상치 못한 에러 → Fallback 응답
		c.JSON(http.StatusUnauthorized, sharedError.ErrorResponse{
			Status:  http.StatusUnauthorized,
			Code:    "AUTH-999",
			Message: "인증에 실패했습니다.",
		})
	}
	c.Abort()
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], BearerScheme) {
		return "", ErrInvalidToken
	}

	rawToken := strings.TrimSpace(parts[1])
	if rawToken == "" {
		return "", ErrInvalidToken
	}

	return rawToken, nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
