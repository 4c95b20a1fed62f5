package context

import (
	"net/http"
	"strconv"

	sharedError "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/error"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/logger"
	"github.com/gin-gonic/gin"
)

// Context keys for storing member authentication information
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
)

// Unauthenticated is sent when a protected handler runs without a member in context
var Unauthenticated = sharedError.ErrorResponse{
	Status:  http.StatusUnauthorized,
	Code:    "AUTH-000",
	Message: "로그인을 해주세요.",
}

// GetMemberID reads the member ID set by the JWT middleware.
// JWT claims carry it as a decimal string.
func GetMemberID(c *gin.Context) (uint32, bool) {
	value, exists := c.Get(MemberIDKey)
	if !exists {
		return 0, false
	}

	switch id := value.(type) {
	case uint32:
		return id, true
	case string:
		parsed, err := strconv.ParseUint(id, 10, 32)
		if err != nil || parsed == 0 {
			return 0, false
		}
		return uint32(parsed), true
	default:
		return 0, false
	}
}

func GetMemberEmail(c *gin.Context) string {
	return c.GetString(MemberEmailKey)
}

// RequireMemberID retrieves the authenticated member's ID from the Gin context.
// If it is missing, an authentication error response is sent and false is returned.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		c.AbortWithStatusJSON(Unauthenticated.Status, Unauthenticated)
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.",
			"path", c.Request.URL.Path,
		)
		return 0, false
	}
	return memberID, true
}
