package member

import (
	"fmt"
	"net/http"
	"strconv"

	sharedContext "github.com/changhyeonkim/jpashop/go-api-server/internal/shared/context"
	"github.com/changhyeonkim/jpashop/go-api-server/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

const nameQueryParam = "name"

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// ListMembers handles GET /members and GET /members?name=
// name 파라미터가 존재하면 (빈 문자열 포함) 이름 일치 조회, 없으면 전체 조회
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var (
		members []MemberResponse
		err     error
	)

	if name, ok := c.GetQuery(nameQueryParam); ok {
		members, err = h.memberService.FindByName(c.Request.Context(), name)
	} else {
		members, err = h.memberService.FindAll(c.Request.Context())
	}
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ListMembersResponse{
		Count:   len(members),
		Members: members,
	})
}

func (h *MemberHandler) GetMember(c *gin.Context) {
	memberID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		handler.RespondServiceError(c, fmt.Errorf("memberID=%q: %w", c.Param("id"), ErrInvalidMemberID))
		return
	}

	response, err := h.memberService.GetMember(c.Request.Context(), uint32(memberID))
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := h.memberService.GetProfile(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) UpdateName(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	var request UpdateNameRequest
	if !handler.BindJSON(c, &request) {
		return
	}

	response, err := h.memberService.UpdateName(c.Request.Context(), memberID, request.Name)
	if err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *MemberHandler) Withdraw(c *gin.Context) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	if err := h.memberService.Withdraw(c.Request.Context(), memberID); err != nil {
		handler.RespondServiceError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
