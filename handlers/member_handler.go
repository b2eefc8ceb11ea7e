package handlers

import (
	"community-api/helper"
	"community-api/models"
	"community-api/services"

	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService services.MemberService
	Helper        *helper.HTTPHelper
}

func NewMemberHandler(memberService services.MemberService, httpHelper *helper.HTTPHelper) *MemberHandler {
	return &MemberHandler{memberService: memberService, Helper: httpHelper}
}

func (h *MemberHandler) AddMember(c *gin.Context) {
	var req models.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "", "Invalid request body.", models.CodeInvalidInput)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	member, err := h.memberService.AddMember(c.GetString("user_id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, member)
}

// RemoveMember removes the target user (the :id path param) from every
// community the actor administers or moderates.
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	if _, err := h.memberService.RemoveUser(c.GetString("user_id"), c.Param("id")); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendOK(c)
}
