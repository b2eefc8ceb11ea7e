package handlers

import (
	"community-api/helper"
	"community-api/models"
	"community-api/services"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	communityService services.CommunityService
	Helper           *helper.HTTPHelper
}

func NewCommunityHandler(communityService services.CommunityService, httpHelper *helper.HTTPHelper) *CommunityHandler {
	return &CommunityHandler{communityService: communityService, Helper: httpHelper}
}

func (h *CommunityHandler) CreateCommunity(c *gin.Context) {
	var req models.CreateCommunityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "", "Invalid request body.", models.CodeInvalidInput)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	community, err := h.communityService.CreateCommunity(c.GetString("user_id"), req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, community)
}

func (h *CommunityHandler) GetCommunities(c *gin.Context) {
	page, pageSize := h.Helper.GetPageParams(c)

	communities, total, err := h.communityService.GetCommunities((page-1)*pageSize, pageSize)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, communities, h.Helper.GeneratePaging(page, pageSize, total))
}

// GetCommunityMembers lists the members of the community addressed by its
// slug in the :id path param.
func (h *CommunityHandler) GetCommunityMembers(c *gin.Context) {
	page, pageSize := h.Helper.GetPageParams(c)

	members, total, err := h.communityService.GetCommunityMembers(c.Param("id"), (page-1)*pageSize, pageSize)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, members, h.Helper.GeneratePaging(page, pageSize, total))
}

func (h *CommunityHandler) GetOwnedCommunities(c *gin.Context) {
	page, pageSize := h.Helper.GetPageParams(c)

	communities, total, err := h.communityService.GetOwnedCommunities(c.GetString("user_id"), (page-1)*pageSize, pageSize)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, communities, h.Helper.GeneratePaging(page, pageSize, total))
}

func (h *CommunityHandler) GetJoinedCommunities(c *gin.Context) {
	page, pageSize := h.Helper.GetPageParams(c)

	communities, total, err := h.communityService.GetJoinedCommunities(c.GetString("user_id"), (page-1)*pageSize, pageSize)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, communities, h.Helper.GeneratePaging(page, pageSize, total))
}
