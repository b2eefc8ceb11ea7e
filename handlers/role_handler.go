package handlers

import (
	"community-api/helper"
	"community-api/models"
	"community-api/services"

	"github.com/gin-gonic/gin"
)

type RoleHandler struct {
	roleService services.RoleService
	Helper      *helper.HTTPHelper
}

func NewRoleHandler(roleService services.RoleService, httpHelper *helper.HTTPHelper) *RoleHandler {
	return &RoleHandler{roleService: roleService, Helper: httpHelper}
}

func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req models.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "", "Invalid request body.", models.CodeInvalidInput)
		return
	}
	if !h.Helper.ValidateRequest(c, req) {
		return
	}

	role, err := h.roleService.CreateRole(req)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, role)
}

func (h *RoleHandler) GetRoles(c *gin.Context) {
	page, pageSize := h.Helper.GetPageParams(c)

	roles, total, err := h.roleService.GetRoles((page-1)*pageSize, pageSize)
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccessWithMeta(c, roles, h.Helper.GeneratePaging(page, pageSize, total))
}
