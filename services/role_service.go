package services

import (
	"errors"
	"strings"

	"community-api/models"
	"community-api/repositories"

	"gorm.io/gorm"
)

type RoleService interface {
	CreateRole(req models.CreateRoleRequest) (*models.Role, error)
	GetRoles(offset, limit int) ([]models.Role, int64, error)
}

type roleService struct {
	roleRepo repositories.RoleRepository
}

func NewRoleService(roleRepo repositories.RoleRepository) RoleService {
	return &roleService{roleRepo: roleRepo}
}

func (s *roleService) CreateRole(req models.CreateRoleRequest) (*models.Role, error) {
	name := strings.TrimSpace(req.Name)

	// Check if role already exists
	_, err := s.roleRepo.GetByName(name)
	if err == nil {
		return nil, models.ErrorConflict{Param: "name", Message: "The role already exists."}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := &models.Role{
		Name:   name,
		Scopes: req.Scopes,
	}

	if err := s.roleRepo.Create(role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Param: "name", Message: "The role already exists."}
		}
		return nil, err
	}

	return role, nil
}

func (s *roleService) GetRoles(offset, limit int) ([]models.Role, int64, error) {
	total, err := s.roleRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	roles, err := s.roleRepo.GetList(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return roles, total, nil
}
