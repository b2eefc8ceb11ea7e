package services

import (
	"errors"
	"strconv"
	"strings"

	"community-api/models"
	"community-api/repositories"

	"gorm.io/gorm"
)

type CommunityService interface {
	CreateCommunity(ownerID string, req models.CreateCommunityRequest) (*models.Community, error)
	GetCommunities(offset, limit int) ([]models.CommunityResponse, int64, error)
	GetCommunityMembers(slug string, offset, limit int) ([]models.CommunityMemberResponse, int64, error)
	GetOwnedCommunities(ownerID string, offset, limit int) ([]models.Community, int64, error)
	GetJoinedCommunities(userID string, offset, limit int) ([]models.CommunityResponse, int64, error)
}

type communityService struct {
	communityRepo repositories.CommunityRepository
	memberRepo    repositories.MemberRepository
	roleRepo      repositories.RoleRepository
	userRepo      repositories.UserRepository
}

func NewCommunityService(
	communityRepo repositories.CommunityRepository,
	memberRepo repositories.MemberRepository,
	roleRepo repositories.RoleRepository,
	userRepo repositories.UserRepository,
) CommunityService {
	return &communityService{
		communityRepo: communityRepo,
		memberRepo:    memberRepo,
		roleRepo:      roleRepo,
		userRepo:      userRepo,
	}
}

// CreateCommunity stores the community and grants the owner a
// "Community Admin" membership in the same transaction.
func (s *communityService) CreateCommunity(ownerID string, req models.CreateCommunityRequest) (*models.Community, error) {
	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{}
		}
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	slug := slugify(name)
	count, err := s.communityRepo.CountByName(name)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		slug = slug + strconv.FormatInt(count, 10)
	}

	adminRole, err := s.roleRepo.GetByName(models.RoleCommunityAdmin)
	if err != nil {
		return nil, err
	}

	community := &models.Community{
		Name:    name,
		Slug:    slug,
		OwnerID: owner.ID,
	}
	ownerMember := &models.Member{
		UserID: owner.ID,
		RoleID: adminRole.ID,
	}

	if err := s.communityRepo.Create(community, ownerMember); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, models.ErrorConflict{Param: "name", Message: "Community with this name already exists."}
		}
		return nil, err
	}

	return community, nil
}

func (s *communityService) GetCommunities(offset, limit int) ([]models.CommunityResponse, int64, error) {
	total, err := s.communityRepo.Count()
	if err != nil {
		return nil, 0, err
	}

	communities, err := s.communityRepo.GetList(offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return toCommunityResponses(communities), total, nil
}

func (s *communityService) GetCommunityMembers(slug string, offset, limit int) ([]models.CommunityMemberResponse, int64, error) {
	community, err := s.communityRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.ErrorValidation{Errors: []models.APIError{{
				Param:   "id",
				Message: "Community does not exist.",
				Code:    models.CodeInvalidInput,
			}}}
		}
		return nil, 0, err
	}

	total, err := s.memberRepo.CountByCommunity(community.ID)
	if err != nil {
		return nil, 0, err
	}

	members, err := s.memberRepo.GetListByCommunity(community.ID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]models.CommunityMemberResponse, 0, len(members))
	for _, member := range members {
		response := models.CommunityMemberResponse{
			ID:        member.ID,
			CreatedAt: member.CreatedAt,
		}
		if member.User != nil {
			response.User = models.UserSummary{ID: member.User.ID, Name: member.User.Name}
		}
		if member.Role != nil {
			response.Role = models.RoleSummary{ID: member.Role.ID, Name: member.Role.Name}
		}
		responses = append(responses, response)
	}

	return responses, total, nil
}

func (s *communityService) GetOwnedCommunities(ownerID string, offset, limit int) ([]models.Community, int64, error) {
	total, err := s.communityRepo.CountByOwner(ownerID)
	if err != nil {
		return nil, 0, err
	}

	communities, err := s.communityRepo.GetListByOwner(ownerID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return communities, total, nil
}

func (s *communityService) GetJoinedCommunities(userID string, offset, limit int) ([]models.CommunityResponse, int64, error) {
	memberships, err := s.memberRepo.GetAllByUser(userID)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]string, 0, len(memberships))
	for _, membership := range memberships {
		ids = append(ids, membership.CommunityID)
	}
	if len(ids) == 0 {
		return []models.CommunityResponse{}, 0, nil
	}

	communities, err := s.communityRepo.GetListByIDs(ids, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return toCommunityResponses(communities), int64(len(ids)), nil
}

func toCommunityResponses(communities []models.Community) []models.CommunityResponse {
	responses := make([]models.CommunityResponse, 0, len(communities))
	for _, community := range communities {
		response := models.CommunityResponse{
			ID:        community.ID,
			Name:      community.Name,
			Slug:      community.Slug,
			CreatedAt: community.CreatedAt,
			UpdatedAt: community.UpdatedAt,
		}
		if community.Owner != nil {
			response.Owner = models.UserSummary{ID: community.Owner.ID, Name: community.Owner.Name}
		} else {
			response.Owner = models.UserSummary{ID: community.OwnerID}
		}
		responses = append(responses, response)
	}
	return responses
}

func slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
