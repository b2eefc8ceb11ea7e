package services

import (
	"errors"

	"community-api/models"
	"community-api/repositories"

	"gorm.io/gorm"
)

type MemberService interface {
	// AddMember admits a user into a community. Checks run in a fixed
	// order: community exists, actor is privileged there, target user
	// exists, role exists, target not already a member. Nothing is written
	// until every check passes.
	AddMember(actorID string, req models.AddMemberRequest) (*models.Member, error)
	// RemoveUser deletes every non-privileged membership of the target in
	// communities where the actor holds a privileged role. The removal set
	// is deleted in one bulk operation; an empty set is an error.
	RemoveUser(actorID, targetUserID string) (int64, error)
}

type memberService struct {
	memberRepo    repositories.MemberRepository
	communityRepo repositories.CommunityRepository
	userRepo      repositories.UserRepository
	roleRepo      repositories.RoleRepository
}

func NewMemberService(
	memberRepo repositories.MemberRepository,
	communityRepo repositories.CommunityRepository,
	userRepo repositories.UserRepository,
	roleRepo repositories.RoleRepository,
) MemberService {
	return &memberService{
		memberRepo:    memberRepo,
		communityRepo: communityRepo,
		userRepo:      userRepo,
		roleRepo:      roleRepo,
	}
}

func (s *memberService) AddMember(actorID string, req models.AddMemberRequest) (*models.Member, error) {
	actor, err := s.userRepo.GetByID(actorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorUnauthorized{}
		}
		return nil, err
	}

	community, err := s.communityRepo.GetByID(req.Community)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Param: "community", Message: "Community not found."}
		}
		return nil, err
	}

	privileged, err := s.isPrivilegedIn(actor.ID, community.ID)
	if err != nil {
		return nil, err
	}
	if !privileged {
		return nil, models.ErrorForbidden{Message: "You are not authorized to perform this action."}
	}

	if _, err := s.userRepo.GetByID(req.User); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Param: "user", Message: "User not found."}
		}
		return nil, err
	}

	role, err := s.roleRepo.GetByID(req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Param: "role", Message: "Role not found."}
		}
		return nil, err
	}

	exists, err := s.memberRepo.Exists(req.User, community.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, alreadyAdded()
	}

	member := &models.Member{
		CommunityID: community.ID,
		UserID:      req.User,
		RoleID:      role.ID,
	}

	if err := s.memberRepo.Create(member); err != nil {
		// The composite unique index catches the race two concurrent
		// admissions can win past the Exists check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, alreadyAdded()
		}
		return nil, err
	}

	return member, nil
}

func (s *memberService) RemoveUser(actorID, targetUserID string) (int64, error) {
	if _, err := s.userRepo.GetByID(actorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, models.ErrorUnauthorized{}
		}
		return 0, err
	}

	// Communities where the actor holds a privileged role.
	actorMemberships, err := s.memberRepo.GetAllByUser(actorID)
	if err != nil {
		return 0, err
	}
	privilegedIn := make(map[string]struct{}, len(actorMemberships))
	for _, membership := range actorMemberships {
		if membership.Role != nil && membership.Role.Privileged() {
			privilegedIn[membership.CommunityID] = struct{}{}
		}
	}

	// Non-privileged memberships of the target, intersected with the
	// actor's privileged communities. Privileged memberships of the target
	// are never removable through this path.
	targetMemberships, err := s.memberRepo.GetAllByUser(targetUserID)
	if err != nil {
		return 0, err
	}
	var pairs []models.MemberKey
	for _, membership := range targetMemberships {
		if membership.Role != nil && membership.Role.Privileged() {
			continue
		}
		if _, ok := privilegedIn[membership.CommunityID]; ok {
			pairs = append(pairs, models.MemberKey{
				UserID:      targetUserID,
				CommunityID: membership.CommunityID,
			})
		}
	}

	if len(pairs) == 0 {
		return 0, models.ErrorNotFound{Message: "Member not found."}
	}

	return s.memberRepo.BulkDelete(pairs)
}

// isPrivilegedIn reports whether the user holds an admin or moderator
// membership in the community. The community owner field plays no part
// here: privilege flows only through memberships.
func (s *memberService) isPrivilegedIn(userID, communityID string) (bool, error) {
	memberships, err := s.memberRepo.GetAllByUser(userID)
	if err != nil {
		return false, err
	}
	for _, membership := range memberships {
		if membership.CommunityID == communityID {
			return membership.Role != nil && membership.Role.Privileged(), nil
		}
	}
	return false, nil
}

func alreadyAdded() models.ErrorConflict {
	return models.ErrorConflict{Message: "User is already added in the community."}
}
