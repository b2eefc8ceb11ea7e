package repositories

import (
	"community-api/models"

	"gorm.io/gorm"
)

type MemberRepository interface {
	Create(member *models.Member) error
	Exists(userID, communityID string) (bool, error)
	GetListByCommunity(communityID string, offset, limit int) ([]models.Member, error)
	CountByCommunity(communityID string) (int64, error)
	GetAllByUser(userID string) ([]models.Member, error)
	// BulkDelete removes exactly the memberships whose (user, community)
	// pair is in the set, inside one transaction. Pairs matching no row are
	// not an error. Returns the number of rows deleted.
	BulkDelete(pairs []models.MemberKey) (int64, error)
}

type memberRepository struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *models.Member) error {
	return r.db.Create(member).Error
}

func (r *memberRepository) Exists(userID, communityID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Member{}).
		Where("user_id = ? AND community_id = ?", userID, communityID).
		Count(&count).Error
	return count > 0, err
}

func (r *memberRepository) GetListByCommunity(communityID string, offset, limit int) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Preload("User").Preload("Role").
		Where("community_id = ?", communityID).
		Order("created_at asc").Offset(offset).Limit(limit).
		Find(&members).Error
	return members, err
}

func (r *memberRepository) CountByCommunity(communityID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Member{}).Where("community_id = ?", communityID).Count(&count).Error
	return count, err
}

func (r *memberRepository) GetAllByUser(userID string) ([]models.Member, error) {
	var members []models.Member
	err := r.db.Preload("Role").Where("user_id = ?", userID).Find(&members).Error
	return members, err
}

func (r *memberRepository) BulkDelete(pairs []models.MemberKey) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	byUser := make(map[string][]string)
	for _, pair := range pairs {
		byUser[pair.UserID] = append(byUser[pair.UserID], pair.CommunityID)
	}

	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for userID, communityIDs := range byUser {
			res := tx.Where("user_id = ? AND community_id IN ?", userID, communityIDs).
				Delete(&models.Member{})
			if res.Error != nil {
				return res.Error
			}
			deleted += res.RowsAffected
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
