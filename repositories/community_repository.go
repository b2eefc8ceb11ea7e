package repositories

import (
	"community-api/models"

	"gorm.io/gorm"
)

type CommunityRepository interface {
	// Create stores the community and the owner's admin membership in one
	// transaction, so a community never exists without its admin.
	Create(community *models.Community, ownerMember *models.Member) error
	GetByID(id string) (*models.Community, error)
	GetBySlug(slug string) (*models.Community, error)
	CountByName(name string) (int64, error)
	GetList(offset, limit int) ([]models.Community, error)
	Count() (int64, error)
	GetListByOwner(ownerID string, offset, limit int) ([]models.Community, error)
	CountByOwner(ownerID string) (int64, error)
	GetListByIDs(ids []string, offset, limit int) ([]models.Community, error)
}

type communityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) CommunityRepository {
	return &communityRepository{db: db}
}

func (r *communityRepository) Create(community *models.Community, ownerMember *models.Member) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(community).Error; err != nil {
			return err
		}
		ownerMember.CommunityID = community.ID
		return tx.Create(ownerMember).Error
	})
}

func (r *communityRepository) GetByID(id string) (*models.Community, error) {
	var community models.Community
	err := r.db.Where("id = ?", id).First(&community).Error
	return &community, err
}

func (r *communityRepository) GetBySlug(slug string) (*models.Community, error) {
	var community models.Community
	err := r.db.Where("slug = ?", slug).First(&community).Error
	return &community, err
}

func (r *communityRepository) CountByName(name string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Community{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *communityRepository) GetList(offset, limit int) ([]models.Community, error) {
	var communities []models.Community
	err := r.db.Preload("Owner").Order("created_at asc").Offset(offset).Limit(limit).Find(&communities).Error
	return communities, err
}

func (r *communityRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Community{}).Count(&count).Error
	return count, err
}

func (r *communityRepository) GetListByOwner(ownerID string, offset, limit int) ([]models.Community, error) {
	var communities []models.Community
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at asc").Offset(offset).Limit(limit).Find(&communities).Error
	return communities, err
}

func (r *communityRepository) CountByOwner(ownerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Community{}).Where("owner_id = ?", ownerID).Count(&count).Error
	return count, err
}

func (r *communityRepository) GetListByIDs(ids []string, offset, limit int) ([]models.Community, error) {
	var communities []models.Community
	err := r.db.Preload("Owner").Where("id IN ?", ids).Order("created_at asc").Offset(offset).Limit(limit).Find(&communities).Error
	return communities, err
}
