package repositories

import (
	"errors"

	"rabt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	Create(profile *models.Profile) error
	FindByUserID(userID string) (*models.Profile, error)
	Update(profile *models.Profile) error

	// UpdateStatusForRole applies a status change only when the target user
	// holds the given role, and reports how many rows matched. Zero matches
	// is not an error; the caller decides the semantics.
	UpdateStatusForRole(userID string, role models.UserRole, status models.ProfileStatus) (int64, error)
	UpdateVettingStatus(userID string, status models.VettingStatus) error

	FindPendingEngineers(limit, offset int) ([]models.Profile, int64, error)
	FindApprovedEngineers(criteria EngineerCriteria) ([]models.Profile, int64, error)
	CountByStatus(role models.UserRole, status models.ProfileStatus) (int64, error)
}

// EngineerCriteria filters the public engineers listing. Query is a plain
// substring match; there is no relevance ranking.
type EngineerCriteria struct {
	Query    string `form:"query"`
	Skill    string `form:"skill"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

func (c *EngineerCriteria) normalize() {
	if c.Page < 1 {
		c.Page = 1
	}
	if c.PageSize < 1 || c.PageSize > 100 {
		c.PageSize = 20
	}
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

func (r *ProfileRepositoryImpl) Create(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByUserID(userID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) Update(profile *models.Profile) error {
	return r.db.Save(profile).Error
}

func (r *ProfileRepositoryImpl) UpdateStatusForRole(userID string, role models.UserRole, status models.ProfileStatus) (int64, error) {
	result := r.db.Model(&models.Profile{}).
		Where("user_id = ? AND user_id IN (SELECT id FROM users WHERE role = ?)", userID, role).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ProfileRepositoryImpl) UpdateVettingStatus(userID string, status models.VettingStatus) error {
	return r.db.Model(&models.Profile{}).
		Where("user_id = ?", userID).
		Update("vetting_status", status).Error
}

func (r *ProfileRepositoryImpl) FindPendingEngineers(limit, offset int) ([]models.Profile, int64, error) {
	base := r.db.Model(&models.Profile{}).
		Where("status = ?", models.ProfileStatusPendingApproval).
		Where("user_id IN (SELECT id FROM users WHERE role = ? AND is_verified = true)", models.UserRoleEngineer)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	err := base.Order("created_at ASC").Limit(limit).Offset(offset).Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) FindApprovedEngineers(criteria EngineerCriteria) ([]models.Profile, int64, error) {
	criteria.normalize()

	query := r.db.Model(&models.Profile{}).
		Where("status = ?", models.ProfileStatusApproved).
		Where("user_id IN (SELECT id FROM users WHERE role = ?)", models.UserRoleEngineer)

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("full_name ILIKE ? OR headline ILIKE ? OR bio ILIKE ?", search, search, search)
	}
	if criteria.Skill != "" {
		query = query.Where("? = ANY(skills)", criteria.Skill)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []models.Profile
	err := query.Order("created_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&profiles).Error
	return profiles, total, err
}

func (r *ProfileRepositoryImpl) CountByStatus(role models.UserRole, status models.ProfileStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).
		Where("status = ?", status).
		Where("user_id IN (SELECT id FROM users WHERE role = ?)", role).
		Count(&count).Error
	return count, err
}
