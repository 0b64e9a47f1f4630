package repositories

import (
	"errors"

	"rabt_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInterestNotFound      = errors.New("project interest not found")
	ErrInterestAlreadyExists = errors.New("interest already expressed for this project")
)

type InterestRepository interface {
	// CreateIfAbsent inserts the interest atomically. The unique index on
	// (project_id, engineer_id) resolves concurrent duplicates at the
	// database; a conflicting insert returns ErrInterestAlreadyExists.
	CreateIfAbsent(interest *models.ProjectInterest) error
	FindByProjectAndEngineer(projectID, engineerID string) (*models.ProjectInterest, error)
	FindPendingByProject(projectID string) ([]models.ProjectInterest, error)
	UpdateStatus(interestID string, status models.InterestStatus) error
	Exists(projectID, engineerID string) (bool, error)
}

type InterestRepositoryImpl struct {
	db *gorm.DB
}

func NewInterestRepository(db *gorm.DB) InterestRepository {
	return &InterestRepositoryImpl{db: db}
}

func (r *InterestRepositoryImpl) CreateIfAbsent(interest *models.ProjectInterest) error {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "engineer_id"}},
		DoNothing: true,
	}).Create(interest)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterestAlreadyExists
	}
	return nil
}

func (r *InterestRepositoryImpl) FindByProjectAndEngineer(projectID, engineerID string) (*models.ProjectInterest, error) {
	var interest models.ProjectInterest
	err := r.db.First(&interest, "project_id = ? AND engineer_id = ?", projectID, engineerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterestNotFound
		}
		return nil, err
	}
	return &interest, nil
}

func (r *InterestRepositoryImpl) FindPendingByProject(projectID string) ([]models.ProjectInterest, error) {
	var interests []models.ProjectInterest
	err := r.db.Preload("Engineer").
		Where("project_id = ? AND status = ?", projectID, models.InterestStatusPending).
		Order("created_at ASC").
		Find(&interests).Error
	return interests, err
}

func (r *InterestRepositoryImpl) UpdateStatus(interestID string, status models.InterestStatus) error {
	result := r.db.Model(&models.ProjectInterest{}).Where("id = ?", interestID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterestNotFound
	}
	return nil
}

func (r *InterestRepositoryImpl) Exists(projectID, engineerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectInterest{}).
		Where("project_id = ? AND engineer_id = ?", projectID, engineerID).
		Count(&count).Error
	return count > 0, err
}
