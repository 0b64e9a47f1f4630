package repositories

import (
	"errors"

	"rabt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInterviewNotFound = errors.New("interview not found")

type InterviewRepository interface {
	Create(interview *models.Interview) error
	FindByID(id string) (*models.Interview, error)
	FindByParticipant(userID string) ([]models.Interview, error)
	UpdateStatus(interviewID string, status models.InterviewStatus) error
	CountByStatus(status models.InterviewStatus) (int64, error)
}

type InterviewRepositoryImpl struct {
	db *gorm.DB
}

func NewInterviewRepository(db *gorm.DB) InterviewRepository {
	return &InterviewRepositoryImpl{db: db}
}

func (r *InterviewRepositoryImpl) Create(interview *models.Interview) error {
	return r.db.Create(interview).Error
}

func (r *InterviewRepositoryImpl) FindByID(id string) (*models.Interview, error) {
	var interview models.Interview
	err := r.db.First(&interview, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

func (r *InterviewRepositoryImpl) FindByParticipant(userID string) ([]models.Interview, error) {
	var interviews []models.Interview
	err := r.db.Preload("Project").Preload("Engineer").Preload("Owner").
		Where("engineer_id = ? OR owner_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&interviews).Error
	return interviews, err
}

func (r *InterviewRepositoryImpl) UpdateStatus(interviewID string, status models.InterviewStatus) error {
	result := r.db.Model(&models.Interview{}).Where("id = ?", interviewID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInterviewNotFound
	}
	return nil
}

func (r *InterviewRepositoryImpl) CountByStatus(status models.InterviewStatus) (int64, error) {
	var count int64
	err := r.db.Model(&models.Interview{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
