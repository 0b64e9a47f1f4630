package repositories

import (
	"errors"

	"rabt_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProjectNotFound = errors.New("project not found")

type ProjectRepository interface {
	Create(project *models.Project) error
	FindByID(id string) (*models.Project, error)
	FindOpen(criteria ProjectCriteria) ([]models.Project, int64, error)
	FindByOwner(ownerID string) ([]models.Project, error)
	UpdateStatus(projectID string, status models.ProjectStatus) error
	CountAll() (int64, error)
}

// ProjectCriteria filters the open projects listing. Query is a substring
// match on title and description (ILIKE), deliberately not ranked.
type ProjectCriteria struct {
	Query    string `form:"query"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ProjectRepositoryImpl struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &ProjectRepositoryImpl{db: db}
}

func (r *ProjectRepositoryImpl) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

func (r *ProjectRepositoryImpl) FindByID(id string) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Owner").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) FindOpen(criteria ProjectCriteria) ([]models.Project, int64, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}

	query := r.db.Model(&models.Project{}).Where("status = ?", models.ProjectStatusOpen)

	if criteria.Query != "" {
		search := "%" + criteria.Query + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", search, search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var projects []models.Project
	err := query.Preload("Owner").
		Order("created_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&projects).Error
	return projects, total, err
}

func (r *ProjectRepositoryImpl) FindByOwner(ownerID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *ProjectRepositoryImpl) UpdateStatus(projectID string, status models.ProjectStatus) error {
	result := r.db.Model(&models.Project{}).Where("id = ?", projectID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProjectNotFound
	}
	return nil
}

func (r *ProjectRepositoryImpl) CountAll() (int64, error) {
	var count int64
	err := r.db.Model(&models.Project{}).Count(&count).Error
	return count, err
}
