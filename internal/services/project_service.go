package services

import (
	"sort"

	"rabt_backend/internal/algorithms"
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"
)

// maxMatchedEngineers bounds the suggestion list attached to a project.
const maxMatchedEngineers = 10

type ProjectService interface {
	CreateProject(ownerID string, req *dto.CreateProjectRequest) (*models.Project, error)
	GetProject(projectID, viewerID string, viewerRole models.UserRole) (*dto.ProjectResponse, error)
	ListOpenProjects(criteria repositories.ProjectCriteria) (*dto.ProjectListResponse, error)
	ListOwnProjects(ownerID string) ([]models.Project, error)
	UpdateProjectStatus(projectID, ownerID string, status models.ProjectStatus) error
}

type projectService struct {
	projectRepo repositories.ProjectRepository
	profileRepo repositories.ProfileRepository
}

func NewProjectService(projectRepo repositories.ProjectRepository, profileRepo repositories.ProfileRepository) ProjectService {
	return &projectService{projectRepo: projectRepo, profileRepo: profileRepo}
}

func (s *projectService) CreateProject(ownerID string, req *dto.CreateProjectRequest) (*models.Project, error) {
	project := &models.Project{
		OwnerID:        ownerID,
		Title:          req.Title,
		Description:    req.Description,
		RequiredSkills: req.RequiredSkills,
		Status:         models.ProjectStatusOpen,
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return project, nil
}

// GetProject returns the project, with matched engineer suggestions only
// when the viewer is its owner.
func (s *projectService) GetProject(projectID, viewerID string, viewerRole models.UserRole) (*dto.ProjectResponse, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	response := &dto.ProjectResponse{Project: project}

	if project.OwnerID == viewerID || viewerRole == models.UserRoleAdmin {
		matched, err := s.matchEngineers(project)
		if err != nil {
			return nil, err
		}
		response.MatchedEngineers = matched
	}

	return response, nil
}

func (s *projectService) ListOpenProjects(criteria repositories.ProjectCriteria) (*dto.ProjectListResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}

	projects, total, err := s.projectRepo.FindOpen(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(criteria.PageSize) - 1) / int64(criteria.PageSize))

	return &dto.ProjectListResponse{
		Projects:   projects,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: totalPages,
	}, nil
}

func (s *projectService) ListOwnProjects(ownerID string) ([]models.Project, error) {
	projects, err := s.projectRepo.FindByOwner(ownerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return projects, nil
}

func (s *projectService) UpdateProjectStatus(projectID, ownerID string, status models.ProjectStatus) error {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	if project.OwnerID != ownerID {
		return apperrors.ErrOwnerOnly
	}

	if err := s.projectRepo.UpdateStatus(projectID, status); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// matchEngineers scores approved engineers against the project's required
// skills and returns the top candidates with any overlap.
func (s *projectService) matchEngineers(project *models.Project) ([]dto.MatchedEngineer, error) {
	engineers, _, err := s.profileRepo.FindApprovedEngineers(repositories.EngineerCriteria{
		Page:     1,
		PageSize: 100,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	matched := make([]dto.MatchedEngineer, 0, maxMatchedEngineers)
	for _, engineer := range engineers {
		score, _ := algorithms.CalculateMatchScore(project.RequiredSkills, engineer.Skills)
		if score == 0 {
			continue
		}
		matched = append(matched, dto.MatchedEngineer{
			EngineerID: engineer.UserID,
			FullName:   engineer.FullName,
			Headline:   engineer.Headline,
			Skills:     engineer.Skills,
			MatchScore: score,
		})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].MatchScore > matched[j].MatchScore
	})
	if len(matched) > maxMatchedEngineers {
		matched = matched[:maxMatchedEngineers]
	}

	return matched, nil
}
