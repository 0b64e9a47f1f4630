package services

import (
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"
)

type AdminService interface {
	ListPendingEngineers(page, pageSize int) (*dto.PendingEngineersResponse, error)
	ApproveEngineer(engineerID string) error
	RejectEngineer(engineerID string) error
	GetDashboardStats() (*dto.DashboardStats, error)
}

type adminService struct {
	profileRepo   repositories.ProfileRepository
	projectRepo   repositories.ProjectRepository
	interviewRepo repositories.InterviewRepository
	userRepo      repositories.UserRepository
}

func NewAdminService(
	profileRepo repositories.ProfileRepository,
	projectRepo repositories.ProjectRepository,
	interviewRepo repositories.InterviewRepository,
	userRepo repositories.UserRepository,
) AdminService {
	return &adminService{
		profileRepo:   profileRepo,
		projectRepo:   projectRepo,
		interviewRepo: interviewRepo,
		userRepo:      userRepo,
	}
}

func (s *adminService) ListPendingEngineers(page, pageSize int) (*dto.PendingEngineersResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	profiles, total, err := s.profileRepo.FindPendingEngineers(pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.PendingEngineersResponse{
		Engineers: profiles,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// ApproveEngineer is a filtered update: when the target is missing or not
// an engineer, zero rows match and the call still succeeds.
func (s *adminService) ApproveEngineer(engineerID string) error {
	return s.setEngineerStatus(engineerID, models.ProfileStatusApproved)
}

func (s *adminService) RejectEngineer(engineerID string) error {
	return s.setEngineerStatus(engineerID, models.ProfileStatusRejected)
}

func (s *adminService) setEngineerStatus(engineerID string, status models.ProfileStatus) error {
	_, err := s.profileRepo.UpdateStatusForRole(engineerID, models.UserRoleEngineer, status)
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *adminService) GetDashboardStats() (*dto.DashboardStats, error) {
	totalProjects, err := s.projectRepo.CountAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalEngineers, err := s.userRepo.CountByRole(models.UserRoleEngineer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalOwners, err := s.userRepo.CountByRole(models.UserRoleBusinessOwner)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	pendingApprovals, err := s.profileRepo.CountByStatus(models.UserRoleEngineer, models.ProfileStatusPendingApproval)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	activeInterviews, err := s.interviewRepo.CountByStatus(models.InterviewStatusScheduled)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardStats{
		TotalProjects:       totalProjects,
		TotalEngineers:      totalEngineers,
		TotalBusinessOwners: totalOwners,
		PendingApprovals:    pendingApprovals,
		ActiveInterviews:    activeInterviews,
	}, nil
}
