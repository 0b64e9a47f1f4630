package services

import (
	"rabt_backend/internal/logger"
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/pkg/apperrors"
)

type InterestService interface {
	ExpressInterest(projectID, engineerID string) (*models.ProjectInterest, error)
	HasInterest(projectID, engineerID string) (bool, error)
	ListPendingInterests(projectID, ownerID string) ([]models.ProjectInterest, error)
}

type interestService struct {
	interestRepo        repositories.InterestRepository
	projectRepo         repositories.ProjectRepository
	profileRepo         repositories.ProfileRepository
	notificationService NotificationService
}

func NewInterestService(
	interestRepo repositories.InterestRepository,
	projectRepo repositories.ProjectRepository,
	profileRepo repositories.ProfileRepository,
	notificationService NotificationService,
) InterestService {
	return &interestService{
		interestRepo:        interestRepo,
		projectRepo:         projectRepo,
		profileRepo:         profileRepo,
		notificationService: notificationService,
	}
}

// ExpressInterest records an engineer's interest in an open project and
// notifies the owner. The insert is atomic; a duplicate from any
// interleaving surfaces as a single conflict error.
func (s *interestService) ExpressInterest(projectID, engineerID string) (*models.ProjectInterest, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if project.Status != models.ProjectStatusOpen {
		return nil, apperrors.ErrInvalidStatus("interest", "Project is not open for interest")
	}
	if project.OwnerID == engineerID {
		return nil, apperrors.ErrEngineerOnly
	}

	engineer, err := s.profileRepo.FindByUserID(engineerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if engineer.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrInsufficientPermissions
	}

	interest := &models.ProjectInterest{
		ProjectID:  projectID,
		EngineerID: engineerID,
		Status:     models.InterestStatusPending,
	}

	if err := s.interestRepo.CreateIfAbsent(interest); err != nil {
		if apperrors.Is(err, repositories.ErrInterestAlreadyExists) {
			return nil, apperrors.ErrInterestAlreadyExpressed
		}
		return nil, apperrors.InternalError(err)
	}

	// Notification delivery never rolls back a recorded interest.
	if err := s.notificationService.NotifyNewInterest(project.OwnerID, engineer.FullName, project.Title, project.ID); err != nil {
		logger.Error("failed to notify project owner of new interest",
			"error", err,
			"project_id", projectID,
			"owner_id", project.OwnerID,
		)
	}

	return interest, nil
}

func (s *interestService) HasInterest(projectID, engineerID string) (bool, error) {
	exists, err := s.interestRepo.Exists(projectID, engineerID)
	if err != nil {
		return false, apperrors.InternalError(err)
	}
	return exists, nil
}

// ListPendingInterests returns the pending interest queue for a project,
// visible only to its owner.
func (s *interestService) ListPendingInterests(projectID, ownerID string) ([]models.ProjectInterest, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != ownerID {
		return nil, apperrors.ErrOwnerOnly
	}

	interests, err := s.interestRepo.FindPendingByProject(projectID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interests, nil
}
