package services

import (
	"rabt_backend/internal/logger"
	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"
)

type InterviewService interface {
	ScheduleInterview(ownerID string, req *dto.ScheduleInterviewRequest) (*models.Interview, error)
	ScheduleVettingInterview(adminID string, req *dto.ScheduleVettingInterviewRequest) (*models.Interview, error)
	ListInterviews(userID string) ([]models.Interview, error)
	UpdateInterviewStatus(interviewID, userID string, status models.InterviewStatus) (*models.Interview, error)
}

type interviewService struct {
	interviewRepo       repositories.InterviewRepository
	projectRepo         repositories.ProjectRepository
	interestRepo        repositories.InterestRepository
	profileRepo         repositories.ProfileRepository
	userRepo            repositories.UserRepository
	notificationService NotificationService
}

func NewInterviewService(
	interviewRepo repositories.InterviewRepository,
	projectRepo repositories.ProjectRepository,
	interestRepo repositories.InterestRepository,
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	notificationService NotificationService,
) InterviewService {
	return &interviewService{
		interviewRepo:       interviewRepo,
		projectRepo:         projectRepo,
		interestRepo:        interestRepo,
		profileRepo:         profileRepo,
		userRepo:            userRepo,
		notificationService: notificationService,
	}
}

// ScheduleInterview lets a project owner invite an engineer who has
// expressed interest. Scheduling accepts the engineer's pending interest.
func (s *interviewService) ScheduleInterview(ownerID string, req *dto.ScheduleInterviewRequest) (*models.Interview, error) {
	project, err := s.projectRepo.FindByID(req.ProjectID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProjectNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if project.OwnerID != ownerID {
		return nil, apperrors.ErrOwnerOnly
	}

	interest, err := s.interestRepo.FindByProjectAndEngineer(req.ProjectID, req.EngineerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterestNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	projectID := req.ProjectID
	scheduledTime := req.ScheduledTime
	interview := &models.Interview{
		ProjectID:     &projectID,
		EngineerID:    req.EngineerID,
		OwnerID:       ownerID,
		ScheduledTime: &scheduledTime,
		MeetingLink:   req.MeetingLink,
		Status:        models.InterviewStatusScheduled,
		InterviewType: models.InterviewTypeProject,
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.interestRepo.UpdateStatus(interest.ID, models.InterestStatusAccepted); err != nil {
		logger.Error("failed to accept interest after scheduling",
			"error", err,
			"interest_id", interest.ID,
		)
	}

	if err := s.notificationService.NotifyInterviewScheduled(req.EngineerID, interview.ID); err != nil {
		logger.Error("failed to notify engineer of scheduled interview",
			"error", err,
			"engineer_id", req.EngineerID,
		)
	}

	return interview, nil
}

// ScheduleVettingInterview creates an admin-run vetting interview. These
// carry no project and start without a concrete time slot.
func (s *interviewService) ScheduleVettingInterview(adminID string, req *dto.ScheduleVettingInterviewRequest) (*models.Interview, error) {
	engineer, err := s.profileRepo.FindByUserID(req.EngineerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	// Vetting applies to engineers only.
	user, err := s.userRepo.FindByID(engineer.UserID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleEngineer {
		return nil, apperrors.ErrInvalidUserRole
	}

	interview := &models.Interview{
		ProjectID:     nil,
		EngineerID:    engineer.UserID,
		OwnerID:       adminID,
		Status:        models.InterviewStatusPendingVetting,
		InterviewType: models.InterviewTypeVetting,
	}

	if err := s.interviewRepo.Create(interview); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.profileRepo.UpdateVettingStatus(engineer.UserID, models.VettingStatusPending); err != nil {
		logger.Error("failed to mark vetting as pending",
			"error", err,
			"engineer_id", engineer.UserID,
		)
	}

	if err := s.notificationService.NotifyVettingScheduled(engineer.UserID, interview.ID); err != nil {
		logger.Error("failed to notify engineer of vetting interview",
			"error", err,
			"engineer_id", engineer.UserID,
		)
	}

	return interview, nil
}

func (s *interviewService) ListInterviews(userID string) ([]models.Interview, error) {
	interviews, err := s.interviewRepo.FindByParticipant(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return interviews, nil
}

// UpdateInterviewStatus lets a participant complete or cancel an
// interview. Completed and cancelled are terminal.
func (s *interviewService) UpdateInterviewStatus(interviewID, userID string, status models.InterviewStatus) (*models.Interview, error) {
	interview, err := s.interviewRepo.FindByID(interviewID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInterviewNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if !interview.HasParticipant(userID) {
		return nil, apperrors.ErrNotInterviewParticipant
	}

	if interview.Status.IsTerminal() {
		return nil, apperrors.ErrInterviewClosed
	}

	if err := s.interviewRepo.UpdateStatus(interviewID, status); err != nil {
		return nil, apperrors.InternalError(err)
	}
	interview.Status = status

	// Completing a vetting interview marks the engineer as vetted.
	if status == models.InterviewStatusCompleted && interview.InterviewType == models.InterviewTypeVetting {
		if err := s.profileRepo.UpdateVettingStatus(interview.EngineerID, models.VettingStatusPassed); err != nil {
			logger.Error("failed to mark vetting as passed",
				"error", err,
				"engineer_id", interview.EngineerID,
			)
		}
	}

	return interview, nil
}
