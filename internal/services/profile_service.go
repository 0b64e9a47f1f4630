package services

import (
	"github.com/lib/pq"

	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"
)

type ProfileService interface {
	GetOwnProfile(userID string) (*models.Profile, error)
	UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	GetEngineerProfile(engineerID string) (*models.Profile, error)
	SearchEngineers(criteria repositories.EngineerCriteria) (*dto.EngineerListResponse, error)
}

type profileService struct {
	profileRepo repositories.ProfileRepository
	userRepo    repositories.UserRepository
}

func NewProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) ProfileService {
	return &profileService{profileRepo: profileRepo, userRepo: userRepo}
}

func (s *profileService) GetOwnProfile(userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateProfile applies only the fields present in the request. Editing a
// profile never changes its approval or vetting status.
func (s *profileService) UpdateProfile(userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.Skills != nil {
		profile.Skills = pq.StringArray(req.Skills)
	}
	if req.PortfolioURL != nil {
		profile.PortfolioURL = *req.PortfolioURL
	}
	if req.ResumeURL != nil {
		profile.ResumeURL = *req.ResumeURL
	}
	if req.CompanyName != nil {
		profile.CompanyName = *req.CompanyName
	}

	if err := s.profileRepo.Update(profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return profile, nil
}

// GetEngineerProfile returns an engineer's public profile. Unapproved
// engineers are invisible to other users.
func (s *profileService) GetEngineerProfile(engineerID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(engineerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(engineerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleEngineer || profile.Status != models.ProfileStatusApproved {
		return nil, apperrors.ErrNotFound(repositories.ErrProfileNotFound)
	}

	return profile, nil
}

func (s *profileService) SearchEngineers(criteria repositories.EngineerCriteria) (*dto.EngineerListResponse, error) {
	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 || criteria.PageSize > 100 {
		criteria.PageSize = 20
	}

	profiles, total, err := s.profileRepo.FindApprovedEngineers(criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalPages := int((total + int64(criteria.PageSize) - 1) / int64(criteria.PageSize))

	return &dto.EngineerListResponse{
		Engineers:  profiles,
		Total:      total,
		Page:       criteria.Page,
		PageSize:   criteria.PageSize,
		TotalPages: totalPages,
	}, nil
}
