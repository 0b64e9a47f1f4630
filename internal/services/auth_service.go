package services

import (
	"strings"
	"time"

	"rabt_backend/internal/auth"
	"rabt_backend/internal/logger"
	"rabt_backend/internal/models"
	"rabt_backend/internal/pkg/email"
	"rabt_backend/internal/repositories"
	"rabt_backend/internal/services/dto"
	"rabt_backend/pkg/apperrors"

	"github.com/google/uuid"
)

const refreshTokenTTL = 7 * 24 * time.Hour

type AuthService interface {
	Register(req *dto.RegisterRequest) error
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RefreshToken(refreshToken string) (*dto.LoginResponse, error)
	Logout(refreshToken string) error
	VerifyEmail(token, userID string) error
	RequestPasswordReset(emailAddr string) error
	ResetPassword(token, newPassword string) error
	ChangePassword(userID, currentPassword, newPassword string) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates the user plus its profile and sends a verification email.
// Admin accounts are seeded at startup, never self-registered.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) error {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return apperrors.ErrWeakPassword
	}

	if req.Role != models.UserRoleEngineer && req.Role != models.UserRoleBusinessOwner {
		return apperrors.ErrInvalidUserRole
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return apperrors.InternalError(err)
	}

	verificationToken := generateRandomToken()

	user := &models.User{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:      hashedPassword,
		Role:              req.Role,
		IsVerified:        false,
		VerificationToken: verificationToken,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		return apperrors.InternalError(err)
	}

	profile := &models.Profile{
		UserID:        user.ID,
		FullName:      req.FullName,
		Status:        models.ProfileStatusPendingApproval,
		VettingStatus: models.VettingStatusNone,
	}
	if err := s.profileRepo.Create(profile); err != nil {
		s.userRepo.Delete(user.ID)
		return apperrors.InternalError(err)
	}

	s.sendVerificationEmail(user.Email, verificationToken, user.ID)

	return nil
}

func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) RefreshToken(refreshToken string) (*dto.LoginResponse, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if !user.IsVerified {
		return nil, apperrors.ErrUserNotVerified
	}

	// Rotate: the old refresh token is spent.
	if err := s.refreshTokenRepo.DeleteByToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.buildLoginResponse(user)
}

func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

// VerifyEmail confirms the address. The verification token is single use:
// VerifyUser clears it, so a replayed link no longer resolves to a user.
func (s *AuthServiceImpl) VerifyEmail(token, userID string) error {
	user, err := s.userRepo.FindByVerificationToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}
	if user.ID != userID {
		return apperrors.ErrInvalidToken
	}

	if err := s.userRepo.VerifyUser(user.ID); err != nil {
		return apperrors.InternalError(err)
	}

	return nil
}

// RequestPasswordReset never reveals whether the address exists.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(emailAddr)))
	if err != nil {
		return nil
	}

	resetToken := generateRandomToken()
	resetTokenExp := time.Now().Add(1 * time.Hour)

	user.ResetToken = resetToken
	user.ResetTokenExp = &resetTokenExp

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	s.sendPasswordResetEmail(user.Email, resetToken)

	return nil
}

func (s *AuthServiceImpl) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return apperrors.ErrInvalidToken
	}

	if user.ResetTokenExp == nil || time.Now().After(*user.ResetTokenExp) {
		return apperrors.ErrInvalidToken
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	user.ResetToken = ""
	user.ResetTokenExp = nil

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Invalidate all sessions after a reset.
	s.refreshTokenRepo.DeleteByUserID(user.ID)

	return nil
}

func (s *AuthServiceImpl) ChangePassword(userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	user.PasswordHash = hashedPassword
	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// --- Helpers ---

func (s *AuthServiceImpl) buildLoginResponse(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := auth.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         s.buildUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) buildUserResponse(user *models.User) *dto.UserResponse {
	userResponse := &dto.UserResponse{
		ID:         user.ID,
		Email:      user.Email,
		Role:       user.Role,
		IsVerified: user.IsVerified,
		Profile:    user.Profile,
	}

	if userResponse.Profile == nil {
		if profile, err := s.profileRepo.FindByUserID(user.ID); err == nil {
			userResponse.Profile = profile
		}
	}

	return userResponse
}

func (s *AuthServiceImpl) createRefreshToken(userID string) (string, error) {
	refreshToken := generateRandomToken()

	refreshTokenModel := &models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(refreshTokenModel); err != nil {
		return "", err
	}

	return refreshToken, nil
}

func (s *AuthServiceImpl) sendVerificationEmail(to, token, userID string) {
	go func() {
		if err := s.emailProvider.SendVerification(to, token, userID); err != nil {
			logger.Error("failed to send verification email", "error", err, "to", to)
		}
	}()
}

func (s *AuthServiceImpl) sendPasswordResetEmail(to, token string) {
	go func() {
		if err := s.emailProvider.SendPasswordReset(to, token); err != nil {
			logger.Error("failed to send password reset email", "error", err, "to", to)
		}
	}()
}

func generateRandomToken() string {
	return uuid.NewString()
}
