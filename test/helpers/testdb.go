package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"rabt_backend/internal/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateUser inserts a verified user directly, hashing the raw password
// carried in PasswordHash.
func CreateUser(t *testing.T, db *gorm.DB, user *models.User) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	require.NoError(t, err, "hashing test password must not fail")
	user.PasswordHash = string(hashed)
	user.IsVerified = true

	require.NoError(t, db.Create(user).Error, "creating test user must not fail")
}

// CreateAndLoginUser creates a verified user plus profile and logs in
// through the API, returning the access token.
func CreateAndLoginUser(t *testing.T, ts *TestServer, fullName, email, password string, role models.UserRole, profileStatus models.ProfileStatus) (string, *models.User) {
	user := &models.User{
		Email:        email,
		PasswordHash: password,
		Role:         role,
	}
	CreateUser(t, ts.DB, user)

	profile := &models.Profile{
		UserID:   user.ID,
		FullName: fullName,
		Status:   profileStatus,
	}
	require.NoError(t, ts.DB.Create(profile).Error, "creating test profile must not fail")

	loginBody := map[string]interface{}{
		"email":    email,
		"password": password,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, res.StatusCode, "login must succeed, got: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &loginResponse))
	require.NotEmpty(t, loginResponse.Token)

	return loginResponse.Token, user
}

// CreateAndLoginEngineer creates an approved engineer with a unique email.
func CreateAndLoginEngineer(t *testing.T, ts *TestServer, skills ...string) (string, *models.User) {
	email := fmt.Sprintf("engineer_%d@test.com", time.Now().UnixNano())
	token, user := CreateAndLoginUser(t, ts, "Test Engineer", email, "password123", models.UserRoleEngineer, models.ProfileStatusApproved)

	if len(skills) > 0 {
		require.NoError(t, ts.DB.Model(&models.Profile{}).
			Where("user_id = ?", user.ID).
			Update("skills", pq.StringArray(skills)).Error)
	}

	return token, user
}

// CreateAndLoginOwner creates a business owner with a unique email.
func CreateAndLoginOwner(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("owner_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Owner", email, "password123", models.UserRoleBusinessOwner, models.ProfileStatusApproved)
}

// CreateAndLoginAdmin creates an admin with a unique email.
func CreateAndLoginAdmin(t *testing.T, ts *TestServer) (string, *models.User) {
	email := fmt.Sprintf("admin_%d@test.com", time.Now().UnixNano())
	return CreateAndLoginUser(t, ts, "Test Admin", email, "password123", models.UserRoleAdmin, models.ProfileStatusApproved)
}

// CreateTestProject inserts an open project owned by ownerID.
func CreateTestProject(t *testing.T, db *gorm.DB, ownerID, title string, requiredSkills ...string) *models.Project {
	project := &models.Project{
		OwnerID:        ownerID,
		Title:          title,
		Description:    "A test project description long enough to be realistic.",
		RequiredSkills: requiredSkills,
		Status:         models.ProjectStatusOpen,
	}
	require.NoError(t, db.Create(project).Error, "creating test project must not fail")
	return project
}
