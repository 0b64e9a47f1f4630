package integration_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"rabt_backend/internal/models"
	"rabt_backend/internal/repositories"
	"rabt_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_CreatesUnverifiedUserWithProfile(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("register_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"full_name": "Jamila Aliyeva",
		"email":     email,
		"password":  "password123",
		"role":      "engineer",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)
	assert.False(t, user.IsVerified)
	assert.NotEmpty(t, user.VerificationToken)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Jamila Aliyeva", profile.FullName)
	assert.Equal(t, models.ProfileStatusPendingApproval, profile.Status)
	assert.Equal(t, models.VettingStatusNone, profile.VettingStatus)
}

func TestRegister_DuplicateEmailConflicts(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("dup_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"full_name": "First User",
		"email":     email,
		"password":  "password123",
		"role":      "business_owner",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestRegister_ConcurrentSameEmailKeepsOneUser(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("race_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"full_name": "Race Registrant",
		"email":     email,
		"password":  "password123",
		"role":      "engineer",
	}

	const workers = 5
	var wg sync.WaitGroup
	statuses := make([]int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
			statuses[i] = res.StatusCode
		}(i)
	}
	wg.Wait()

	created := 0
	for _, status := range statuses {
		if status == http.StatusCreated {
			created++
		} else {
			assert.Equal(t, http.StatusConflict, status)
		}
	}
	assert.Equal(t, 1, created, "exactly one registration may win")

	var count int64
	require.NoError(t, ts.DB.Model(&models.User{}).
		Where("email = ?", email).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestRegister_RejectsAdminRole(t *testing.T) {
	ts := GetTestServer(t)

	body := map[string]interface{}{
		"full_name": "Sneaky Admin",
		"email":     fmt.Sprintf("sneak_%d@test.com", time.Now().UnixNano()),
		"password":  "password123",
		"role":      "admin",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestLogin_UnverifiedUserForbidden(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("unverified_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"full_name": "Unverified User",
		"email":     email,
		"password":  "password123",
		"role":      "engineer",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestLogin_InvalidCredentialsUnauthorized(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginEngineer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "nobody@test.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestVerifyEmail_RedirectsAndMarksVerified(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("verify_%d@test.com", time.Now().UnixNano())
	body := map[string]interface{}{
		"full_name": "Verify Me",
		"email":     email,
		"password":  "password123",
		"role":      "engineer",
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)

	path := fmt.Sprintf("/api/v1/auth/verify-email?token=%s&userId=%s", user.VerificationToken, user.ID)
	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "status=success")

	require.NoError(t, ts.DB.First(&user, "email = ?", email).Error)
	assert.True(t, user.IsVerified)
	assert.Empty(t, user.VerificationToken)

	// The spent token no longer verifies anyone.
	res, _ = ts.SendRequest(t, http.MethodGet, path, "", nil)
	assert.Equal(t, http.StatusFound, res.StatusCode)
	assert.Contains(t, res.Header.Get("Location"), "status=error")
}

func TestRefreshToken_RotatesAndRejectsReuse(t *testing.T) {
	ts := GetTestServer(t)

	email := fmt.Sprintf("refresh_%d@test.com", time.Now().UnixNano())
	helpers.CreateAndLoginUser(t, ts, "Refresh User", email, "password123", models.UserRoleEngineer, models.ProfileStatusApproved)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "password123",
	})
	require.Equal(t, http.StatusOK, res.StatusCode)

	refreshToken := extractJSONField(t, bodyStr, "refresh_token")

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Spent token.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", map[string]interface{}{
		"refresh_token": refreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestCleanExpiredRefreshTokens_KeepsLiveTokens(t *testing.T) {
	ts := GetTestServer(t)

	_, user := helpers.CreateAndLoginEngineer(t, ts)

	expired := &models.RefreshToken{
		UserID:    user.ID,
		Token:     fmt.Sprintf("expired_%d", time.Now().UnixNano()),
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	live := &models.RefreshToken{
		UserID:    user.ID,
		Token:     fmt.Sprintf("live_%d", time.Now().UnixNano()),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, ts.DB.Create(expired).Error)
	require.NoError(t, ts.DB.Create(live).Error)

	require.NoError(t, repositories.NewRefreshTokenRepository(ts.DB).CleanExpired())

	var count int64
	require.NoError(t, ts.DB.Model(&models.RefreshToken{}).
		Where("token = ?", expired.Token).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, ts.DB.Model(&models.RefreshToken{}).
		Where("token = ?", live.Token).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestChangePassword_RequiresCurrentPassword(t *testing.T) {
	ts := GetTestServer(t)

	token, user := helpers.CreateAndLoginEngineer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/change-password", token, map[string]interface{}{
		"current_password": "wrong-password",
		"new_password":     "newpassword123",
	})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/change-password", token, map[string]interface{}{
		"current_password": "password123",
		"new_password":     "newpassword123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    user.Email,
		"password": "newpassword123",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestResetPassword_DoesNotLeakAccountExistence(t *testing.T) {
	ts := GetTestServer(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/reset-password", "", map[string]interface{}{
		"email": "does-not-exist@test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
