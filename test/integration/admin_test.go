package integration_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"rabt_backend/internal/models"
	"rabt_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPendingEngineer(t *testing.T, ts *helpers.TestServer) (string, *models.User) {
	email := fmt.Sprintf("pending_%d@test.com", time.Now().UnixNano())
	return helpers.CreateAndLoginUser(t, ts, "Pending Engineer", email, "password123",
		models.UserRoleEngineer, models.ProfileStatusPendingApproval)
}

func TestApproveEngineer_AdminOnly(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	_, engineer := createPendingEngineer(t, ts)

	approvePath := fmt.Sprintf("/api/v1/admin/engineers/%s/approve", engineer.ID)

	// Non-admin is rejected and the status is untouched.
	res, _ := ts.SendRequest(t, http.MethodPut, approvePath, ownerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", engineer.ID).Error)
	assert.Equal(t, models.ProfileStatusPendingApproval, profile.Status)

	res, _ = ts.SendRequest(t, http.MethodPut, approvePath, adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&profile, "user_id = ?", engineer.ID).Error)
	assert.Equal(t, models.ProfileStatusApproved, profile.Status)
}

func TestRejectEngineer_SetsRejectedStatus(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, engineer := createPendingEngineer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/admin/engineers/%s/reject", engineer.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", engineer.ID).Error)
	assert.Equal(t, models.ProfileStatusRejected, profile.Status)
}

func TestApproveEngineer_MissingTargetIsNoOp(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)

	// Unknown engineer: the filtered update matches nothing and still 200s.
	res, _ := ts.SendRequest(t, http.MethodPut,
		"/api/v1/admin/engineers/00000000-0000-0000-0000-000000000000/approve", adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	// Business owners are out of the filter's reach too.
	_, owner := helpers.CreateAndLoginOwner(t, ts)
	res, _ = ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/admin/engineers/%s/approve", owner.ID), adminToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", owner.ID).Error)
	assert.Equal(t, models.ProfileStatusApproved, profile.Status)
}

func TestListPendingEngineers_ShowsVerifiedPendingOnly(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, pending := createPendingEngineer(t, ts)
	_, approved := helpers.CreateAndLoginEngineer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/engineers/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var response struct {
		Engineers []models.Profile `json:"engineers"`
	}
	parseJSON(t, bodyStr, &response)

	ids := make(map[string]bool)
	for _, p := range response.Engineers {
		ids[p.UserID] = true
	}
	assert.True(t, ids[pending.ID], "pending engineer must appear in the queue")
	assert.False(t, ids[approved.ID], "approved engineer must not appear in the queue")
}

func TestDashboardStats_CountsEntities(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, owner := helpers.CreateAndLoginOwner(t, ts)
	helpers.CreateTestProject(t, ts.DB, owner.ID, "Stats Project", "go")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var stats struct {
		TotalProjects       int64 `json:"total_projects"`
		TotalBusinessOwners int64 `json:"total_business_owners"`
	}
	parseJSON(t, bodyStr, &stats)
	assert.GreaterOrEqual(t, stats.TotalProjects, int64(1))
	assert.GreaterOrEqual(t, stats.TotalBusinessOwners, int64(1))
}
