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

func scheduleProjectInterview(t *testing.T, ts *helpers.TestServer) (ownerToken, engineerToken string, interview models.Interview) {
	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	engineerToken, engineer := helpers.CreateAndLoginEngineer(t, ts)
	project := helpers.CreateTestProject(t, ts.DB, owner.ID, "Interview project", "go")

	res, _ := ts.SendRequest(t, http.MethodPost,
		fmt.Sprintf("/api/v1/projects/%s/interest", project.ID), engineerToken, nil)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	body := map[string]interface{}{
		"project_id":     project.ID,
		"engineer_id":    engineer.ID,
		"meeting_link":   "https://meet.example.com/abc",
		"scheduled_time": time.Now().Add(48 * time.Hour).Format(time.RFC3339),
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/interviews", ownerToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	require.NoError(t, ts.DB.First(&interview, "project_id = ? AND engineer_id = ?", project.ID, engineer.ID).Error)
	return ownerToken, engineerToken, interview
}

func TestScheduleInterview_CreatesScheduledProjectInterview(t *testing.T) {
	ts := GetTestServer(t)

	_, _, interview := scheduleProjectInterview(t, ts)

	assert.Equal(t, models.InterviewStatusScheduled, interview.Status)
	assert.Equal(t, models.InterviewTypeProject, interview.InterviewType)
	require.NotNil(t, interview.ProjectID)
	require.NotNil(t, interview.ScheduledTime)

	// Engineer got the invitation.
	var notification models.Notification
	require.NoError(t, ts.DB.First(&notification,
		"user_id = ? AND type = ?", interview.EngineerID, "interview_scheduled").Error)
	assert.Contains(t, notification.Message, "invited to an interview")
	assert.Equal(t, "/interviews", notification.Link)
	assert.JSONEq(t, fmt.Sprintf(`{"interview_id":%q}`, interview.ID), string(notification.Data))

	// Scheduling accepted the pending interest.
	var interest models.ProjectInterest
	require.NoError(t, ts.DB.First(&interest,
		"project_id = ? AND engineer_id = ?", *interview.ProjectID, interview.EngineerID).Error)
	assert.Equal(t, models.InterestStatusAccepted, interest.Status)
}

func TestScheduleInterview_RequiresExpressedInterest(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, owner := helpers.CreateAndLoginOwner(t, ts)
	_, engineer := helpers.CreateAndLoginEngineer(t, ts)
	project := helpers.CreateTestProject(t, ts.DB, owner.ID, "No interest project", "go")

	body := map[string]interface{}{
		"project_id":     project.ID,
		"engineer_id":    engineer.ID,
		"meeting_link":   "https://meet.example.com/xyz",
		"scheduled_time": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
	}
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/interviews", ownerToken, body)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateInterviewStatus_ParticipantsOnly(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _, interview := scheduleProjectInterview(t, ts)
	strangerToken, _ := helpers.CreateAndLoginEngineer(t, ts)

	path := fmt.Sprintf("/api/v1/interviews/%s/status", interview.ID)

	res, _ := ts.SendRequest(t, http.MethodPut, path, strangerToken, map[string]interface{}{"status": "cancelled"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var reloaded models.Interview
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", interview.ID).Error)
	assert.Equal(t, models.InterviewStatusScheduled, reloaded.Status)

	res, _ = ts.SendRequest(t, http.MethodPut, path, ownerToken, map[string]interface{}{"status": "completed"})
	assert.Equal(t, http.StatusOK, res.StatusCode)

	require.NoError(t, ts.DB.First(&reloaded, "id = ?", interview.ID).Error)
	assert.Equal(t, models.InterviewStatusCompleted, reloaded.Status)
}

func TestUpdateInterviewStatus_TerminalStateConflicts(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, engineerToken, interview := scheduleProjectInterview(t, ts)

	path := fmt.Sprintf("/api/v1/interviews/%s/status", interview.ID)

	res, _ := ts.SendRequest(t, http.MethodPut, path, ownerToken, map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Even a participant cannot reopen or flip a settled interview.
	res, _ = ts.SendRequest(t, http.MethodPut, path, engineerToken, map[string]interface{}{"status": "cancelled"})
	assert.Equal(t, http.StatusConflict, res.StatusCode)

	var reloaded models.Interview
	require.NoError(t, ts.DB.First(&reloaded, "id = ?", interview.ID).Error)
	assert.Equal(t, models.InterviewStatusCompleted, reloaded.Status)
}

func TestUpdateInterviewStatus_RejectsNonTerminalTarget(t *testing.T) {
	ts := GetTestServer(t)

	ownerToken, _, interview := scheduleProjectInterview(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/interviews/%s/status", interview.ID),
		ownerToken, map[string]interface{}{"status": "scheduled"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestScheduleVettingInterview_AdminFlow(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	ownerToken, _ := helpers.CreateAndLoginOwner(t, ts)
	_, engineer := helpers.CreateAndLoginEngineer(t, ts)

	body := map[string]interface{}{"engineer_id": engineer.ID}

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/vetting-interviews", ownerToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/vetting-interviews", adminToken, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var interview models.Interview
	require.NoError(t, ts.DB.First(&interview,
		"engineer_id = ? AND interview_type = ?", engineer.ID, models.InterviewTypeVetting).Error)
	assert.Equal(t, models.InterviewStatusPendingVetting, interview.Status)
	assert.Nil(t, interview.ProjectID)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", engineer.ID).Error)
	assert.Equal(t, models.VettingStatusPending, profile.VettingStatus)

	var notification models.Notification
	require.NoError(t, ts.DB.First(&notification,
		"user_id = ? AND type = ?", engineer.ID, "vetting_scheduled").Error)
	assert.Contains(t, notification.Message, "vetting interview")
	assert.JSONEq(t, fmt.Sprintf(`{"interview_id":%q}`, interview.ID), string(notification.Data))
}

func TestScheduleVettingInterview_RejectsNonEngineerTarget(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, owner := helpers.CreateAndLoginOwner(t, ts)

	body := map[string]interface{}{"engineer_id": owner.ID}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/vetting-interviews", adminToken, body)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Interview{}).
		Where("engineer_id = ?", owner.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestCompleteVettingInterview_MarksEngineerVetted(t *testing.T) {
	ts := GetTestServer(t)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts)
	_, engineer := helpers.CreateAndLoginEngineer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/admin/vetting-interviews", adminToken,
		map[string]interface{}{"engineer_id": engineer.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode)

	var interview models.Interview
	require.NoError(t, ts.DB.First(&interview,
		"engineer_id = ? AND interview_type = ?", engineer.ID, models.InterviewTypeVetting).Error)

	// The admin is the owner side of a vetting interview.
	res, _ = ts.SendRequest(t, http.MethodPut,
		fmt.Sprintf("/api/v1/interviews/%s/status", interview.ID),
		adminToken, map[string]interface{}{"status": "completed"})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var profile models.Profile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", engineer.ID).Error)
	assert.Equal(t, models.VettingStatusPassed, profile.VettingStatus)
}

func TestListInterviews_ParticipantsSeeTheirOwn(t *testing.T) {
	ts := GetTestServer(t)

	_, engineerToken, interview := scheduleProjectInterview(t, ts)
	outsiderToken, _ := helpers.CreateAndLoginEngineer(t, ts)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/interviews", engineerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var response struct {
		Interviews []models.Interview `json:"interviews"`
	}
	parseJSON(t, bodyStr, &response)

	found := false
	for _, iv := range response.Interviews {
		if iv.ID == interview.ID {
			found = true
		}
	}
	assert.True(t, found)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/interviews", outsiderToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	parseJSON(t, bodyStr, &response)
	for _, iv := range response.Interviews {
		assert.NotEqual(t, interview.ID, iv.ID)
	}
}
