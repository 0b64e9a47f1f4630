package validator

import (
	"testing"

	"rabt_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RegisterRequest(t *testing.T) {
	v := New()

	valid := dto.RegisterRequest{
		FullName: "Aruzhan Beketova",
		Email:    "aruzhan@test.com",
		Password: "password123",
		Role:     "engineer",
	}
	assert.NoError(t, v.Validate(valid))

	invalid := dto.RegisterRequest{
		FullName: "A",
		Email:    "not-an-email",
		Password: "short",
		Role:     "superuser",
	}
	err := v.Validate(invalid)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	// Field names come from json tags, not Go names.
	assert.Contains(t, vErr.Errors, "full_name")
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Contains(t, vErr.Errors, "role")
}

func TestValidate_AdminRoleRejectedAtRegistration(t *testing.T) {
	v := New()

	req := dto.RegisterRequest{
		FullName: "Not An Admin",
		Email:    "admin@test.com",
		Password: "password123",
		Role:     "admin",
	}
	err := v.Validate(req)
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid user role", vErr.Errors["role"])
}

func TestValidate_InterviewStatusAllowsTerminalOnly(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(dto.UpdateInterviewStatusRequest{Status: "completed"}))
	assert.NoError(t, v.Validate(dto.UpdateInterviewStatusRequest{Status: "cancelled"}))
	assert.Error(t, v.Validate(dto.UpdateInterviewStatusRequest{Status: "scheduled"}))
	assert.Error(t, v.Validate(dto.UpdateInterviewStatusRequest{Status: "pending_vetting"}))
}

func TestValidate_OptionalProfileFields(t *testing.T) {
	v := New()

	// All-empty update is valid; everything is optional.
	assert.NoError(t, v.Validate(dto.UpdateProfileRequest{}))

	badURL := "not a url"
	err := v.Validate(dto.UpdateProfileRequest{PortfolioURL: &badURL})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "Must be a valid URL", vErr.Errors["portfolio_url"])
}
