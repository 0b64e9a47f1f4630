package validator

import (
	"log"

	"rabt_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

// registerCustomRules installs the domain enum checks. Empty values pass so
// that 'required' keeps sole responsibility for presence.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("is-user-role", validateUserRole)
	mustRegister("is-project-status", validateProjectStatus)
	mustRegister("is-interview-status", validateInterviewStatus)
}

func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.UserRole(value) {
	// Admins are seeded, never self-registered.
	case models.UserRoleEngineer, models.UserRoleBusinessOwner:
		return true
	default:
		return false
	}
}

func validateProjectStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.ProjectStatus(value) {
	case models.ProjectStatusOpen, models.ProjectStatusMatching, models.ProjectStatusInProgress, models.ProjectStatusClosed:
		return true
	default:
		return false
	}
}

func validateInterviewStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	// Participants may only move an interview to a terminal state.
	switch models.InterviewStatus(value) {
	case models.InterviewStatusCompleted, models.InterviewStatusCancelled:
		return true
	default:
		return false
	}
}
