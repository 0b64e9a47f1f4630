package models

type UserRole string
type ProfileStatus string
type VettingStatus string
type ProjectStatus string
type InterestStatus string
type InterviewStatus string
type InterviewType string

const (
	UserRoleEngineer      UserRole = "engineer"
	UserRoleBusinessOwner UserRole = "business_owner"
	UserRoleAdmin         UserRole = "admin"

	ProfileStatusPendingApproval ProfileStatus = "pending_approval"
	ProfileStatusApproved        ProfileStatus = "approved"
	ProfileStatusRejected        ProfileStatus = "rejected"

	VettingStatusNone    VettingStatus = "none"
	VettingStatusPending VettingStatus = "pending"
	VettingStatusPassed  VettingStatus = "passed"

	ProjectStatusOpen       ProjectStatus = "open"
	ProjectStatusMatching   ProjectStatus = "matching"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusClosed     ProjectStatus = "closed"

	InterestStatusPending  InterestStatus = "pending"
	InterestStatusAccepted InterestStatus = "accepted"
	InterestStatusRejected InterestStatus = "rejected"

	InterviewStatusScheduled      InterviewStatus = "scheduled"
	InterviewStatusCompleted      InterviewStatus = "completed"
	InterviewStatusCancelled      InterviewStatus = "cancelled"
	InterviewStatusPendingVetting InterviewStatus = "pending_vetting"

	InterviewTypeProject InterviewType = "project_interview"
	InterviewTypeVetting InterviewType = "vetting_interview"
)

// IsTerminal reports whether an interview can no longer change status.
func (s InterviewStatus) IsTerminal() bool {
	return s == InterviewStatusCompleted || s == InterviewStatusCancelled
}
