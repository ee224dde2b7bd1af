package entity

// ApprovalStatus tracks the onboarding review of sellers and delivery personnel.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func (s ApprovalStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the known values.
func (s ApprovalStatus) IsValid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	default:
		return false
	}
}

// CanResolveTo reports whether an admin decision may move s to next.
// Only pending applications can be resolved, and only to approved or rejected.
func (s ApprovalStatus) CanResolveTo(next ApprovalStatus) bool {
	return s == ApprovalPending && (next == ApprovalApproved || next == ApprovalRejected)
}

// CanReapply reports whether an applicant may submit a new application.
func (s ApprovalStatus) CanReapply() bool {
	return s == ApprovalRejected
}
