package entity

import "github.com/google/uuid"

// Identity is the verified claim set extracted from an identity token.
type Identity struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Principal is the resolved application view of an authenticated caller.
type Principal struct {
	AccountID uuid.UUID      `json:"accountId"`
	UID       string         `json:"uid"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Role      Role           `json:"role"`
	Approval  ApprovalStatus `json:"approvalStatus,omitempty"`
}

// IsApproved reports whether the principal may use approval-gated features.
// Roles without an approval gate are always approved.
func (p *Principal) IsApproved() bool {
	if !p.Role.RequiresApproval() {
		return true
	}

	return p.Approval == ApprovalApproved
}

// NewPrincipal builds the principal for an account.
func NewPrincipal(account *Account) *Principal {
	return &Principal{
		AccountID: account.ID,
		UID:       account.FirebaseUID,
		Email:     account.Email,
		Name:      account.Name,
		Role:      account.Role,
		Approval:  account.Approval(),
	}
}
