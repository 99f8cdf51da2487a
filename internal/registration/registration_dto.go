package registration

import "strings"

// SubmitRegistrationRequest is the wire shape posted by the public form.
// Field order matters: missing-field names are reported in this order.
type SubmitRegistrationRequest struct {
	InterestType          string   `json:"interest_type" validate:"required"`
	FirstName             string   `json:"first_name" validate:"required"`
	LastName              string   `json:"last_name" validate:"required"`
	Phone                 string   `json:"phone" validate:"required"`
	Email                 string   `json:"email" validate:"required"`
	PreferredDays         []string `json:"preferred_days" validate:"min=1"`
	PreferredTime         []string `json:"preferred_time" validate:"min=1"`
	ReferredBy            string   `json:"referred_by" validate:"required"`
	Profession            string   `json:"profession"`
	BusinessOpportunities []string `json:"business_opportunities"`
	WealthSolutions       []string `json:"wealth_solutions"`
}

// normalized returns a copy ready for validation and persistence: scalar
// strings trimmed, interest type lowercased, nil collections as empty sets.
func (r SubmitRegistrationRequest) normalized() SubmitRegistrationRequest {
	norm := r
	norm.InterestType = strings.ToLower(strings.TrimSpace(r.InterestType))
	norm.FirstName = strings.TrimSpace(r.FirstName)
	norm.LastName = strings.TrimSpace(r.LastName)
	norm.Phone = strings.TrimSpace(r.Phone)
	norm.Email = strings.TrimSpace(r.Email)
	norm.ReferredBy = strings.TrimSpace(r.ReferredBy)
	norm.Profession = strings.TrimSpace(r.Profession)

	if norm.BusinessOpportunities == nil {
		norm.BusinessOpportunities = []string{}
	}
	if norm.WealthSolutions == nil {
		norm.WealthSolutions = []string{}
	}
	if norm.PreferredDays == nil {
		norm.PreferredDays = []string{}
	}
	if norm.PreferredTime == nil {
		norm.PreferredTime = []string{}
	}

	return norm
}
