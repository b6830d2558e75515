package types

import "time"

// InfirmaryVisit is one school infirmary record for a student member:
// who came in, what was observed, and what was done about it.
type InfirmaryVisit struct {
	ID         string     `json:"_id,omitempty"`
	MemberID   string     `json:"memberId"`
	SchoolID   string     `json:"schoolId,omitempty"`
	NurseID    string     `json:"nurseId,omitempty"`
	VisitDate  *time.Time `json:"visitDate,omitempty"`
	Reason     string     `json:"reason,omitempty"`
	Symptoms   string     `json:"symptoms,omitempty"`
	Treatment  string     `json:"treatment,omitempty"`
	Medication string     `json:"medication,omitempty"`
	ReferredTo string     `json:"referredTo,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  *time.Time `json:"createdAt,omitempty"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// InfirmaryListQuery holds the infirmary records list endpoint filters
type InfirmaryListQuery struct {
	ListQuery
	SchoolID string `json:"schoolId,omitempty"`
	MemberID string `json:"memberId,omitempty"`
	NurseID  string `json:"nurseId,omitempty"`
	FromDate string `json:"from_date,omitempty"`
	ToDate   string `json:"to_date,omitempty"`
}
