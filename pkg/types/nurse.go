package types

import "time"

// Nurse represents a nurse in the network directory. School nurses
// staff the Ahana infirmaries; assignment links tie a nurse to a
// member's healthcare team.
type Nurse struct {
	ID              string     `json:"_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Qualifications  string     `json:"qualifications,omitempty"`
	SchoolID        string     `json:"schoolId,omitempty"`
	NavigatorIDs    []string   `json:"navigatorIds,omitempty"`
	MemberIDs       []string   `json:"memberIds,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// NurseListQuery holds the nurses list endpoint filters
type NurseListQuery struct {
	ListQuery
	SchoolID    string `json:"schoolId,omitempty"`
	NavigatorID string `json:"navigatorId,omitempty"`
}
