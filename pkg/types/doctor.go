package types

import "time"

// Doctor represents a doctor in the network directory. Empanelled
// doctors are pre-registered directory entries; assignment links tie a
// doctor to specific navigators and members.
type Doctor struct {
	ID              string     `json:"_id,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Specializations []string   `json:"specialization,omitempty"`
	Qualifications  string     `json:"qualifications,omitempty"`
	OfflineAddress  *Address   `json:"offlineAddress,omitempty"`
	IsEmpanelled    bool       `json:"isEmpanelled,omitempty"`
	NavigatorIDs    []string   `json:"navigatorIds,omitempty"`
	MemberIDs       []string   `json:"memberIds,omitempty"`
	ProfileImageURL string     `json:"profileImageUrl,omitempty"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

// DoctorListQuery holds the doctors list endpoint filters
type DoctorListQuery struct {
	ListQuery
	Specialization string `json:"specialization,omitempty"`
	IsEmpanelled   *bool  `json:"isEmpanelled,omitempty"`
	NavigatorID    string `json:"navigatorId,omitempty"`
}
