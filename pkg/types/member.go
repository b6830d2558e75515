package types

import "time"

// Gender enumerates the accepted gender values
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Address represents a postal address attached to a member or provider
type Address struct {
	ID         string `json:"_id,omitempty"`
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Region     string `json:"region,omitempty"`
	PinCode    string `json:"pinCode,omitempty"`
	Country    string `json:"country,omitempty"`
	IsPrimary  bool   `json:"isPrimary,omitempty"`
	AddressFor string `json:"addressFor,omitempty"`
}

// EmergencyContact represents a member's emergency contact person
type EmergencyContact struct {
	ID           string `json:"_id,omitempty"`
	Name         string `json:"name,omitempty"`
	Relationship string `json:"relationship,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Email        string `json:"email,omitempty"`
}

// HealthcareTeam references the navigator/doctor/nurse trio currently
// assigned to a member
type HealthcareTeam struct {
	NavigatorID string `json:"navigatorId,omitempty"`
	DoctorID    string `json:"doctorId,omitempty"`
	NurseID     string `json:"nurseId,omitempty"`
}

// StudentDetails holds school program fields for student members
type StudentDetails struct {
	SchoolID   string `json:"schoolId,omitempty"`
	SchoolName string `json:"schoolName,omitempty"`
	Grade      string `json:"grade,omitempty"`
	Section    string `json:"section,omitempty"`
	RollNumber string `json:"rollNumber,omitempty"`
}

// Subscription represents a plan or addon attached to a member
type Subscription struct {
	ID        string     `json:"_id,omitempty"`
	PlanID    string     `json:"planId,omitempty"`
	PlanName  string     `json:"planName,omitempty"`
	IsAddon   bool       `json:"isAddon,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

// Member represents a patient/beneficiary record. A member may be a
// subprofile dependent of a primary member, and may be a student
// enrolled in the school health program.
type Member struct {
	ID               string            `json:"_id,omitempty"`
	FirstName        string            `json:"firstName"`
	LastName         string            `json:"lastName,omitempty"`
	Email            string            `json:"email,omitempty"`
	Phone            string            `json:"phone,omitempty"`
	DateOfBirth      string            `json:"dob,omitempty"`
	Gender           Gender            `json:"gender,omitempty"`
	BloodGroup       string            `json:"bloodGroup,omitempty"`
	HeightCm         float64           `json:"height,omitempty"`
	WeightKg         float64           `json:"weight,omitempty"`
	MaritalStatus    string            `json:"maritalStatus,omitempty"`
	EducationLevel   string            `json:"educationLevel,omitempty"`
	Addresses        []Address         `json:"address,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
	HealthcareTeam   *HealthcareTeam   `json:"healthcareTeam,omitempty"`
	IsSubprofile     bool              `json:"isSubprofile,omitempty"`
	PrimaryMemberID  string            `json:"primaryMemberId,omitempty"`
	IsStudent        bool              `json:"isStudent,omitempty"`
	StudentDetails   *StudentDetails   `json:"studentDetails,omitempty"`
	Subscriptions    []Subscription    `json:"subscriptions,omitempty"`
	Addons           []Subscription    `json:"addons,omitempty"`
	CreatedAt        *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt        *time.Time        `json:"updatedAt,omitempty"`
}

// MemberListQuery holds the full filter surface of the members list
// endpoint. Zero-valued fields are omitted from the query string.
type MemberListQuery struct {
	ListQuery
	NavigatorID    string `json:"navigatorId,omitempty"`
	IsStudent      *bool  `json:"isStudent,omitempty"`
	SchoolID       string `json:"schoolId,omitempty"`
	Grade          string `json:"grade,omitempty"`
	Section        string `json:"section,omitempty"`
	IsSubprofile   *bool  `json:"isSubprofile,omitempty"`
	MaritalStatus  string `json:"maritalStatus,omitempty"`
	EducationLevel string `json:"educationLevel,omitempty"`
	FromDate       string `json:"from_date,omitempty"`
	ToDate         string `json:"to_date,omitempty"`
}

// Note is a free-text annotation attached to a member, ordered by
// creation time
type Note struct {
	ID        string     `json:"_id,omitempty"`
	MemberID  string     `json:"memberId,omitempty"`
	Content   string     `json:"content"`
	CreatedBy string     `json:"createdBy,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}
