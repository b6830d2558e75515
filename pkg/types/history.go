package types

import "time"

// TreatingDoctor is a doctor entry inside a medical history snapshot
type TreatingDoctor struct {
	Name           string `json:"name,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	Hospital       string `json:"hospital,omitempty"`
	Phone          string `json:"phone,omitempty"`
}

// FollowUp is a scheduled follow-up entry
type FollowUp struct {
	Reason string `json:"reason,omitempty"`
	Date   string `json:"date,omitempty"`
	Doctor string `json:"doctor,omitempty"`
}

// Condition is a previous or ongoing medical condition
type Condition struct {
	Name          string `json:"name,omitempty"`
	DiagnosedDate string `json:"diagnosedDate,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Surgery is a past surgical procedure entry
type Surgery struct {
	Name     string `json:"name,omitempty"`
	Date     string `json:"date,omitempty"`
	Hospital string `json:"hospital,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Allergy is a known allergy entry
type Allergy struct {
	Allergen string `json:"allergen,omitempty"`
	Reaction string `json:"reaction,omitempty"`
	Severity string `json:"severity,omitempty"`
}

// Medication is a current medication entry
type Medication struct {
	Name      string `json:"name,omitempty"`
	Dosage    string `json:"dosage,omitempty"`
	Frequency string `json:"frequency,omitempty"`
	StartDate string `json:"startDate,omitempty"`
}

// FamilyHistoryEntry records a condition present in the member's family
type FamilyHistoryEntry struct {
	Relation  string `json:"relation,omitempty"`
	Condition string `json:"condition,omitempty"`
}

// Immunization is a vaccination record entry
type Immunization struct {
	Vaccine string `json:"vaccine,omitempty"`
	Date    string `json:"date,omitempty"`
	Dose    string `json:"dose,omitempty"`
}

// TestResult is a medical test result entry
type TestResult struct {
	TestName string `json:"testName,omitempty"`
	Date     string `json:"date,omitempty"`
	Result   string `json:"result,omitempty"`
	FileURL  string `json:"fileUrl,omitempty"`
}

// Symptom is a current symptom entry
type Symptom struct {
	Description string `json:"description,omitempty"`
	Since       string `json:"since,omitempty"`
	Severity    string `json:"severity,omitempty"`
}

// HealthInsurance is a health insurance policy entry
type HealthInsurance struct {
	Provider     string `json:"provider,omitempty"`
	PolicyNumber string `json:"policyNumber,omitempty"`
	ValidTill    string `json:"validTill,omitempty"`
}

// LifestyleHabits is the singleton lifestyle object on a history
// snapshot
type LifestyleHabits struct {
	Smoking       string `json:"smoking,omitempty"`
	Alcohol       string `json:"alcohol,omitempty"`
	Exercise      string `json:"exercise,omitempty"`
	Diet          string `json:"diet,omitempty"`
	SleepHours    string `json:"sleepHours,omitempty"`
	StressLevel   string `json:"stressLevel,omitempty"`
	Occupation    string `json:"occupation,omitempty"`
	OtherHabits   string `json:"otherHabits,omitempty"`
}

// MedicalHistory is one versioned history snapshot for a member. A
// member may hold multiple snapshots, each independently created,
// edited and deleted.
type MedicalHistory struct {
	ID                 string               `json:"_id,omitempty"`
	MemberID           string               `json:"memberId,omitempty"`
	TreatingDoctors    []TreatingDoctor     `json:"treatingDoctors,omitempty"`
	FollowUps          []FollowUp           `json:"followUps,omitempty"`
	PreviousConditions []Condition          `json:"previousConditions,omitempty"`
	Surgeries          []Surgery            `json:"surgeries,omitempty"`
	Allergies          []Allergy            `json:"allergies,omitempty"`
	CurrentMedications []Medication         `json:"currentMedications,omitempty"`
	FamilyHistory      []FamilyHistoryEntry `json:"familyHistory,omitempty"`
	Immunizations      []Immunization       `json:"immunizations,omitempty"`
	MedicalTestResults []TestResult         `json:"medicalTestResults,omitempty"`
	CurrentSymptoms    []Symptom            `json:"currentSymptoms,omitempty"`
	HealthInsurance    []HealthInsurance    `json:"healthInsurance,omitempty"`
	LifestyleHabits    *LifestyleHabits     `json:"lifestyleHabits,omitempty"`
	CreatedAt          *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt          *time.Time           `json:"updatedAt,omitempty"`
}
