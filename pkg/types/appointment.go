package types

import "time"

// AppointmentStatus enumerates the appointment lifecycle states
type AppointmentStatus string

const (
	AppointmentPending   AppointmentStatus = "pending"
	AppointmentOngoing   AppointmentStatus = "ongoing"
	AppointmentCompleted AppointmentStatus = "completed"
	AppointmentCancelled AppointmentStatus = "cancelled"
)

// PaymentStatus enumerates the appointment payment states
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Appointment represents a navigator-created appointment between a
// member and a doctor. Either DoctorID references a directory doctor or
// CustomDoctorName carries a free-text doctor, never both.
type Appointment struct {
	ID                   string            `json:"_id,omitempty"`
	MemberID             string            `json:"memberId"`
	DoctorID             string            `json:"doctorId,omitempty"`
	CustomDoctorName     string            `json:"customDoctorName,omitempty"`
	NavigatorID          string            `json:"navigatorId,omitempty"`
	Service              string            `json:"service,omitempty"`
	CustomService        string            `json:"customService,omitempty"`
	Specializations      []string          `json:"specialization,omitempty"`
	CustomSpecialization string            `json:"customSpecialization,omitempty"`
	DateTime             *time.Time        `json:"appointmentDateTime,omitempty"`
	Status               AppointmentStatus `json:"status,omitempty"`
	Payment              PaymentStatus     `json:"payment,omitempty"`
	HospitalName         string            `json:"hospitalName,omitempty"`
	HospitalAddress      string            `json:"hospitalAddress,omitempty"`
	Notes                string            `json:"notes,omitempty"`
	CreatedAt            *time.Time        `json:"createdAt,omitempty"`
	UpdatedAt            *time.Time        `json:"updatedAt,omitempty"`
}

// AppointmentListQuery holds the appointments list endpoint filters
type AppointmentListQuery struct {
	ListQuery
	Status      AppointmentStatus `json:"status,omitempty"`
	NavigatorID string            `json:"navigatorId,omitempty"`
}

// Mutable reports whether the appointment can still be edited.
// Completed appointments are immutable.
func (a *Appointment) Mutable() bool {
	return a.Status != AppointmentCompleted
}
