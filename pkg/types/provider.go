package types

import "time"

// ProviderType enumerates healthcare provider facility types
type ProviderType string

const (
	ProviderHospital   ProviderType = "hospital"
	ProviderClinic     ProviderType = "clinic"
	ProviderPharmacy   ProviderType = "pharmacy"
	ProviderLaboratory ProviderType = "laboratory"
)

// Weekdays lists the seven fixed operation-hour keys in display order
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// OperationHours maps a weekday to its open time ranges, e.g.
// "monday" -> ["09:00-13:00", "16:00-20:00"]. All seven weekdays are
// always present; a closed day carries an empty list.
type OperationHours map[string][]string

// HealthcareProvider represents a provider facility in the network
type HealthcareProvider struct {
	ID              string         `json:"_id,omitempty"`
	Name            string         `json:"name"`
	Type            ProviderType   `json:"type"`
	Address         *Address       `json:"address,omitempty"`
	Phone           string         `json:"phone,omitempty"`
	Email           string         `json:"email,omitempty"`
	ServicesOffered []string       `json:"servicesOffered,omitempty"`
	OperationHours  OperationHours `json:"operationHours,omitempty"`
	CreatedAt       *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time     `json:"updatedAt,omitempty"`
}

// ProviderListQuery holds the healthcare providers list endpoint filters
type ProviderListQuery struct {
	ListQuery
	Type ProviderType `json:"type,omitempty"`
	City string       `json:"city,omitempty"`
}

// NewOperationHours returns operation hours with all seven weekdays
// initialized to closed.
func NewOperationHours() OperationHours {
	hours := make(OperationHours, len(Weekdays))
	for _, day := range Weekdays {
		hours[day] = []string{}
	}
	return hours
}

// PincodeRegion is the region information derived from a postal pincode
// lookup. City and State are derived read-only fields on address forms.
type PincodeRegion struct {
	Pincode  string `json:"pincode"`
	City     string `json:"city"`
	District string `json:"district"`
	State    string `json:"state"`
	Region   string `json:"region"`
}
