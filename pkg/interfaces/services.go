package interfaces

import (
	"context"

	"github.com/carebridge/navigator-console/pkg/types"
)

// SessionManager is the single owner of persisted session state. No
// other module reads or writes the session store directly.
type SessionManager interface {
	Login(token types.AuthToken, user types.User) error
	Logout() error
	Token() (string, error)
	RefreshToken() (string, error)
	CurrentUser() (*types.User, error)
	SetCurrentUser(user types.User) error
	IsAuthenticated() bool
}

// AuthService covers the auth endpoints and the navigator's own profile
type AuthService interface {
	Login(ctx context.Context, email, password string) (*types.LoginResponse, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
	Profile(ctx context.Context) (*types.User, error)
	UpdateProfile(ctx context.Context, user *types.User) (*types.User, error)
}

// MemberService covers the members resource and its sub-collections
type MemberService interface {
	List(ctx context.Context, query *types.MemberListQuery) (*types.Result[[]types.Member], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.Member], error)
	Create(ctx context.Context, member *types.Member) (*types.Result[*types.Member], error)
	Update(ctx context.Context, id string, member *types.Member) (*types.Result[*types.Member], error)
	Delete(ctx context.Context, id string) error
	AssignNavigator(ctx context.Context, memberID, navigatorID string) error
	AssignDoctor(ctx context.Context, memberID, doctorID string) error
	AssignNurse(ctx context.Context, memberID, nurseID string) error
	BulkUpload(ctx context.Context, fileName string, csv []byte) (*types.BulkUploadReport, error)
	MembershipCard(ctx context.Context, memberID string) ([]byte, error)

	ListNotes(ctx context.Context, memberID string) ([]types.Note, error)
	CreateNote(ctx context.Context, memberID string, content string) (*types.Note, error)
	UpdateNote(ctx context.Context, memberID, noteID string, content string) (*types.Note, error)
	DeleteNote(ctx context.Context, memberID, noteID string) error
}

// AppointmentService covers the appointments resource
type AppointmentService interface {
	List(ctx context.Context, query *types.AppointmentListQuery) (*types.Result[[]types.Appointment], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.Appointment], error)
	Create(ctx context.Context, apt *types.Appointment) (*types.Result[*types.Appointment], error)
	Update(ctx context.Context, id string, apt *types.Appointment) (*types.Result[*types.Appointment], error)
	Delete(ctx context.Context, id string) error
	AppointmentPDF(ctx context.Context, id string) ([]byte, error)
}

// DoctorService covers the doctors directory resource
type DoctorService interface {
	List(ctx context.Context, query *types.DoctorListQuery) (*types.Result[[]types.Doctor], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.Doctor], error)
	Create(ctx context.Context, doctor *types.Doctor) (*types.Result[*types.Doctor], error)
	Update(ctx context.Context, id string, doctor *types.Doctor) (*types.Result[*types.Doctor], error)
	Delete(ctx context.Context, id string) error
	AssignNavigator(ctx context.Context, doctorID, navigatorID string) error
	ProfilePDF(ctx context.Context, doctorID string) ([]byte, error)
}

// NurseService covers the nurses directory resource
type NurseService interface {
	List(ctx context.Context, query *types.NurseListQuery) (*types.Result[[]types.Nurse], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.Nurse], error)
	Create(ctx context.Context, nurse *types.Nurse) (*types.Result[*types.Nurse], error)
	Update(ctx context.Context, id string, nurse *types.Nurse) (*types.Result[*types.Nurse], error)
	Delete(ctx context.Context, id string) error
}

// InfirmaryService covers the school infirmary visit records resource
type InfirmaryService interface {
	List(ctx context.Context, query *types.InfirmaryListQuery) (*types.Result[[]types.InfirmaryVisit], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.InfirmaryVisit], error)
	Create(ctx context.Context, visit *types.InfirmaryVisit) (*types.Result[*types.InfirmaryVisit], error)
	Update(ctx context.Context, id string, visit *types.InfirmaryVisit) (*types.Result[*types.InfirmaryVisit], error)
	Delete(ctx context.Context, id string) error
}

// ProviderService covers the healthcare provider facilities resource
type ProviderService interface {
	List(ctx context.Context, query *types.ProviderListQuery) (*types.Result[[]types.HealthcareProvider], error)
	GetByID(ctx context.Context, id string) (*types.Result[*types.HealthcareProvider], error)
	Create(ctx context.Context, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error)
	Update(ctx context.Context, id string, p *types.HealthcareProvider) (*types.Result[*types.HealthcareProvider], error)
	Delete(ctx context.Context, id string) error
}

// MedicalHistoryService covers a member's medical history snapshots
type MedicalHistoryService interface {
	GetAll(ctx context.Context, memberID string) ([]types.MedicalHistory, error)
	Get(ctx context.Context, memberID, historyID string) (*types.MedicalHistory, error)
	Create(ctx context.Context, memberID string, history *types.MedicalHistory) (*types.MedicalHistory, error)
	Update(ctx context.Context, memberID, historyID string, patch *types.MedicalHistory) (*types.MedicalHistory, error)
	Delete(ctx context.Context, memberID, historyID string) error
}

// NotificationService covers the current user's notifications
type NotificationService interface {
	List(ctx context.Context) ([]types.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

// MediaService covers binary upload to the hosted media store
type MediaService interface {
	Upload(ctx context.Context, fileName string, content []byte) (*types.MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}

// PincodeService covers the external postal pincode lookup
type PincodeService interface {
	Lookup(ctx context.Context, pincode string) (*types.PincodeRegion, error)
}
