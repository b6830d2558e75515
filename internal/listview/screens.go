package listview

import (
	"context"
	"strconv"

	"github.com/carebridge/navigator-console/pkg/interfaces"
	"github.com/carebridge/navigator-console/pkg/logger"
	"github.com/carebridge/navigator-console/pkg/types"
)

// Per-screen constructors binding the generic controller to a typed
// resource service. Filter keys mirror the backend query parameters.

// NewMembersController creates the Members list screen controller
func NewMembersController(svc interfaces.MemberService, pageSize int, log *logger.Logger) *Controller[types.Member] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Member], error) {
		return svc.List(ctx, memberQuery(params))
	}
	return NewController("members", pageSize, fetcher, log)
}

// NewStudentsController creates the Students list screen controller,
// the Members screen pre-filtered to student members of one school
func NewStudentsController(svc interfaces.MemberService, schoolID string, pageSize int, log *logger.Logger) *Controller[types.Member] {
	isStudent := true
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Member], error) {
		query := memberQuery(params)
		query.IsStudent = &isStudent
		query.SchoolID = schoolID
		return svc.List(ctx, query)
	}
	return NewController("students", pageSize, fetcher, log)
}

// NewAppointmentsController creates the Appointments list screen
// controller
func NewAppointmentsController(svc interfaces.AppointmentService, pageSize int, log *logger.Logger) *Controller[types.Appointment] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Appointment], error) {
		query := &types.AppointmentListQuery{
			ListQuery:   baseQuery(params),
			Status:      types.AppointmentStatus(params.Filters["status"]),
			NavigatorID: params.Filters["navigatorId"],
		}
		return svc.List(ctx, query)
	}
	return NewController("appointments", pageSize, fetcher, log)
}

// NewDoctorsController creates the Doctors list screen controller
func NewDoctorsController(svc interfaces.DoctorService, pageSize int, log *logger.Logger) *Controller[types.Doctor] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Doctor], error) {
		return svc.List(ctx, doctorQuery(params))
	}
	return NewController("doctors", pageSize, fetcher, log)
}

// NewEmpanelledDoctorsController creates the Empanelled Doctors list
// screen controller, the Doctors screen pre-filtered to the empanelled
// directory
func NewEmpanelledDoctorsController(svc interfaces.DoctorService, pageSize int, log *logger.Logger) *Controller[types.Doctor] {
	empanelled := true
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Doctor], error) {
		query := doctorQuery(params)
		query.IsEmpanelled = &empanelled
		return svc.List(ctx, query)
	}
	return NewController("empanelled-doctors", pageSize, fetcher, log)
}

// NewNursesController creates the Nurses list screen controller
func NewNursesController(svc interfaces.NurseService, pageSize int, log *logger.Logger) *Controller[types.Nurse] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.Nurse], error) {
		query := &types.NurseListQuery{
			ListQuery:   baseQuery(params),
			SchoolID:    params.Filters["schoolId"],
			NavigatorID: params.Filters["navigatorId"],
		}
		return svc.List(ctx, query)
	}
	return NewController("nurses", pageSize, fetcher, log)
}

// NewInfirmaryController creates the school Infirmary records list
// screen controller, scoped to one school
func NewInfirmaryController(svc interfaces.InfirmaryService, schoolID string, pageSize int, log *logger.Logger) *Controller[types.InfirmaryVisit] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.InfirmaryVisit], error) {
		query := &types.InfirmaryListQuery{
			ListQuery: baseQuery(params),
			SchoolID:  schoolID,
			MemberID:  params.Filters["memberId"],
			NurseID:   params.Filters["nurseId"],
			FromDate:  params.Filters["from_date"],
			ToDate:    params.Filters["to_date"],
		}
		return svc.List(ctx, query)
	}
	return NewController("infirmary", pageSize, fetcher, log)
}

// NewProvidersController creates the Healthcare Providers list screen
// controller
func NewProvidersController(svc interfaces.ProviderService, pageSize int, log *logger.Logger) *Controller[types.HealthcareProvider] {
	fetcher := func(ctx context.Context, params FetchParams) (*types.Result[[]types.HealthcareProvider], error) {
		query := &types.ProviderListQuery{
			ListQuery: baseQuery(params),
			Type:      types.ProviderType(params.Filters["type"]),
			City:      params.Filters["city"],
		}
		return svc.List(ctx, query)
	}
	return NewController("hc-providers", pageSize, fetcher, log)
}

// baseQuery maps fetch params to the shared list query fields
func baseQuery(params FetchParams) types.ListQuery {
	return types.ListQuery{
		Page:      params.Page,
		Limit:     params.Limit,
		Search:    params.Search,
		SortBy:    params.Filters["sortBy"],
		SortOrder: params.Filters["sortOrder"],
	}
}

// memberQuery maps fetch params to the members list query
func memberQuery(params FetchParams) *types.MemberListQuery {
	query := &types.MemberListQuery{
		ListQuery:      baseQuery(params),
		NavigatorID:    params.Filters["navigatorId"],
		SchoolID:       params.Filters["schoolId"],
		Grade:          params.Filters["grade"],
		Section:        params.Filters["section"],
		MaritalStatus:  params.Filters["maritalStatus"],
		EducationLevel: params.Filters["educationLevel"],
		FromDate:       params.Filters["from_date"],
		ToDate:         params.Filters["to_date"],
	}
	query.IsStudent = boolFilter(params.Filters, "isStudent")
	query.IsSubprofile = boolFilter(params.Filters, "isSubprofile")
	return query
}

// doctorQuery maps fetch params to the doctors list query
func doctorQuery(params FetchParams) *types.DoctorListQuery {
	query := &types.DoctorListQuery{
		ListQuery:      baseQuery(params),
		Specialization: params.Filters["specialization"],
		NavigatorID:    params.Filters["navigatorId"],
	}
	query.IsEmpanelled = boolFilter(params.Filters, "isEmpanelled")
	return query
}

// boolFilter parses an optional boolean filter key; absent or
// unparseable values stay unset
func boolFilter(filters map[string]string, key string) *bool {
	raw, ok := filters[key]
	if !ok {
		return nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &value
}
