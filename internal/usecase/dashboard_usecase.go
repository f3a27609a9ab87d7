package usecase

import (
	"context"
	"time"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const (
	patientUpcomingLimit = 3
	patientRecentLimit   = 3
	doctorPendingLimit   = 5
	doctorRecentLimit    = 5
)

// DashboardUsecase serves the read side of appointments for the session user
type DashboardUsecase interface {
	Dashboard(ctx context.Context, user entity.User) *dto.DashboardResponse
	Appointments(ctx context.Context, user entity.User, query *dto.AppointmentQuery) *dto.AppointmentListResponse
}

type dashboardUsecase struct {
	log                *logrus.Logger
	appointmentUsecase AppointmentUsecase
	directory          *AppointmentDirectory
	now                func() time.Time
}

func NewDashboardUsecase(
	log *logrus.Logger,
	appointmentUsecase AppointmentUsecase,
	directory *AppointmentDirectory,
	now func() time.Time,
) DashboardUsecase {
	if now == nil {
		now = time.Now
	}
	return &dashboardUsecase{
		log:                log,
		appointmentUsecase: appointmentUsecase,
		directory:          directory,
		now:                now,
	}
}

func (u *dashboardUsecase) Dashboard(ctx context.Context, user entity.User) *dto.DashboardResponse {
	appointments := u.appointmentUsecase.ListFor(ctx, user.ID, user.Role)
	today := DateString(u.now())

	response := &dto.DashboardResponse{Role: string(user.Role)}
	if user.IsDoctor() {
		response.Doctor = u.doctorDashboard(ctx, appointments, today)
	} else {
		response.Patient = u.patientDashboard(ctx, appointments, today)
	}
	return response
}

func (u *dashboardUsecase) patientDashboard(ctx context.Context, appointments []entity.Appointment, today string) *dto.PatientDashboardResponse {
	upcoming := UpcomingAppointments(appointments, today)

	return &dto.PatientDashboardResponse{
		Stats: dto.PatientStats{
			TotalAppointments: len(appointments),
			Upcoming:          len(upcoming),
			Completed:         CountByStatus(appointments)[entity.AppointmentStatusCompleted],
			Doctors:           DistinctCount(appointments, func(a *entity.Appointment) string { return a.DoctorID }),
		},
		UpcomingAppointments: u.directory.DescribeAll(ctx, limitAppointments(SortBySchedule(upcoming, false), patientUpcomingLimit)),
		RecentAppointments:   u.directory.DescribeAll(ctx, limitAppointments(SortByRecent(appointments), patientRecentLimit)),
	}
}

func (u *dashboardUsecase) doctorDashboard(ctx context.Context, appointments []entity.Appointment, today string) *dto.DoctorDashboardResponse {
	todays := TodayAppointments(appointments, today)
	pending := AppointmentsWithStatus(appointments, entity.AppointmentStatusPending)

	return &dto.DoctorDashboardResponse{
		Stats: dto.DoctorStats{
			TotalAppointments: len(appointments),
			Today:             len(todays),
			Pending:           len(pending),
			Patients:          DistinctCount(appointments, func(a *entity.Appointment) string { return a.PatientID }),
		},
		TodayAppointments:   u.directory.DescribeAll(ctx, SortBySchedule(todays, false)),
		PendingAppointments: u.directory.DescribeAll(ctx, limitAppointments(SortBySchedule(pending, false), doctorPendingLimit)),
		RecentAppointments:  u.directory.DescribeAll(ctx, limitAppointments(SortByRecent(appointments), doctorRecentLimit)),
	}
}

// Appointments lists the user's appointments through the query filter.
// Without an explicit order the latest scheduled come first.
func (u *dashboardUsecase) Appointments(ctx context.Context, user entity.User, query *dto.AppointmentQuery) *dto.AppointmentListResponse {
	appointments := u.appointmentUsecase.ListFor(ctx, user.ID, user.Role)

	filter := converter.AppointmentQueryToFilter(query)
	if filter.SortBy == "" {
		filter.SortBy = entity.AppointmentSortScheduleDesc
	}

	filtered := FilterAppointments(appointments, filter, DateString(u.now()), u.directory.PatientNames(ctx))

	counts := make(map[string]int, len(entity.AppointmentStatuses))
	for status, n := range CountByStatus(appointments) {
		counts[string(status)] = n
	}

	return &dto.AppointmentListResponse{
		Appointments: u.directory.DescribeAll(ctx, filtered),
		Total:        len(filtered),
		StatusCounts: counts,
	}
}
