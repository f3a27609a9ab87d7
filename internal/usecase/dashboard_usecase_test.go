package usecase

import (
	"context"
	"testing"
	"time"

	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) dashboardUsecase() DashboardUsecase {
	return NewDashboardUsecase(e.log, e.appointmentUsecase(TransitionStrict), NewAppointmentDirectory(e.doctors, e.users), e.now)
}

// seedAppointments stores a mix around testNow (2026-10-15)
func seedAppointments(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.users.Save(ctx, &entity.User{ID: "p1", Name: "John Doe", Email: "john@example.com", Role: entity.RolePatient}))
	require.NoError(t, env.users.Save(ctx, &entity.User{ID: "p2", Name: "Jane Roe", Email: "jane@example.com", Role: entity.RolePatient}))

	created := func(day int) time.Time { return time.Date(2026, 10, day, 8, 0, 0, 0, time.UTC) }
	for _, a := range []entity.Appointment{
		{ID: "a1", PatientID: "p1", DoctorID: "1", Date: "2026-10-15", Time: "14:00", Reason: "Follow-up", Status: entity.AppointmentStatusApproved, CreatedAt: created(1)},
		{ID: "a2", PatientID: "p2", DoctorID: "1", Date: "2026-10-15", Time: "09:00", Reason: "Chest pain", Status: entity.AppointmentStatusPending, CreatedAt: created(2)},
		{ID: "a3", PatientID: "p1", DoctorID: "2", Date: "2026-10-01", Time: "11:00", Reason: "Rash", Status: entity.AppointmentStatusCompleted, CreatedAt: created(3)},
		{ID: "a4", PatientID: "p1", DoctorID: "1", Date: "2026-10-22", Time: "10:00", Reason: "Headache", Status: entity.AppointmentStatusCancelled, CreatedAt: created(4)},
		{ID: "a5", PatientID: "p1", DoctorID: "3", Date: "2026-10-20", Time: "08:30", Reason: "Checkup", Status: entity.AppointmentStatusPending, CreatedAt: created(5)},
		{ID: "a6", PatientID: "p1", DoctorID: "1", Date: "2026-10-16", Time: "15:00", Reason: "Blood test", Status: entity.AppointmentStatusPending, CreatedAt: created(6)},
		{ID: "a7", PatientID: "p1", DoctorID: "1", Date: "2026-11-02", Time: "09:00", Reason: "Review", Status: entity.AppointmentStatusApproved, CreatedAt: created(7)},
	} {
		a := a
		require.NoError(t, env.appointments.Save(ctx, &a))
	}
}

func responseIDs(list []dto.AppointmentResponse) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}
	return out
}

func TestDashboardUsecase_Patient(t *testing.T) {
	env := newTestEnv(t)
	seedAppointments(t, env)

	res := env.dashboardUsecase().Dashboard(context.Background(), entity.User{ID: "p1", Role: entity.RolePatient})
	require.NotNil(t, res.Patient)
	assert.Nil(t, res.Doctor)
	assert.Equal(t, "patient", res.Role)

	assert.Equal(t, dto.PatientStats{TotalAppointments: 6, Upcoming: 4, Completed: 1, Doctors: 3}, res.Patient.Stats)
	assert.Equal(t, []string{"a1", "a6", "a5"}, responseIDs(res.Patient.UpcomingAppointments))
	assert.Equal(t, []string{"a7", "a6", "a5"}, responseIDs(res.Patient.RecentAppointments))
	assert.Equal(t, "Dr. Sarah Johnson", res.Patient.UpcomingAppointments[0].DoctorName)
}

func TestDashboardUsecase_Doctor(t *testing.T) {
	env := newTestEnv(t)
	seedAppointments(t, env)

	res := env.dashboardUsecase().Dashboard(context.Background(), entity.User{ID: "1", Role: entity.RoleDoctor})
	require.NotNil(t, res.Doctor)
	assert.Nil(t, res.Patient)

	assert.Equal(t, dto.DoctorStats{TotalAppointments: 5, Today: 2, Pending: 2, Patients: 2}, res.Doctor.Stats)
	assert.Equal(t, []string{"a2", "a1"}, responseIDs(res.Doctor.TodayAppointments))
	assert.Equal(t, []string{"a2", "a6"}, responseIDs(res.Doctor.PendingAppointments))
	assert.Equal(t, []string{"a7", "a6", "a4", "a2", "a1"}, responseIDs(res.Doctor.RecentAppointments))
	assert.Equal(t, "Jane Roe", res.Doctor.TodayAppointments[0].PatientName)
}

func TestDashboardUsecase_EmptyLists(t *testing.T) {
	env := newTestEnv(t)

	res := env.dashboardUsecase().Dashboard(context.Background(), entity.User{ID: "p1", Role: entity.RolePatient})
	require.NotNil(t, res.Patient)
	assert.NotNil(t, res.Patient.UpcomingAppointments)
	assert.NotNil(t, res.Patient.RecentAppointments)
	assert.Zero(t, res.Patient.Stats.TotalAppointments)
}

func TestDashboardUsecase_Appointments(t *testing.T) {
	env := newTestEnv(t)
	seedAppointments(t, env)
	uc := env.dashboardUsecase()
	ctx := context.Background()
	doctor := entity.User{ID: "1", Role: entity.RoleDoctor}

	all := uc.Appointments(ctx, doctor, &dto.AppointmentQuery{})
	assert.Equal(t, []string{"a7", "a4", "a6", "a1", "a2"}, responseIDs(all.Appointments))
	assert.Equal(t, map[string]int{"pending": 2, "approved": 2, "completed": 0, "cancelled": 1}, all.StatusCounts)

	pending := uc.Appointments(ctx, doctor, &dto.AppointmentQuery{Status: "pending", Sort: "schedule"})
	assert.Equal(t, []string{"a2", "a6"}, responseIDs(pending.Appointments))
	assert.Equal(t, 2, pending.Total)
	assert.Equal(t, 2, pending.StatusCounts["approved"])

	byName := uc.Appointments(ctx, doctor, &dto.AppointmentQuery{Search: "jane"})
	assert.Equal(t, []string{"a2"}, responseIDs(byName.Appointments))

	past := uc.Appointments(ctx, entity.User{ID: "p1", Role: entity.RolePatient}, &dto.AppointmentQuery{Date: "past"})
	assert.Equal(t, []string{"a3"}, responseIDs(past.Appointments))
}
