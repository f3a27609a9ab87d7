package usecase

import (
	"context"
	"testing"

	"medcare-booking/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func booking() entity.AppointmentDraft {
	return entity.AppointmentDraft{
		PatientID: "p1",
		DoctorID:  "1",
		Date:      "2026-10-20",
		Time:      "10:00",
		Reason:    "Chest pain",
	}
}

func TestParseTransitionPolicy(t *testing.T) {
	assert.Equal(t, TransitionPermissive, ParseTransitionPolicy(" Permissive "))
	assert.Equal(t, TransitionStrict, ParseTransitionPolicy("strict"))
	assert.Equal(t, TransitionStrict, ParseTransitionPolicy(""))
	assert.Equal(t, TransitionStrict, ParseTransitionPolicy("loose"))
}

func TestAppointmentUsecase_Create(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := patientCtx("p1")

	created, err := uc.Create(ctx, booking())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, entity.AppointmentStatusPending, created.Status)
	assert.Equal(t, testNow, created.CreatedAt)
	assert.Empty(t, created.Notes)
	assert.Nil(t, created.UpdatedAt)

	stored := env.appointments.FindAll(ctx)
	require.Len(t, stored, 1)
	assert.Equal(t, *created, stored[0])

	logs := env.auditLogs.FindByUserID(ctx, "p1", 0)
	require.Len(t, logs, 1)
	assert.Equal(t, entity.AuditActionAppointmentCreate, logs[0].Action)
}

func TestAppointmentUsecase_CreateAllowsDoubleBooking(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := patientCtx("p1")

	first, err := uc.Create(ctx, booking())
	require.NoError(t, err)
	second, err := uc.Create(ctx, booking())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, env.appointments.FindAll(ctx), 2)
}

func TestAppointmentUsecase_Lifecycle(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)

	created, err := uc.Create(patientCtx("p1"), booking())
	require.NoError(t, err)

	ctx := doctorCtx("1")
	approved, err := uc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusApproved, approved.Status)
	require.NotNil(t, approved.UpdatedAt)
	assert.Equal(t, testNow, *approved.UpdatedAt)

	completed, err := uc.Complete(ctx, created.ID, "Prescribed rest")
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, completed.Status)
	assert.Equal(t, "Prescribed rest", completed.Notes)

	// fields other than status, notes and updatedAt are untouched
	assert.Equal(t, created.CreatedAt, completed.CreatedAt)
	assert.Equal(t, created.Reason, completed.Reason)
	assert.Equal(t, created.Date, completed.Date)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, completed, got)

	logs := env.auditLogs.FindByUserID(ctx, "1", 0)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.AuditActionAppointmentComplete, logs[0].Action)
	assert.Equal(t, "approved", logs[0].Metadata["old_value"])
	assert.Equal(t, "completed", logs[0].Metadata["new_value"])

	count, err := testutil.GatherAndCount(env.metrics.Registry(), "medcare_appointment_transitions_total")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestAppointmentUsecase_CancelFromPendingAndApproved(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := patientCtx("p1")

	pending, err := uc.Create(ctx, booking())
	require.NoError(t, err)
	cancelled, err := uc.Cancel(ctx, pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)

	other, err := uc.Create(ctx, booking())
	require.NoError(t, err)
	_, err = uc.Approve(doctorCtx("1"), other.ID)
	require.NoError(t, err)
	cancelled, err = uc.Cancel(ctx, other.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)
}

func TestAppointmentUsecase_CompleteKeepsNotesWhenEmpty(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionPermissive)
	ctx := doctorCtx("1")

	seeded := entity.Appointment{ID: "a1", PatientID: "p1", DoctorID: "1", Status: entity.AppointmentStatusApproved, Notes: "Bring reports", CreatedAt: testNow}
	require.NoError(t, env.appointments.Save(ctx, &seeded))

	completed, err := uc.Complete(ctx, "a1", "")
	require.NoError(t, err)
	assert.Equal(t, "Bring reports", completed.Notes)
}

func TestAppointmentUsecase_UnknownID(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := doctorCtx("1")

	created, err := uc.Create(patientCtx("p1"), booking())
	require.NoError(t, err)
	before, err := env.kv.Get(context.Background(), "medcare_appointments")
	require.NoError(t, err)

	_, err = uc.Approve(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = uc.Cancel(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = uc.Complete(ctx, "missing", "notes")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	_, err = uc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	after, err := env.kv.Get(context.Background(), "medcare_appointments")
	require.NoError(t, err)
	assert.Equal(t, before, after)

	got, err := uc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, got.Status)
}

func TestAppointmentUsecase_StrictPolicy(t *testing.T) {
	tests := []struct {
		name  string
		from  entity.AppointmentStatus
		apply func(AppointmentUsecase, context.Context, string) (*entity.Appointment, error)
	}{
		{"complete from pending", entity.AppointmentStatusPending, func(uc AppointmentUsecase, ctx context.Context, id string) (*entity.Appointment, error) {
			return uc.Complete(ctx, id, "notes")
		}},
		{"approve cancelled", entity.AppointmentStatusCancelled, func(uc AppointmentUsecase, ctx context.Context, id string) (*entity.Appointment, error) {
			return uc.Approve(ctx, id)
		}},
		{"cancel completed", entity.AppointmentStatusCompleted, func(uc AppointmentUsecase, ctx context.Context, id string) (*entity.Appointment, error) {
			return uc.Cancel(ctx, id)
		}},
		{"approve completed", entity.AppointmentStatusCompleted, func(uc AppointmentUsecase, ctx context.Context, id string) (*entity.Appointment, error) {
			return uc.Approve(ctx, id)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			uc := env.appointmentUsecase(TransitionStrict)
			ctx := doctorCtx("1")

			seeded := entity.Appointment{ID: "a1", PatientID: "p1", DoctorID: "1", Status: tt.from, CreatedAt: testNow}
			require.NoError(t, env.appointments.Save(ctx, &seeded))

			_, err := tt.apply(uc, ctx, "a1")
			assert.ErrorIs(t, err, ErrInvalidTransition)

			stored := env.appointments.FindByID(ctx, "a1")
			require.NotNil(t, stored)
			assert.Equal(t, tt.from, stored.Status)
			assert.Nil(t, stored.UpdatedAt)
			assert.Empty(t, env.auditLogs.FindAll(ctx))
		})
	}
}

func TestAppointmentUsecase_SameStatusIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := doctorCtx("1")

	created, err := uc.Create(patientCtx("p1"), booking())
	require.NoError(t, err)
	_, err = uc.Approve(ctx, created.ID)
	require.NoError(t, err)

	again, err := uc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusApproved, again.Status)
}

func TestAppointmentUsecase_PermissivePolicy(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionPermissive)
	ctx := doctorCtx("1")

	created, err := uc.Create(patientCtx("p1"), booking())
	require.NoError(t, err)

	completed, err := uc.Complete(ctx, created.ID, "Walk-in")
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCompleted, completed.Status)

	reopened, err := uc.Approve(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusApproved, reopened.Status)
	assert.Equal(t, "Walk-in", reopened.Notes)
}

func TestAppointmentUsecase_ListFor(t *testing.T) {
	env := newTestEnv(t)
	uc := env.appointmentUsecase(TransitionStrict)
	ctx := context.Background()

	for _, draft := range []entity.AppointmentDraft{
		{PatientID: "p1", DoctorID: "1", Date: "2026-10-20", Time: "09:00", Reason: "a"},
		{PatientID: "p2", DoctorID: "1", Date: "2026-10-21", Time: "09:00", Reason: "b"},
		{PatientID: "p1", DoctorID: "2", Date: "2026-10-22", Time: "09:00", Reason: "c"},
	} {
		_, err := uc.Create(ctx, draft)
		require.NoError(t, err)
	}

	patient := uc.ListFor(ctx, "p1", entity.RolePatient)
	require.Len(t, patient, 2)
	assert.Equal(t, "a", patient[0].Reason)
	assert.Equal(t, "c", patient[1].Reason)

	doctor := uc.ListFor(ctx, "1", entity.RoleDoctor)
	require.Len(t, doctor, 2)
	assert.Equal(t, "b", doctor[1].Reason)

	assert.Empty(t, uc.ListFor(ctx, "p1", entity.Role("admin")))
	assert.NotNil(t, uc.ListFor(ctx, "nobody", entity.RolePatient))
}
