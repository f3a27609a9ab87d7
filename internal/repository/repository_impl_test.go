package repository

import (
	"context"
	"testing"

	"medcare-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	assert.Nil(t, repo.FindByEmail(ctx, "ann@example.com"))

	require.NoError(t, repo.Save(ctx, &entity.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Role: entity.RolePatient}))
	require.NoError(t, repo.Save(ctx, &entity.User{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: entity.RolePatient}))
	require.NoError(t, repo.Save(ctx, &entity.User{ID: "u1", Name: "Ann Lee", Email: "ANN@example.com", Role: entity.RolePatient}))

	assert.Len(t, repo.FindAll(ctx), 2)
	found := repo.FindByEmail(ctx, "ann@example.com")
	require.NotNil(t, found)
	assert.Equal(t, "Ann Lee", found.Name)
	require.NotNil(t, repo.FindByID(ctx, "u2"))
	assert.Nil(t, repo.FindByID(ctx, "u3"))
}

func TestUserRepository_CreateRejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	require.NoError(t, repo.Create(ctx, &entity.User{ID: "u1", Name: "Ann", Email: "ann@example.com", Role: entity.RolePatient}))
	err := repo.Create(ctx, &entity.User{ID: "u2", Name: "Ann Two", Email: "Ann@Example.com", Role: entity.RolePatient})
	require.ErrorIs(t, err, ErrEntityConflict)

	users := repo.FindAll(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
}

func TestAppointmentRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewAppointmentRepository(store)

	a1 := appt("a1", "checkup")
	a2 := appt("a2", "rash")
	a2.PatientID = "p2"
	a2.DoctorID = "2"
	require.NoError(t, repo.Save(ctx, &a1))
	require.NoError(t, repo.Save(ctx, &a2))

	assert.Len(t, repo.FindByPatientID(ctx, "p1"), 1)
	assert.Len(t, repo.FindByDoctorID(ctx, "2"), 1)
	assert.Empty(t, repo.FindByDoctorID(ctx, "9"))
	assert.NotNil(t, repo.FindByID(ctx, "a2"))
	assert.Nil(t, repo.FindByID(ctx, "a3"))

	updated, err := repo.Update(ctx, "a1", func(a *entity.Appointment) error {
		a.Status = entity.AppointmentStatusApproved
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusApproved, updated.Status)

	_, err = repo.Update(ctx, "missing", func(*entity.Appointment) error { return nil })
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestMedicalRecordRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewMedicalRecordRepository(store)

	require.NoError(t, repo.Save(ctx, &entity.MedicalRecord{ID: "r1", PatientID: "p1", Diagnosis: "Hypertension"}))
	require.NoError(t, repo.Save(ctx, &entity.MedicalRecord{ID: "r2", PatientID: "p2", Diagnosis: "Eczema"}))

	records := repo.FindByPatientID(ctx, "p1")
	require.Len(t, records, 1)
	assert.Equal(t, "Hypertension", records[0].Diagnosis)
	assert.NotNil(t, repo.FindByID(ctx, "r2"))
	assert.Nil(t, repo.FindByID(ctx, "r3"))
}

func TestAvailabilityRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewAvailabilityRepository(store)

	_, ok := repo.FindByDoctorID(ctx, "1")
	assert.False(t, ok)

	require.NoError(t, repo.Save(ctx, "1", entity.WeeklyAvailability{entity.Monday: {"07:00"}}))
	availability, ok := repo.FindByDoctorID(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, []string{"07:00"}, availability[entity.Monday])
}

func TestSessionRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewSessionRepository(store)

	require.NoError(t, repo.Save(ctx, &entity.Session{ID: "s1", User: entity.User{ID: "u1"}}))
	session := repo.FindByID(ctx, "s1")
	require.NotNil(t, session)
	assert.Equal(t, "u1", session.User.ID)

	require.NoError(t, repo.Delete(ctx, "s1"))
	assert.Nil(t, repo.FindByID(ctx, "s1"))
}

func TestAuditLogRepository_FindByUserIDNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore(t)
	repo := NewAuditLogRepository(store)

	for _, l := range []entity.AuditLog{
		{ID: "1", UserID: "u1", Action: entity.AuditActionUserLogin},
		{ID: "2", UserID: "u2", Action: entity.AuditActionUserLogin},
		{ID: "3", UserID: "u1", Action: entity.AuditActionAppointmentCreate},
		{ID: "4", UserID: "u1", Action: entity.AuditActionUserLogout},
	} {
		require.NoError(t, repo.Create(ctx, &l))
	}

	logs := repo.FindByUserID(ctx, "u1", 2)
	require.Len(t, logs, 2)
	assert.Equal(t, "4", logs[0].ID)
	assert.Equal(t, "3", logs[1].ID)
	assert.Len(t, repo.FindAll(ctx), 4)
}

func TestDoctorRepository(t *testing.T) {
	repo := NewDoctorRepository()

	doctors := repo.FindAll()
	require.Len(t, doctors, 4)
	assert.Equal(t, "Dr. Sarah Johnson", doctors[0].Name)
	assert.Equal(t, "4.9", doctors[1].Rating.String())
	assert.Len(t, doctors[0].Availability, 5)

	doctors[0].Name = "changed"
	assert.Equal(t, "Dr. Sarah Johnson", repo.FindByID("1").Name)
	assert.Nil(t, repo.FindByID("99"))

	assert.Len(t, repo.Specialties(), 8)

	account := repo.FindAccountByEmail("Michael.Chen@medcare.com")
	require.NotNil(t, account)
	assert.Equal(t, "2", account.DoctorID)
	assert.Equal(t, "doctor123", account.Password)
	assert.Nil(t, repo.FindAccountByEmail("nobody@medcare.com"))
}
