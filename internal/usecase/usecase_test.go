package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"medcare-booking/config"
	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
	"medcare-booking/internal/infrastructure/metrics"
	"medcare-booking/internal/infrastructure/storage"
	"medcare-booking/internal/repository"
	"medcare-booking/internal/service"
	"medcare-booking/pkg/jwt"

	"github.com/sirupsen/logrus"
)

var testNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

// testEnv wires every repository to one in-memory store
type testEnv struct {
	log          *logrus.Logger
	kv           *storage.MemoryStore
	store        *repository.EntityStore
	metrics      *metrics.Metrics
	users        domainRepo.UserRepository
	appointments domainRepo.AppointmentRepository
	records      domainRepo.MedicalRecordRepository
	doctors      domainRepo.DoctorRepository
	availability domainRepo.AvailabilityRepository
	sessions     domainRepo.SessionRepository
	auditLogs    domainRepo.AuditLogRepository
	audit        service.AuditService
	jwt          *jwt.JWTService
	now          func() time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	kv := storage.NewMemoryStore()
	m := metrics.New()
	store := repository.NewEntityStore(kv, "medcare_", log, m)
	now := func() time.Time { return testNow }
	auditLogs := repository.NewAuditLogRepository(store)

	return &testEnv{
		log:          log,
		kv:           kv,
		store:        store,
		metrics:      m,
		users:        repository.NewUserRepository(store),
		appointments: repository.NewAppointmentRepository(store),
		records:      repository.NewMedicalRecordRepository(store),
		doctors:      repository.NewDoctorRepository(),
		availability: repository.NewAvailabilityRepository(store),
		sessions:     repository.NewSessionRepository(store),
		auditLogs:    auditLogs,
		audit:        service.NewAuditService(log, auditLogs, now),
		jwt:          jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", SessionExpiry: time.Hour}),
		now:          now,
	}
}

func (e *testEnv) appointmentUsecase(policy TransitionPolicy) AppointmentUsecase {
	return NewAppointmentUsecase(e.log, e.appointments, e.audit, e.metrics, policy, e.now)
}

// asUser returns a context carrying a session for user
func asUser(user entity.User) context.Context {
	return middleware.WithSession(context.Background(), &entity.Session{ID: "s-" + user.ID, User: user})
}

func patientCtx(id string) context.Context {
	return asUser(entity.User{ID: id, Name: "Patient " + id, Role: entity.RolePatient})
}

func doctorCtx(id string) context.Context {
	return asUser(entity.User{ID: id, Name: "Doctor " + id, Role: entity.RoleDoctor})
}
