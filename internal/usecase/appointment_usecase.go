package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"
	"medcare-booking/internal/infrastructure/metrics"
	"medcare-booking/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidTransition   = errors.New("appointment cannot move to that status")
)

// TransitionPolicy decides which status changes are accepted
type TransitionPolicy string

const (
	// TransitionStrict accepts only the defined moves plus same-status rewrites
	TransitionStrict TransitionPolicy = "strict"
	// TransitionPermissive accepts any target status
	TransitionPermissive TransitionPolicy = "permissive"
)

// ParseTransitionPolicy falls back to strict for anything unrecognised
func ParseTransitionPolicy(s string) TransitionPolicy {
	if TransitionPolicy(strings.ToLower(strings.TrimSpace(s))) == TransitionPermissive {
		return TransitionPermissive
	}
	return TransitionStrict
}

// AppointmentUsecase owns the appointment lifecycle:
// pending -> approved | cancelled, approved -> completed | cancelled.
type AppointmentUsecase interface {
	Create(ctx context.Context, draft entity.AppointmentDraft) (*entity.Appointment, error)
	Approve(ctx context.Context, id string) (*entity.Appointment, error)
	Cancel(ctx context.Context, id string) (*entity.Appointment, error)
	Complete(ctx context.Context, id string, notes string) (*entity.Appointment, error)
	Get(ctx context.Context, id string) (*entity.Appointment, error)
	ListFor(ctx context.Context, userID string, role entity.Role) []entity.Appointment
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	auditService    service.AuditService
	metrics         *metrics.Metrics
	policy          TransitionPolicy
	now             func() time.Time
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	auditService service.AuditService,
	m *metrics.Metrics,
	policy TransitionPolicy,
	now func() time.Time,
) AppointmentUsecase {
	if now == nil {
		now = time.Now
	}
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		auditService:    auditService,
		metrics:         m,
		policy:          policy,
		now:             now,
	}
}

// Create books a new pending appointment. Nothing about the slot is checked:
// not the doctor's availability and not other bookings at the same time.
func (u *appointmentUsecase) Create(ctx context.Context, draft entity.AppointmentDraft) (*entity.Appointment, error) {
	appointment := &entity.Appointment{
		ID:        uuid.NewString(),
		PatientID: draft.PatientID,
		DoctorID:  draft.DoctorID,
		Date:      draft.Date,
		Time:      draft.Time,
		Reason:    draft.Reason,
		Status:    entity.AppointmentStatusPending,
		CreatedAt: u.now().UTC(),
	}

	if err := u.appointmentRepo.Save(ctx, appointment); err != nil {
		u.log.Warnf("Failed to save appointment for patient %s: %+v", draft.PatientID, err)
		return nil, err
	}
	u.metrics.Transition(string(entity.AppointmentStatusPending), nil)

	u.audit(ctx, entity.AuditActionAppointmentCreate, appointment.ID, nil, appointment)
	return appointment, nil
}

// Approve marks the appointment approved
func (u *appointmentUsecase) Approve(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusApproved, "", entity.AuditActionAppointmentApprove)
}

// Cancel marks the appointment cancelled; used both for a patient cancelling
// and for a doctor rejecting a request
func (u *appointmentUsecase) Cancel(ctx context.Context, id string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCancelled, "", entity.AuditActionAppointmentCancel)
}

// Complete marks the appointment completed. Non-empty notes replace the stored ones.
func (u *appointmentUsecase) Complete(ctx context.Context, id string, notes string) (*entity.Appointment, error) {
	return u.transition(ctx, id, entity.AppointmentStatusCompleted, notes, entity.AuditActionAppointmentComplete)
}

func (u *appointmentUsecase) Get(ctx context.Context, id string) (*entity.Appointment, error) {
	appointment := u.appointmentRepo.FindByID(ctx, id)
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// ListFor returns the appointments where the user is the patient or the
// doctor, depending on role, in stored order
func (u *appointmentUsecase) ListFor(ctx context.Context, userID string, role entity.Role) []entity.Appointment {
	switch role {
	case entity.RolePatient:
		return u.appointmentRepo.FindByPatientID(ctx, userID)
	case entity.RoleDoctor:
		return u.appointmentRepo.FindByDoctorID(ctx, userID)
	}
	return []entity.Appointment{}
}

func (u *appointmentUsecase) transition(ctx context.Context, id string, next entity.AppointmentStatus, notes string, action string) (*entity.Appointment, error) {
	var previous entity.AppointmentStatus

	updated, err := u.appointmentRepo.Update(ctx, id, func(a *entity.Appointment) error {
		previous = a.Status
		if u.policy != TransitionPermissive && !a.Status.CanTransitionTo(next) {
			return fmt.Errorf("%w: %s to %s", ErrInvalidTransition, a.Status, next)
		}

		at := u.now().UTC()
		switch next {
		case entity.AppointmentStatusApproved:
			a.Approve(at)
		case entity.AppointmentStatusCancelled:
			a.Cancel(at)
		case entity.AppointmentStatusCompleted:
			a.Complete(at, notes)
		default:
			a.Transition(next, at)
		}
		return nil
	})
	u.metrics.Transition(string(next), err)

	if err != nil {
		switch {
		case errors.Is(err, repository.ErrEntityNotFound):
			return nil, ErrAppointmentNotFound
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		}
		u.log.Warnf("Failed to move appointment %s to %s: %+v", id, next, err)
		return nil, err
	}

	u.audit(ctx, action, id, previous, updated.Status)
	return updated, nil
}

// audit records the change against the acting session; failures are logged only
func (u *appointmentUsecase) audit(ctx context.Context, action, appointmentID string, oldValue, newValue interface{}) {
	if u.auditService == nil {
		return
	}
	actorID, _ := middleware.GetUserIDFromContext(ctx)
	if oldValue == nil {
		_ = u.auditService.LogCreate(ctx, actorID, action, "appointment", appointmentID, newValue)
		return
	}
	_ = u.auditService.LogUpdate(ctx, actorID, action, "appointment", appointmentID, oldValue, newValue)
}
