package entity

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"
	AppointmentStatusApproved  AppointmentStatus = "approved"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentStatuses lists every status in display order
var AppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusApproved,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
}

// appointmentTransitions holds the defined moves; terminal states have none.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending:  {AppointmentStatusApproved, AppointmentStatusCancelled},
	AppointmentStatusApproved: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// IsValid reports whether s is a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusApproved, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether no transition leaves s
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusCompleted || s == AppointmentStatusCancelled
}

// CanTransitionTo reports whether next is a defined move from s.
// Rewriting the same status counts as allowed.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range appointmentTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is a patient's booking with a doctor. PatientID and DoctorID
// are not checked against the user or doctor collections.
type Appointment struct {
	ID        string            `json:"id"`
	PatientID string            `json:"patientId"`
	DoctorID  string            `json:"doctorId"`
	Date      string            `json:"date"` // YYYY-MM-DD
	Time      string            `json:"time"` // HH:MM
	Reason    string            `json:"reason"`
	Status    AppointmentStatus `json:"status"`
	Notes     string            `json:"notes"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt *time.Time        `json:"updatedAt,omitempty"`
}

func (a Appointment) EntityID() string {
	return a.ID
}

// AppointmentDraft carries the caller-supplied fields of a new appointment
type AppointmentDraft struct {
	PatientID string
	DoctorID  string
	Date      string
	Time      string
	Reason    string
}

// IsPending checks if appointment is waiting for the doctor
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// ScheduledAt is the sortable "YYYY-MM-DDTHH:MM" form of date and time
func (a *Appointment) ScheduledAt() string {
	return a.Date + "T" + a.Time
}

// BelongsTo reports whether userID is the patient or doctor on a
func (a *Appointment) BelongsTo(userID string) bool {
	return a.PatientID == userID || a.DoctorID == userID
}

// Transition moves the appointment to next and stamps updatedAt
func (a *Appointment) Transition(next AppointmentStatus, at time.Time) {
	a.Status = next
	stamp := at
	a.UpdatedAt = &stamp
}

// Approve changes appointment status to approved
func (a *Appointment) Approve(at time.Time) {
	a.Transition(AppointmentStatusApproved, at)
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel(at time.Time) {
	a.Transition(AppointmentStatusCancelled, at)
}

// Complete changes appointment status to completed and attaches notes if any
func (a *Appointment) Complete(at time.Time, notes string) {
	a.Transition(AppointmentStatusCompleted, at)
	if notes != "" {
		a.Notes = notes
	}
}
