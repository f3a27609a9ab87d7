package entity

import "time"

// AuditLog represents an activity trail entry
type AuditLog struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId,omitempty"`
	Action    string    `json:"action"`
	Metadata  JSON      `json:"metadata,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func (l AuditLog) EntityID() string {
	return l.ID
}

// JSON is a free-form metadata object
type JSON map[string]interface{}

// Common audit actions
const (
	AuditActionUserLogin           = "user.login"
	AuditActionUserLogout          = "user.logout"
	AuditActionUserRegister        = "user.register"
	AuditActionProfileUpdate       = "profile.update"
	AuditActionAppointmentCreate   = "appointment.create"
	AuditActionAppointmentApprove  = "appointment.approve"
	AuditActionAppointmentCancel   = "appointment.cancel"
	AuditActionAppointmentComplete = "appointment.complete"
	AuditActionRecordCreate        = "medical_record.create"
	AuditActionAvailabilityUpdate  = "availability.update"
)
