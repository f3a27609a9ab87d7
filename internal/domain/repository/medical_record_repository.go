package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
)

type MedicalRecordRepository interface {
	Save(ctx context.Context, record *entity.MedicalRecord) error
	FindAll(ctx context.Context) []entity.MedicalRecord
	FindByID(ctx context.Context, id string) *entity.MedicalRecord
	FindByPatientID(ctx context.Context, patientID string) []entity.MedicalRecord
}
