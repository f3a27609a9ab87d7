package repository

import (
	"context"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"
)

type medicalRecordRepository struct {
	store *EntityStore
}

func NewMedicalRecordRepository(store *EntityStore) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{store: store}
}

func (r *medicalRecordRepository) Save(ctx context.Context, record *entity.MedicalRecord) error {
	return Upsert(ctx, r.store, CollectionMedicalRecords, *record)
}

func (r *medicalRecordRepository) FindAll(ctx context.Context) []entity.MedicalRecord {
	return ReadCollection[entity.MedicalRecord](ctx, r.store, CollectionMedicalRecords)
}

func (r *medicalRecordRepository) FindByID(ctx context.Context, id string) *entity.MedicalRecord {
	for _, record := range r.FindAll(ctx) {
		if record.ID == id {
			return &record
		}
	}
	return nil
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) []entity.MedicalRecord {
	result := make([]entity.MedicalRecord, 0)
	for _, record := range r.FindAll(ctx) {
		if record.PatientID == patientID {
			result = append(result, record)
		}
	}
	return result
}
