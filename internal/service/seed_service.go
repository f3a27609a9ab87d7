package service

import (
	"context"
	"time"

	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Demo patient owning the sample appointments and records
const (
	DemoPatientID       = "patient1"
	DemoPatientEmail    = "patient@medcare.com"
	DemoPatientPassword = "patient123"
)

// SeedService fills empty collections with demo data at startup
type SeedService struct {
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	recordRepo      repository.MedicalRecordRepository
}

func NewSeedService(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
) *SeedService {
	return &SeedService{
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		recordRepo:      recordRepo,
	}
}

// SeedOnStartup writes each sample collection only when it is empty, so a
// restart never duplicates or overwrites real data.
func (s *SeedService) SeedOnStartup(ctx context.Context) error {
	s.log.Info("Checking sample data...")

	if s.userRepo.FindByID(ctx, DemoPatientID) == nil && s.userRepo.FindByEmail(ctx, DemoPatientEmail) == nil {
		patient := samplePatient()
		if err := s.userRepo.Save(ctx, &patient); err != nil {
			s.log.Warnf("Failed to seed demo patient: %+v", err)
			return err
		}
		s.log.Infof("Seeded demo patient %s", DemoPatientEmail)
	}

	if len(s.appointmentRepo.FindAll(ctx)) == 0 {
		appointments := sampleAppointments()
		for i := range appointments {
			if err := s.appointmentRepo.Save(ctx, &appointments[i]); err != nil {
				s.log.Warnf("Failed to seed appointment %s: %+v", appointments[i].ID, err)
				return err
			}
		}
		s.log.Infof("Seeded %d sample appointments", len(appointments))
	}

	if len(s.recordRepo.FindAll(ctx)) == 0 {
		records := sampleMedicalRecords()
		for i := range records {
			if err := s.recordRepo.Save(ctx, &records[i]); err != nil {
				s.log.Warnf("Failed to seed medical record %s: %+v", records[i].ID, err)
				return err
			}
		}
		s.log.Infof("Seeded %d sample medical records", len(records))
	}

	return nil
}

func samplePatient() entity.User {
	return entity.User{
		ID:          DemoPatientID,
		Name:        "John Doe",
		Email:       DemoPatientEmail,
		Password:    DemoPatientPassword,
		Role:        entity.RolePatient,
		Phone:       "+1 (555) 987-6543",
		DateOfBirth: "1985-04-12",
		Gender:      "male",
		Address:     "12 Elm Street, Springfield",
		CreatedAt:   time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC),
	}
}

func sampleAppointments() []entity.Appointment {
	return []entity.Appointment{
		{
			ID:        "1",
			PatientID: DemoPatientID,
			DoctorID:  "1",
			Date:      "2025-07-30",
			Time:      "10:00",
			Reason:    "Regular checkup",
			Status:    entity.AppointmentStatusPending,
			CreatedAt: time.Date(2025, 7, 29, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "2",
			PatientID: DemoPatientID,
			DoctorID:  "2",
			Date:      "2025-08-01",
			Time:      "14:00",
			Reason:    "Skin consultation",
			Status:    entity.AppointmentStatusApproved,
			Notes:     "Follow-up on previous treatment",
			CreatedAt: time.Date(2025, 7, 28, 15, 30, 0, 0, time.UTC),
		},
	}
}

func sampleMedicalRecords() []entity.MedicalRecord {
	return []entity.MedicalRecord{
		{
			ID:            "1",
			PatientID:     DemoPatientID,
			DoctorID:      "1",
			AppointmentID: "2",
			Date:          "2025-07-15",
			Diagnosis:     "Hypertension",
			Treatment:     "Prescribed ACE inhibitors, lifestyle modifications",
			Notes:         "Patient shows good response to treatment. Blood pressure improved.",
			Vitals: entity.Vitals{
				entity.VitalBloodPressure: entity.TextReading("130/85"),
				entity.VitalHeartRate:     entity.TextReading("72 bpm"),
				entity.VitalTemperature:   entity.TextReading("98.6°F"),
				entity.VitalWeight:        entity.TextReading("165 lbs"),
			},
		},
		{
			ID:            "2",
			PatientID:     DemoPatientID,
			DoctorID:      "2",
			AppointmentID: "1",
			Date:          "2025-07-20",
			Diagnosis:     "Eczema",
			Treatment:     "Topical corticosteroids, moisturizing routine",
			Notes:         "Mild improvement observed. Continue current treatment for 2 weeks.",
			Vitals: entity.Vitals{
				entity.VitalTemperature: entity.TextReading("98.4°F"),
				entity.VitalWeight:      entity.TextReading("165 lbs"),
			},
		},
	}
}
