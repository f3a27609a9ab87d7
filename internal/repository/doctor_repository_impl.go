package repository

import (
	"strings"

	"medcare-booking/internal/domain/entity"
	domainRepo "medcare-booking/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// demoDoctorPassword is shared by every catalog doctor account
const demoDoctorPassword = "doctor123"

var catalogSpecialties = []string{
	"Cardiology",
	"Dermatology",
	"Pediatrics",
	"Orthopedics",
	"Neurology",
	"Oncology",
	"Psychiatry",
	"General Medicine",
}

// weekdays repeats the same slots Monday to Friday
func weekdays(slots ...string) entity.WeeklyAvailability {
	availability := make(entity.WeeklyAvailability, 5)
	for _, day := range []string{entity.Monday, entity.Tuesday, entity.Wednesday, entity.Thursday, entity.Friday} {
		availability[day] = append([]string(nil), slots...)
	}
	return availability
}

func catalogDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:           "1",
			Name:         "Dr. Sarah Johnson",
			Specialty:    "Cardiology",
			Email:        "sarah.johnson@medcare.com",
			Phone:        "+1 (555) 123-4567",
			Image:        "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=150&h=150&fit=crop&crop=face",
			Rating:       decimal.RequireFromString("4.8"),
			Experience:   "15 years",
			Availability: weekdays("09:00", "10:00", "11:00", "14:00", "15:00"),
			Bio:          "Specialized in cardiovascular diseases with over 15 years of experience in treating complex cardiac conditions.",
			Credentials:  []string{"MD", "FACC", "Board Certified Cardiologist"},
		},
		{
			ID:           "2",
			Name:         "Dr. Michael Chen",
			Specialty:    "Dermatology",
			Email:        "michael.chen@medcare.com",
			Phone:        "+1 (555) 234-5678",
			Image:        "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=150&h=150&fit=crop&crop=face",
			Rating:       decimal.RequireFromString("4.9"),
			Experience:   "12 years",
			Availability: weekdays("08:00", "09:00", "10:00", "13:00", "14:00"),
			Bio:          "Expert in dermatological treatments, skin cancer detection, and cosmetic dermatology procedures.",
			Credentials:  []string{"MD", "Board Certified Dermatologist"},
		},
		{
			ID:           "3",
			Name:         "Dr. Emily Rodriguez",
			Specialty:    "Pediatrics",
			Email:        "emily.rodriguez@medcare.com",
			Phone:        "+1 (555) 345-6789",
			Image:        "https://images.unsplash.com/photo-1594824804732-ca8bee6d5cca?w=150&h=150&fit=crop&crop=face",
			Rating:       decimal.RequireFromString("4.7"),
			Experience:   "10 years",
			Availability: weekdays("09:00", "10:00", "11:00", "15:00", "16:00"),
			Bio:          "Dedicated pediatrician focusing on child development, immunizations, and family healthcare.",
			Credentials:  []string{"MD", "Board Certified Pediatrician"},
		},
		{
			ID:           "4",
			Name:         "Dr. James Wilson",
			Specialty:    "Orthopedics",
			Email:        "james.wilson@medcare.com",
			Phone:        "+1 (555) 456-7890",
			Image:        "https://images.unsplash.com/photo-1582750433449-648ed127bb54?w=150&h=150&fit=crop&crop=face",
			Rating:       decimal.RequireFromString("4.6"),
			Experience:   "18 years",
			Availability: weekdays("08:00", "09:00", "10:00", "14:00", "15:00"),
			Bio:          "Orthopedic surgeon specializing in sports medicine, joint replacement, and trauma surgery.",
			Credentials:  []string{"MD", "Board Certified Orthopedic Surgeon"},
		},
	}
}

// doctorRepository serves the static catalog. It never touches the entity store.
type doctorRepository struct {
	doctors  []entity.Doctor
	accounts []entity.DoctorAccount
}

func NewDoctorRepository() domainRepo.DoctorRepository {
	doctors := catalogDoctors()
	accounts := make([]entity.DoctorAccount, 0, len(doctors))
	for _, doctor := range doctors {
		accounts = append(accounts, entity.DoctorAccount{
			Email:    doctor.Email,
			Password: demoDoctorPassword,
			DoctorID: doctor.ID,
		})
	}
	return &doctorRepository{doctors: doctors, accounts: accounts}
}

// FindAll returns a copy so callers may sort it freely
func (r *doctorRepository) FindAll() []entity.Doctor {
	return append([]entity.Doctor(nil), r.doctors...)
}

func (r *doctorRepository) FindByID(id string) *entity.Doctor {
	for i := range r.doctors {
		if r.doctors[i].ID == id {
			doctor := r.doctors[i]
			return &doctor
		}
	}
	return nil
}

func (r *doctorRepository) Specialties() []string {
	return append([]string(nil), catalogSpecialties...)
}

func (r *doctorRepository) FindAccountByEmail(email string) *entity.DoctorAccount {
	for i := range r.accounts {
		if strings.EqualFold(r.accounts[i].Email, email) {
			account := r.accounts[i]
			return &account
		}
	}
	return nil
}
