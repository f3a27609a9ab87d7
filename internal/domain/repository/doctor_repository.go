package repository

import "medcare-booking/internal/domain/entity"

// DoctorRepository is the read-only doctor catalog
type DoctorRepository interface {
	FindAll() []entity.Doctor
	FindByID(id string) *entity.Doctor
	Specialties() []string
	FindAccountByEmail(email string) *entity.DoctorAccount
}
