package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/delivery/http/middleware"
	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"
	"medcare-booking/internal/service"

	"github.com/sirupsen/logrus"
)

// BookingWindowDays is how far ahead patients may book, counted in calendar days
const BookingWindowDays = 30

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	ErrInvalidDate    = errors.New("invalid date format, use YYYY-MM-DD")
)

type DoctorUsecase interface {
	FindDoctors(ctx context.Context, query *dto.DoctorQuery) *dto.DoctorListResponse
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	Specialties(ctx context.Context) *dto.SpecialtyListResponse
	AvailableSlots(ctx context.Context, doctorID string, date string) (*dto.SlotListResponse, error)
	BookingDates(ctx context.Context) *dto.BookingDatesResponse
	Availability(ctx context.Context, doctorID string) (*dto.AvailabilityResponse, error)
	SaveAvailability(ctx context.Context, doctorID string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error)
}

type doctorUsecase struct {
	log              *logrus.Logger
	doctorRepo       repository.DoctorRepository
	availabilityRepo repository.AvailabilityRepository
	auditService     service.AuditService
	now              func() time.Time
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	availabilityRepo repository.AvailabilityRepository,
	auditService service.AuditService,
	now func() time.Time,
) DoctorUsecase {
	if now == nil {
		now = time.Now
	}
	return &doctorUsecase{
		log:              log,
		doctorRepo:       doctorRepo,
		availabilityRepo: availabilityRepo,
		auditService:     auditService,
		now:              now,
	}
}

func (u *doctorUsecase) FindDoctors(ctx context.Context, query *dto.DoctorQuery) *dto.DoctorListResponse {
	doctors := u.doctorRepo.FindAll()
	for i := range doctors {
		doctors[i].Availability = u.effectiveAvailability(ctx, &doctors[i])
	}

	doctors = FilterDoctors(doctors, entity.DoctorFilter{
		Search:    query.Search,
		Specialty: query.Specialty,
		SortBy:    query.SortBy,
	})

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor := u.doctorRepo.FindByID(id)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	doctor.Availability = u.effectiveAvailability(ctx, doctor)
	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Specialties(ctx context.Context) *dto.SpecialtyListResponse {
	return &dto.SpecialtyListResponse{Specialties: u.doctorRepo.Specialties()}
}

// AvailableSlots lists the advertised slots for the weekday of date. Existing
// bookings do not remove a slot.
func (u *doctorUsecase) AvailableSlots(ctx context.Context, doctorID string, date string) (*dto.SlotListResponse, error) {
	day, err := time.Parse(time.DateOnly, date)
	if err != nil {
		return nil, ErrInvalidDate
	}

	doctor := u.doctorRepo.FindByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	slots := u.effectiveAvailability(ctx, doctor).SlotsFor(day)
	return &dto.SlotListResponse{
		DoctorID: doctorID,
		Date:     date,
		Slots:    append(make([]string, 0, len(slots)), slots...),
	}, nil
}

func (u *doctorUsecase) BookingDates(ctx context.Context) *dto.BookingDatesResponse {
	return &dto.BookingDatesResponse{Dates: BookingDates(u.now(), BookingWindowDays)}
}

func (u *doctorUsecase) Availability(ctx context.Context, doctorID string) (*dto.AvailabilityResponse, error) {
	doctor := u.doctorRepo.FindByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}
	return &dto.AvailabilityResponse{
		DoctorID:     doctorID,
		Availability: u.effectiveAvailability(ctx, doctor),
	}, nil
}

// SaveAvailability replaces the doctor's whole weekly map; days left out have no slots
func (u *doctorUsecase) SaveAvailability(ctx context.Context, doctorID string, req *dto.UpdateAvailabilityRequest) (*dto.AvailabilityResponse, error) {
	doctor := u.doctorRepo.FindByID(doctorID)
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	availability := make(entity.WeeklyAvailability, len(req.Availability))
	for day, slots := range req.Availability {
		sorted := append([]string(nil), slots...)
		sort.Strings(sorted)
		availability[strings.ToLower(day)] = sorted
	}

	before := u.effectiveAvailability(ctx, doctor)
	if err := u.availabilityRepo.Save(ctx, doctorID, availability); err != nil {
		u.log.Warnf("Failed to save availability for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	actorID, _ := middleware.GetUserIDFromContext(ctx)
	_ = u.auditService.LogUpdate(ctx, actorID, entity.AuditActionAvailabilityUpdate, "doctor_availability", doctorID, before, availability)

	return &dto.AvailabilityResponse{DoctorID: doctorID, Availability: availability}, nil
}

// effectiveAvailability prefers a saved override to the catalog schedule
func (u *doctorUsecase) effectiveAvailability(ctx context.Context, doctor *entity.Doctor) entity.WeeklyAvailability {
	if override, ok := u.availabilityRepo.FindByDoctorID(ctx, doctor.ID); ok {
		return override
	}
	return doctor.Availability
}

// FilterDoctors narrows the catalog by search text and specialty, then sorts it.
// The input is not modified.
func FilterDoctors(doctors []entity.Doctor, filter entity.DoctorFilter) []entity.Doctor {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]entity.Doctor, 0, len(doctors))
	for _, doctor := range doctors {
		if search != "" &&
			!strings.Contains(strings.ToLower(doctor.Name), search) &&
			!strings.Contains(strings.ToLower(doctor.Specialty), search) {
			continue
		}
		if filter.Specialty != "" && doctor.Specialty != filter.Specialty {
			continue
		}
		result = append(result, doctor)
	}

	switch filter.SortBy {
	case entity.DoctorSortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].Rating.GreaterThan(result[j].Rating)
		})
	case entity.DoctorSortExperience:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ExperienceYears() > result[j].ExperienceYears()
		})
	case entity.DoctorSortName:
		sort.SliceStable(result, func(i, j int) bool {
			return strings.ToLower(result[i].Name) < strings.ToLower(result[j].Name)
		})
	}
	return result
}

// BookingDates lists the weekdays among the days calendar days after from
func BookingDates(from time.Time, days int) []string {
	start := from.UTC()
	dates := make([]string, 0, days)
	for i := 1; i <= days; i++ {
		day := start.AddDate(0, 0, i)
		if day.Weekday() == time.Saturday || day.Weekday() == time.Sunday {
			continue
		}
		dates = append(dates, DateString(day))
	}
	return dates
}
