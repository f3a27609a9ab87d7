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
	"medcare-booking/pkg/export"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const workbookFilename = "medical-records.xlsx"

var (
	ErrMedicalRecordNotFound = errors.New("medical record not found")
)

// Download is a rendered file ready to be sent as an attachment
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

type MedicalRecordUsecase interface {
	ListForPatient(ctx context.Context, patientID string, query *dto.MedicalRecordQuery) *dto.MedicalRecordListResponse
	GetForPatient(ctx context.Context, patientID string, id string) (*dto.MedicalRecordResponse, error)
	Create(ctx context.Context, doctorID string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error)
	Download(ctx context.Context, patientID string, id string) (*Download, error)
	ExportWorkbook(ctx context.Context, patientID string) (*Download, error)
}

type medicalRecordUsecase struct {
	log          *logrus.Logger
	recordRepo   repository.MedicalRecordRepository
	doctorRepo   repository.DoctorRepository
	userRepo     repository.UserRepository
	auditService service.AuditService
	now          func() time.Time
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	recordRepo repository.MedicalRecordRepository,
	doctorRepo repository.DoctorRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
	now func() time.Time,
) MedicalRecordUsecase {
	if now == nil {
		now = time.Now
	}
	return &medicalRecordUsecase{
		log:          log,
		recordRepo:   recordRepo,
		doctorRepo:   doctorRepo,
		userRepo:     userRepo,
		auditService: auditService,
		now:          now,
	}
}

// ListForPatient returns the patient's records, newest first, together with
// every doctor that appears in them so a client can offer a doctor filter.
func (u *medicalRecordUsecase) ListForPatient(ctx context.Context, patientID string, query *dto.MedicalRecordQuery) *dto.MedicalRecordListResponse {
	all := u.recordRepo.FindByPatientID(ctx, patientID)

	records := FilterMedicalRecords(all, entity.MedicalRecordFilter{
		Search:   query.Search,
		DoctorID: query.DoctorID,
	}, u.doctorName)

	responses := converter.MedicalRecordsToResponses(records)
	for i := range responses {
		u.withDoctor(&responses[i])
	}

	return &dto.MedicalRecordListResponse{
		Records: responses,
		Doctors: converter.DoctorsToResponses(u.doctorsOf(all)),
		Total:   len(responses),
	}
}

func (u *medicalRecordUsecase) GetForPatient(ctx context.Context, patientID string, id string) (*dto.MedicalRecordResponse, error) {
	record, err := u.findOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}
	response := converter.MedicalRecordToResponse(record)
	u.withDoctor(response)
	return response, nil
}

// Create stores a clinical entry. The patient and appointment ids are not checked.
func (u *medicalRecordUsecase) Create(ctx context.Context, doctorID string, req *dto.CreateMedicalRecordRequest) (*dto.MedicalRecordResponse, error) {
	record := converter.CreateMedicalRecordRequestToRecord(doctorID, req)
	record.ID = uuid.NewString()

	if err := u.recordRepo.Save(ctx, record); err != nil {
		u.log.Warnf("Failed to save medical record: %+v", err)
		return nil, err
	}

	response := converter.MedicalRecordToResponse(record)
	u.withDoctor(response)

	_ = u.auditService.LogCreate(ctx, doctorID, entity.AuditActionRecordCreate, "medical_record", record.ID, response)
	return response, nil
}

// Download renders one record as a text document
func (u *medicalRecordUsecase) Download(ctx context.Context, patientID string, id string) (*Download, error) {
	record, err := u.findOwned(ctx, patientID, id)
	if err != nil {
		return nil, err
	}

	flat := u.flatten(ctx, record)
	return &Download{
		Filename:    export.TextFilename(flat),
		ContentType: "text/plain; charset=utf-8",
		Body:        export.RenderText(flat, u.now()),
	}, nil
}

// ExportWorkbook renders all of the patient's records, newest first, as XLSX
func (u *medicalRecordUsecase) ExportWorkbook(ctx context.Context, patientID string) (*Download, error) {
	records := SortMedicalRecordsByDate(u.recordRepo.FindByPatientID(ctx, patientID))

	flat := make([]export.Record, len(records))
	for i := range records {
		flat[i] = u.flatten(ctx, &records[i])
	}

	body, err := export.Workbook(flat)
	if err != nil {
		u.log.Warnf("Failed to render medical records workbook: %+v", err)
		return nil, err
	}

	return &Download{
		Filename:    workbookFilename,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Body:        body,
	}, nil
}

// findOwned hides records of other patients behind ErrMedicalRecordNotFound
func (u *medicalRecordUsecase) findOwned(ctx context.Context, patientID string, id string) (*entity.MedicalRecord, error) {
	record := u.recordRepo.FindByID(ctx, id)
	if record == nil || record.PatientID != patientID {
		return nil, ErrMedicalRecordNotFound
	}
	return record, nil
}

func (u *medicalRecordUsecase) flatten(ctx context.Context, record *entity.MedicalRecord) export.Record {
	flat := export.Record{
		Date:        record.Date,
		PatientName: u.patientName(ctx, record.PatientID),
		DoctorName:  u.doctorName(record.DoctorID),
		Diagnosis:   record.Diagnosis,
		Treatment:   record.Treatment,
		Notes:       record.Notes,
	}
	if doctor := u.doctorRepo.FindByID(record.DoctorID); doctor != nil {
		flat.Specialty = doctor.Specialty
	}

	for _, name := range record.Vitals.Names() {
		reading := record.Vitals[name]
		vital := export.Vital{Name: string(name), Text: reading.Text}
		if reading.IsNumeric() {
			number := reading.Value.InexactFloat64()
			vital.Number = &number
		}
		flat.Vitals = append(flat.Vitals, vital)
	}
	return flat
}

// patientName prefers the stored account and falls back to the session user
func (u *medicalRecordUsecase) patientName(ctx context.Context, patientID string) string {
	if user := u.userRepo.FindByID(ctx, patientID); user != nil {
		return user.Name
	}
	if session, ok := middleware.GetSessionFromContext(ctx); ok && session.User.ID == patientID {
		return session.User.Name
	}
	return patientID
}

func (u *medicalRecordUsecase) doctorName(doctorID string) string {
	if doctor := u.doctorRepo.FindByID(doctorID); doctor != nil {
		return doctor.Name
	}
	return ""
}

func (u *medicalRecordUsecase) withDoctor(response *dto.MedicalRecordResponse) {
	if doctor := u.doctorRepo.FindByID(response.DoctorID); doctor != nil {
		response.DoctorName = doctor.Name
		response.Specialty = doctor.Specialty
	}
}

// doctorsOf lists the catalog doctors that authored any of records, in catalog order
func (u *medicalRecordUsecase) doctorsOf(records []entity.MedicalRecord) []entity.Doctor {
	authors := make(map[string]bool, len(records))
	for _, record := range records {
		authors[record.DoctorID] = true
	}

	doctors := make([]entity.Doctor, 0, len(authors))
	for _, doctor := range u.doctorRepo.FindAll() {
		if authors[doctor.ID] {
			doctors = append(doctors, doctor)
		}
	}
	return doctors
}

// FilterMedicalRecords matches search text against diagnosis, treatment and
// the doctor's name, applies the doctor filter and sorts newest first.
func FilterMedicalRecords(records []entity.MedicalRecord, filter entity.MedicalRecordFilter, doctorName func(string) string) []entity.MedicalRecord {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	result := make([]entity.MedicalRecord, 0, len(records))
	for _, record := range records {
		if filter.DoctorID != "" && record.DoctorID != filter.DoctorID {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(record.Diagnosis), search) &&
			!strings.Contains(strings.ToLower(record.Treatment), search) &&
			(doctorName == nil || !strings.Contains(strings.ToLower(doctorName(record.DoctorID)), search)) {
			continue
		}
		result = append(result, record)
	}
	return SortMedicalRecordsByDate(result)
}

// SortMedicalRecordsByDate orders a copy of records by date, newest first
func SortMedicalRecordsByDate(records []entity.MedicalRecord) []entity.MedicalRecord {
	sorted := append(make([]entity.MedicalRecord, 0, len(records)), records...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
