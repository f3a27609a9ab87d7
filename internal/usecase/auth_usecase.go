package usecase

import (
	"context"
	"errors"
	"time"

	"medcare-booking/internal/converter"
	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"
	"medcare-booking/internal/domain/repository"
	"medcare-booking/internal/service"
	"medcare-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists       = errors.New("email already registered")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrInvalidDoctorCredentials = errors.New("invalid doctor credentials")
	ErrSessionNotFound          = errors.New("session not found")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error)
	Logout(ctx context.Context, sessionID string) error
	CurrentUser(ctx context.Context, sessionID string) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	log          *logrus.Logger
	userRepo     repository.UserRepository
	doctorRepo   repository.DoctorRepository
	sessionRepo  repository.SessionRepository
	auditService service.AuditService
	jwtService   *jwt.JWTService
	now          func() time.Time
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	sessionRepo repository.SessionRepository,
	auditService service.AuditService,
	jwtService *jwt.JWTService,
	now func() time.Time,
) AuthUsecase {
	if now == nil {
		now = time.Now
	}
	return &authUsecase{
		log:          log,
		userRepo:     userRepo,
		doctorRepo:   doctorRepo,
		sessionRepo:  sessionRepo,
		auditService: auditService,
		jwtService:   jwtService,
		now:          now,
	}
}

// Register creates a patient account and logs it in
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.SessionResponse, error) {
	if existing := u.userRepo.FindByEmail(ctx, req.Email); existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	user := converter.RegisterRequestToUser(req)
	user.ID = uuid.NewString()
	user.CreatedAt = u.now().UTC()

	// the lookup above is a fast path; Create decides under the store lock
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEntityConflict) {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to save user: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogCreate(ctx, user.ID, entity.AuditActionUserRegister, "user", user.ID, converter.UserToResponse(user))

	return u.startSession(ctx, *user)
}

// Login checks doctors against the demo accounts and patients against stored users.
// Passwords are compared as plain strings.
func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	var user entity.User

	switch entity.Role(req.Role) {
	case entity.RoleDoctor:
		account := u.doctorRepo.FindAccountByEmail(req.Email)
		if account == nil || account.Password != req.Password {
			return nil, ErrInvalidDoctorCredentials
		}
		doctor := u.doctorRepo.FindByID(account.DoctorID)
		if doctor == nil {
			u.log.Warnf("Failed to find doctor %s for account %s", account.DoctorID, account.Email)
			return nil, ErrInvalidDoctorCredentials
		}
		user = doctor.AsUser(account.Email)

	default:
		stored := u.userRepo.FindByEmail(ctx, req.Email)
		if stored == nil || !stored.IsPatient() || stored.Password != req.Password {
			return nil, ErrInvalidCredentials
		}
		user = *stored
	}

	return u.startSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	session := u.sessionRepo.FindByID(ctx, sessionID)

	if err := u.sessionRepo.Delete(ctx, sessionID); err != nil {
		u.log.Warnf("Failed to clear session: %+v", err)
		return err
	}

	if session != nil {
		_ = u.auditService.LogEvent(ctx, session.User.ID, entity.AuditActionUserLogout, entity.JSON{"session_id": sessionID})
	}
	return nil
}

func (u *authUsecase) CurrentUser(ctx context.Context, sessionID string) (*dto.UserResponse, error) {
	session := u.sessionRepo.FindByID(ctx, sessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}
	return converter.UserToResponse(&session.User), nil
}

// UpdateProfile merges the given fields into the session user, persists them
// to the stored account when there is one, and refreshes the session slot.
// Catalog doctors have no stored account, so only their session changes.
func (u *authUsecase) UpdateProfile(ctx context.Context, sessionID string, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	session := u.sessionRepo.FindByID(ctx, sessionID)
	if session == nil {
		return nil, ErrSessionNotFound
	}

	update := converter.UpdateProfileRequestToUpdate(req)
	before := converter.UserToResponse(&session.User)

	if stored := u.userRepo.FindByID(ctx, session.User.ID); stored != nil {
		update.Apply(stored)
		if err := u.userRepo.Save(ctx, stored); err != nil {
			u.log.Warnf("Failed to save profile: %+v", err)
			return nil, err
		}
		session.User = stored.WithoutPassword()
	} else {
		update.Apply(&session.User)
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to refresh session: %+v", err)
		return nil, err
	}

	after := converter.UserToResponse(&session.User)
	_ = u.auditService.LogUpdate(ctx, session.User.ID, entity.AuditActionProfileUpdate, "user", session.User.ID, before, after)

	return after, nil
}

func (u *authUsecase) startSession(ctx context.Context, user entity.User) (*dto.SessionResponse, error) {
	session := &entity.Session{
		ID:        uuid.NewString(),
		User:      user.WithoutPassword(),
		CreatedAt: u.now().UTC(),
	}

	token, expiresAt, err := u.jwtService.GenerateSessionToken(session.ID, user.ID, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return nil, err
	}

	if err := u.sessionRepo.Save(ctx, session); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogEvent(ctx, user.ID, entity.AuditActionUserLogin, entity.JSON{
		"role":       string(user.Role),
		"session_id": session.ID,
	})

	return &dto.SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      *converter.UserToResponse(&session.User),
	}, nil
}
