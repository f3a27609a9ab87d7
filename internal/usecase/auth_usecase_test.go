package usecase

import (
	"context"
	"sync"
	"testing"

	"medcare-booking/internal/delivery/dto"
	"medcare-booking/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (e *testEnv) authUsecase() AuthUsecase {
	return NewAuthUsecase(e.log, e.users, e.doctors, e.sessions, e.audit, e.jwt, e.now)
}

func registration() *dto.RegisterRequest {
	return &dto.RegisterRequest{
		Name:     "John Doe",
		Email:    "john@example.com",
		Password: "secret1",
		Phone:    "+1 555 123 4567",
	}
}

func TestAuthUsecase_RegisterLogsIn(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	res, err := uc.Register(ctx, registration())
	require.NoError(t, err)

	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "patient", res.User.Role)
	assert.Equal(t, "John Doe", res.User.Name)

	claims, err := env.jwt.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.ID, claims.UserID)

	session := env.sessions.FindByID(ctx, claims.SessionID)
	require.NotNil(t, session)
	assert.Empty(t, session.User.Password)

	stored := env.users.FindByEmail(ctx, "JOHN@example.com")
	require.NotNil(t, stored)
	assert.Equal(t, "secret1", stored.Password)
	assert.Equal(t, entity.RolePatient, stored.Role)
	assert.Equal(t, testNow, stored.CreatedAt)

	actions := []string{}
	for _, l := range env.auditLogs.FindByUserID(ctx, stored.ID, 0) {
		actions = append(actions, l.Action)
	}
	assert.ElementsMatch(t, []string{entity.AuditActionUserRegister, entity.AuditActionUserLogin}, actions)
}

func TestAuthUsecase_ConcurrentRegisterKeepsOneAccount(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	const attempts = 20
	start := make(chan struct{})
	results := make([]*dto.SessionResponse, attempts)
	errs := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			results[i], errs[i] = uc.Register(ctx, registration())
		}(i)
	}
	close(start)
	wg.Wait()

	var winner *dto.SessionResponse
	for i := range errs {
		if errs[i] == nil {
			require.Nil(t, winner, "more than one registration succeeded")
			winner = results[i]
			continue
		}
		require.ErrorIs(t, errs[i], ErrEmailAlreadyExists)
	}
	require.NotNil(t, winner)

	users := env.users.FindAll(ctx)
	require.Len(t, users, 1)
	assert.Equal(t, winner.User.ID, users[0].ID)
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registration())
	require.NoError(t, err)

	again := registration()
	again.Email = "John@Example.com"
	_, err = uc.Register(ctx, again)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.Len(t, env.users.FindAll(ctx), 1)
}

func TestAuthUsecase_LoginPatient(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registration())
	require.NoError(t, err)

	res, err := uc.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "secret1", Role: "patient"})
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", res.User.Email)

	_, err = uc.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "wrong", Role: "patient"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "secret1", Role: "patient"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_LoginDoctor(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	doctor := env.doctors.FindByID("1")
	require.NotNil(t, doctor)

	res, err := uc.Login(ctx, &dto.LoginRequest{Email: doctor.Email, Password: "doctor123", Role: "doctor"})
	require.NoError(t, err)
	assert.Equal(t, "1", res.User.ID)
	assert.Equal(t, "doctor", res.User.Role)
	assert.Equal(t, doctor.Specialty, res.User.Specialty)

	_, err = uc.Login(ctx, &dto.LoginRequest{Email: doctor.Email, Password: "nope", Role: "doctor"})
	assert.ErrorIs(t, err, ErrInvalidDoctorCredentials)

	// a doctor's address is not a patient login
	_, err = uc.Login(ctx, &dto.LoginRequest{Email: doctor.Email, Password: "doctor123", Role: "patient"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthUsecase_LogoutClearsOnlyThatSession(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	_, err := uc.Register(ctx, registration())
	require.NoError(t, err)

	first, err := uc.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "secret1", Role: "patient"})
	require.NoError(t, err)
	second, err := uc.Login(ctx, &dto.LoginRequest{Email: "john@example.com", Password: "secret1", Role: "patient"})
	require.NoError(t, err)

	firstClaims, err := env.jwt.ValidateToken(first.Token)
	require.NoError(t, err)
	secondClaims, err := env.jwt.ValidateToken(second.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(ctx, firstClaims.SessionID))

	_, err = uc.CurrentUser(ctx, firstClaims.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	current, err := uc.CurrentUser(ctx, secondClaims.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", current.Name)

	// logging out twice is harmless
	assert.NoError(t, uc.Logout(ctx, firstClaims.SessionID))
}

func TestAuthUsecase_UpdateProfilePatient(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	res, err := uc.Register(ctx, registration())
	require.NoError(t, err)
	claims, err := env.jwt.ValidateToken(res.Token)
	require.NoError(t, err)

	name := "Johnny Doe"
	address := "12 Elm Street"
	updated, err := uc.UpdateProfile(ctx, claims.SessionID, &dto.UpdateProfileRequest{Name: &name, Address: &address})
	require.NoError(t, err)
	assert.Equal(t, "Johnny Doe", updated.Name)
	assert.Equal(t, "+1 555 123 4567", updated.Phone)

	stored := env.users.FindByID(ctx, res.User.ID)
	require.NotNil(t, stored)
	assert.Equal(t, "Johnny Doe", stored.Name)
	assert.Equal(t, "12 Elm Street", stored.Address)
	assert.Equal(t, "secret1", stored.Password)

	session := env.sessions.FindByID(ctx, claims.SessionID)
	require.NotNil(t, session)
	assert.Equal(t, "Johnny Doe", session.User.Name)
	assert.Empty(t, session.User.Password)
}

func TestAuthUsecase_UpdateProfileDoctorTouchesSessionOnly(t *testing.T) {
	env := newTestEnv(t)
	uc := env.authUsecase()
	ctx := context.Background()

	doctor := env.doctors.FindByID("2")
	require.NotNil(t, doctor)
	res, err := uc.Login(ctx, &dto.LoginRequest{Email: doctor.Email, Password: "doctor123", Role: "doctor"})
	require.NoError(t, err)
	claims, err := env.jwt.ValidateToken(res.Token)
	require.NoError(t, err)

	bio := "Now also seeing children."
	updated, err := uc.UpdateProfile(ctx, claims.SessionID, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)

	assert.Empty(t, env.users.FindAll(ctx))
	assert.NotEqual(t, bio, env.doctors.FindByID("2").Bio)
}

func TestAuthUsecase_UpdateProfileUnknownSession(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.authUsecase().UpdateProfile(context.Background(), "gone", &dto.UpdateProfileRequest{})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
