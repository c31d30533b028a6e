package usecase

import (
	"context"
	"testing"
	"time"

	"vet-clinic-booking/config"
	"vet-clinic-booking/internal/delivery/dto"
	"vet-clinic-booking/internal/domain/entity"
	"vet-clinic-booking/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	}
}

type authFixture struct {
	userRepo *fakeUserRepo
	roleRepo *fakeRoleRepo
	uc       AuthUsecase
	ownerID  uuid.UUID
}

// The credential-checking paths never reach Redis, so a nil client is
// safe here.
func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	f := &authFixture{
		userRepo: &fakeUserRepo{users: map[uuid.UUID]*entity.User{}},
		roleRepo: &fakeRoleRepo{roles: map[int]*entity.Role{
			entity.RoleIDOwner: {ID: entity.RoleIDOwner, RoleName: entity.RoleOwner},
		}},
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	owner := &entity.User{
		ID:       uuid.New(),
		Email:    "owner@example.com",
		Password: string(hashed),
		FullName: "Jane Harris",
		RoleID:   entity.RoleIDOwner,
		IsActive: true,
	}
	f.userRepo.users[owner.ID] = owner
	f.ownerID = owner.ID

	db, _ := newTestDB(t)
	jwtService := jwt.NewJWTService(testJWTConfig())
	vetRepo := &fakeVetRepo{profiles: map[uuid.UUID]*entity.VeterinarianProfile{}}

	f.uc = NewAuthUsecase(db, newTestLogger(), f.userRepo, f.roleRepo, vetRepo, jwtService, nil, &fakeAudit{})
	return f
}

func TestLoginUnknownEmail(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginWrongPassword(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "wrong-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginInactiveUser(t *testing.T) {
	f := newAuthFixture(t)
	f.userRepo.users[f.ownerID].IsActive = false

	_, err := f.uc.Login(context.Background(), &dto.LoginRequest{
		Email:    "owner@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetCurrentUser(t *testing.T) {
	f := newAuthFixture(t)

	user, err := f.uc.GetCurrentUser(context.Background(), f.ownerID)
	require.NoError(t, err)

	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Jane Harris", user.FullName)
	assert.Equal(t, entity.RoleOwner, user.Role)
}

func TestGetCurrentUserNotFound(t *testing.T) {
	f := newAuthFixture(t)

	_, err := f.uc.GetCurrentUser(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	f := newAuthFixture(t)

	jwtService := jwt.NewJWTService(testJWTConfig())
	accessToken, _, err := jwtService.GenerateAccessToken(f.ownerID, "owner@example.com", entity.RoleIDOwner)
	require.NoError(t, err)

	_, err = f.uc.RefreshToken(context.Background(), &dto.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}
