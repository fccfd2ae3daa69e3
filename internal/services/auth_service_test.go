package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/pkg/apperrors"
)

func TestRegisterAndLogin(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	resp, err := svc.Auth.Register(ctx, dto.RegisterRequest{
		FullName:         "Ada Lovelace",
		Email:            "ada@example.com",
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "provider",
		SelectedServices: []string{"Data Analysis"},
		Description:      "Analytical engines a specialty.",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	user := resp.User.(models.PublicUser)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, models.UserRoleProvider, user.Role)

	login, err := svc.Auth.Login(ctx, dto.LoginRequest{
		Email:    "ada@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, login.Token)
	assert.Equal(t, user.ID, login.User.(models.PublicUser).ID)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	registerSeeker(t, svc, "dup@example.com")

	_, err := svc.Auth.Register(ctx, dto.RegisterRequest{
		FullName:         "Other Person",
		Email:            "DUP@Example.COM",
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "seeker",
		SelectedServices: []string{"Copywriting"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestRegisterShortPasswordRejected(t *testing.T) {
	svc, _, _ := newTestContainer(t)

	_, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "Short Pass",
		Email:            "short@example.com",
		Password:         "seven77",
		ConfirmPassword:  "seven77",
		UserType:         "seeker",
		SelectedServices: []string{"Copywriting"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestRegisterPasswordConfirmationMismatch(t *testing.T) {
	svc, _, _ := newTestContainer(t)

	_, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "Typo Prone",
		Email:            "typo@example.com",
		Password:         "password123",
		ConfirmPassword:  "password124",
		UserType:         "seeker",
		SelectedServices: []string{"Copywriting"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestRegisterProviderRequiresDescription(t *testing.T) {
	svc, _, _ := newTestContainer(t)

	_, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "No Description",
		Email:            "nodesc@example.com",
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "provider",
		SelectedServices: []string{"Logo Design"},
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestRegisterRequiresService(t *testing.T) {
	svc, _, _ := newTestContainer(t)

	_, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "No Services",
		Email:            "nosvc@example.com",
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "seeker",
		SelectedServices: []string{},
	})
	require.Error(t, err)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	registerSeeker(t, svc, "login@example.com")

	_, err := svc.Auth.Login(context.Background(), dto.LoginRequest{
		Email:    "login@example.com",
		Password: "wrong-password",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	svc, _, _ := newTestContainer(t)

	_, err := svc.Auth.Login(context.Background(), dto.LoginRequest{
		Email:    "ghost@example.com",
		Password: "password123",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)
}

func TestPasswordHashNeverExposed(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	user := registerProvider(t, svc, "hidden@example.com")

	got, err := svc.Profile.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	providers, err := svc.Profile.Providers(ctx, "")
	require.NoError(t, err)
	require.Len(t, providers, 1)
}
