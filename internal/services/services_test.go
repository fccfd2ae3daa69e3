package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hirenexus_backend/internal/auth"
	"hirenexus_backend/internal/cache"
	"hirenexus_backend/internal/email"
	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/notify"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/internal/store"
)

// newTestContainer builds the full service stack on an in-memory store.
func newTestContainer(t *testing.T) (*ServiceContainer, *store.MemoryStore, *email.MockProvider) {
	t.Helper()
	auth.Init("test-secret", 60)

	s := store.NewMemoryStore()
	bus := notify.NewBus()
	t.Cleanup(bus.Close)
	mailer := email.NewMockProvider()

	return NewServiceContainer(s, cache.NewNoop(), bus, mailer), s, mailer
}

func registerSeeker(t *testing.T, svc *ServiceContainer, emailAddr string) models.PublicUser {
	t.Helper()
	resp, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "Sam Seeker",
		Email:            emailAddr,
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "seeker",
		SelectedServices: []string{"Web Development"},
	})
	require.NoError(t, err)
	return resp.User.(models.PublicUser)
}

func registerProvider(t *testing.T, svc *ServiceContainer, emailAddr string) models.PublicUser {
	t.Helper()
	resp, err := svc.Auth.Register(context.Background(), dto.RegisterRequest{
		FullName:         "Pat Provider",
		Email:            emailAddr,
		Password:         "password123",
		ConfirmPassword:  "password123",
		UserType:         "provider",
		SelectedServices: []string{"Web Development", "Logo Design"},
		Description:      "Full-stack development and branding.",
	})
	require.NoError(t, err)
	return resp.User.(models.PublicUser)
}

func postWork(t *testing.T, svc *ServiceContainer, ownerID, title string) *models.WorkPosting {
	t.Helper()
	work, err := svc.Work.Post(context.Background(), ownerID, dto.PostWorkRequest{
		Title:       title,
		Description: "Build and ship the thing end to end.",
		Category:    "Web Development",
		Budget:      "$1000",
	})
	require.NoError(t, err)
	return work
}

func validRationale() string {
	return strings.Repeat("I am a strong fit for this project. ", 2)
}
