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

func hireRequest(freelancerID string) dto.HireRequest {
	return dto.HireRequest{
		FreelancerID: freelancerID,
		ProjectTitle: "Brand redesign",
		Description:  "Full rebrand across web and print.",
		Budget:       "$5000",
		Timeline:     "6 weeks",
	}
}

func TestHireWritesRequestAndMessage(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	hirer := registerSeeker(t, svc, "hirer@example.com")
	freelancer := registerProvider(t, svc, "freelancer@example.com")

	request, err := svc.Hiring.Hire(ctx, hirer.ID, hireRequest(freelancer.ID))
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, request.Status)

	sent, err := svc.Hiring.Sent(ctx, hirer.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)

	received, err := svc.Hiring.Received(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, received, 1)
	assert.Equal(t, request.ID, received[0].ID)

	summaries, err := svc.Chat.Conversations(ctx, freelancer.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, models.MessageTypeHiring, summaries[0].LastMessage.Type)
	assert.Contains(t, summaries[0].LastMessage.Content, "Brand redesign")

	count, err := svc.Unread.CountFor(ctx, freelancer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestHireMissingRequiredFields(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	hirer := registerSeeker(t, svc, "hirer-missing@example.com")
	freelancer := registerProvider(t, svc, "freelancer-missing@example.com")

	req := hireRequest(freelancer.ID)
	req.Timeline = ""

	_, err := svc.Hiring.Hire(ctx, hirer.ID, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Nothing landed.
	sent, err := svc.Hiring.Sent(ctx, hirer.ID)
	require.NoError(t, err)
	assert.Empty(t, sent)

	summaries, err := svc.Chat.Conversations(ctx, freelancer.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestHireReusesExistingConversation(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	hirer := registerSeeker(t, svc, "hirer-reuse@example.com")
	freelancer := registerProvider(t, svc, "freelancer-reuse@example.com")

	existing, err := svc.Chat.StartConversation(ctx, hirer.ID, freelancer.ID)
	require.NoError(t, err)

	_, err = svc.Hiring.Hire(ctx, hirer.ID, hireRequest(freelancer.ID))
	require.NoError(t, err)

	// No duplicate thread: the hiring message landed in the existing one.
	summaries, err := svc.Chat.Conversations(ctx, hirer.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, existing.ID, summaries[0].ID)
}

func TestHireSelfRejected(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	hirer := registerProvider(t, svc, "hire-self@example.com")

	_, err := svc.Hiring.Hire(context.Background(), hirer.ID, hireRequest(hirer.ID))
	require.Error(t, err)
}

func TestHireSeekerRejected(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	hirer := registerSeeker(t, svc, "hirer-wrong@example.com")
	seeker := registerSeeker(t, svc, "not-a-provider@example.com")

	_, err := svc.Hiring.Hire(ctx, hirer.ID, hireRequest(seeker.ID))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}
