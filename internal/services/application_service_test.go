package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirenexus_backend/internal/models"
	"hirenexus_backend/internal/repositories"
	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/pkg/apperrors"
)

func applyRequest(work *models.WorkPosting) dto.ApplyRequest {
	return dto.ApplyRequest{
		ServiceID:    work.ID,
		ServiceTitle: work.Title,
		Description:  validRationale(),
		ResumeName:   "resume.pdf",
		ResumeSize:   200 * 1024,
	}
}

func TestApplyWritesAllSiblingRecords(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-apply@example.com")
	applicant := registerProvider(t, svc, "applicant@example.com")
	work := postWork(t, svc, owner.ID, "API integration")

	application, err := svc.Application.Apply(ctx, applicant.ID, applyRequest(work))
	require.NoError(t, err)
	assert.Equal(t, models.ApplicationStatusPending, application.Status)
	assert.Equal(t, applicant.FullName, application.ApplicantName)

	// Application record.
	mine, err := svc.Application.Mine(ctx, applicant.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	// Conversation with a synthesized application message.
	summaries, err := svc.Chat.Conversations(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	require.NotNil(t, summaries[0].LastMessage)
	assert.Equal(t, models.MessageTypeApplication, summaries[0].LastMessage.Type)
	assert.Contains(t, summaries[0].LastMessage.Content, work.Title)

	// Applications counter bumped on both stored copies.
	found, err := svc.Work.Find(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.ApplicationsReceived)

	ownerWorks, err := svc.Work.Mine(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, ownerWorks, 1)
	assert.Equal(t, 1, ownerWorks[0].ApplicationsReceived)

	// Owner sees one unread message.
	count, err := svc.Unread.CountFor(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestApplyShortRationaleLeavesNoRecords(t *testing.T) {
	svc, s, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-short@example.com")
	applicant := registerProvider(t, svc, "short-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Logo refresh")

	req := applyRequest(work)
	req.Description = strings.Repeat("x", 30)

	_, err := svc.Application.Apply(ctx, applicant.ID, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)

	// Nothing was written anywhere.
	applications, err := repositories.NewApplicationRepository().All(ctx, s)
	require.NoError(t, err)
	assert.Empty(t, applications)

	summaries, err := svc.Chat.Conversations(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	found, err := svc.Work.Find(ctx, work.ID)
	require.NoError(t, err)
	assert.Zero(t, found.ApplicationsReceived)
}

func TestApplyRejectsBadResumeType(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-exe@example.com")
	applicant := registerProvider(t, svc, "exe-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Malware-free gig")

	req := applyRequest(work)
	req.ResumeName = "resume.exe"

	_, err := svc.Application.Apply(ctx, applicant.ID, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestApplyRejectsOversizedResume(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-size@example.com")
	applicant := registerProvider(t, svc, "size-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Docs gig")

	req := applyRequest(work)
	req.ResumeSize = dto.MaxResumeSize + 1

	_, err := svc.Application.Apply(ctx, applicant.ID, req)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeLimitExceeded, appErr.Code)
}

func TestApplyToOwnPostingRejected(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerProvider(t, svc, "own-posting@example.com")
	work := postWork(t, svc, owner.ID, "My gig")

	_, err := svc.Application.Apply(ctx, owner.ID, applyRequest(work))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}

func TestApplyTwiceRejectedAndNothingPartial(t *testing.T) {
	svc, s, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-twice@example.com")
	applicant := registerProvider(t, svc, "twice-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Popular gig")

	_, err := svc.Application.Apply(ctx, applicant.ID, applyRequest(work))
	require.NoError(t, err)

	_, err = svc.Application.Apply(ctx, applicant.ID, applyRequest(work))
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	// The failed attempt added nothing: still one application, one
	// message, a counter of one.
	applications, err := repositories.NewApplicationRepository().All(ctx, s)
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	found, err := svc.Work.Find(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.ApplicationsReceived)

	conv, err := repositories.NewConversationRepository().FindBetween(ctx, s, applicant.ID, owner.ID)
	require.NoError(t, err)
	thread, err := repositories.NewMessageRepository().Thread(ctx, s, conv.ID)
	require.NoError(t, err)
	assert.Len(t, thread, 1)
}

func TestApplyReusesExistingConversation(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-reuse@example.com")
	applicant := registerProvider(t, svc, "reuse-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Repeat business")

	existing, err := svc.Chat.StartConversation(ctx, applicant.ID, owner.ID)
	require.NoError(t, err)

	_, err = svc.Application.Apply(ctx, applicant.ID, applyRequest(work))
	require.NoError(t, err)

	summaries, err := svc.Chat.Conversations(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, existing.ID, summaries[0].ID)
}

func TestForWorkOwnerOnly(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner-view@example.com")
	applicant := registerProvider(t, svc, "view-applicant@example.com")
	work := postWork(t, svc, owner.ID, "Private list")

	_, err := svc.Application.Apply(ctx, applicant.ID, applyRequest(work))
	require.NoError(t, err)

	applications, err := svc.Application.ForWork(ctx, owner.ID, work.ID)
	require.NoError(t, err)
	assert.Len(t, applications, 1)

	_, err = svc.Application.ForWork(ctx, applicant.ID, work.ID)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)
}
