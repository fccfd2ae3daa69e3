package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirenexus_backend/internal/services/dto"
	"hirenexus_backend/pkg/apperrors"
)

func TestPostWorkAppearsInFeedAndMine(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "owner@example.com")
	viewer := registerProvider(t, svc, "viewer@example.com")

	work := postWork(t, svc, owner.ID, "Landing page build")
	assert.Equal(t, owner.FullName, work.PostedBy)
	assert.Equal(t, owner.Email, work.PostedByEmail)

	mine, err := svc.Work.Mine(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, work.ID, mine[0].ID)

	feed, err := svc.Work.Browse(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, work.ID, feed[0].ID)
}

func TestBrowseExcludesOwnPostings(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "self@example.com")
	postWork(t, svc, owner.ID, "My own gig")

	feed, err := svc.Work.Browse(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestPostWorkNewestFirst(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "order@example.com")
	postWork(t, svc, owner.ID, "first")
	postWork(t, svc, owner.ID, "second")
	postWork(t, svc, owner.ID, "third")

	mine, err := svc.Work.Mine(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "third", mine[0].Title)
	assert.Equal(t, "first", mine[2].Title)
}

func TestPostWorkValidation(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	owner := registerSeeker(t, svc, "invalid@example.com")

	_, err := svc.Work.Post(context.Background(), owner.ID, dto.PostWorkRequest{
		Title: "No description or budget",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeValidationFailed, appErr.Code)
}

func TestFindWork(t *testing.T) {
	svc, _, _ := newTestContainer(t)
	ctx := context.Background()

	owner := registerSeeker(t, svc, "find@example.com")
	work := postWork(t, svc, owner.ID, "Findable")

	found, err := svc.Work.Find(ctx, work.ID)
	require.NoError(t, err)
	assert.Equal(t, work.ID, found.ID)

	_, err = svc.Work.Find(ctx, "missing-id")
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}
