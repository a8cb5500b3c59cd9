package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/repository/postgresql"
)

func pendingRequest(requesterID, approverID string, start time.Time) overtime.OTRequest {
	return overtime.OTRequest{
		RequesterID: requesterID,
		ApproverID:  approverID,
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		Reason:      "Month-end inventory close",
		Status:      overtime.StatusPending,
	}
}

func TestOTRequestRepository_CreateAndGet(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	requester := createTestUser(t, ctx, "ot-requester@example.com", user.RoleUser)
	approver := createTestUser(t, ctx, "ot-approver@example.com", user.RoleSenior)
	otRepo := postgresql.NewOTRequestRepository(testDB)

	start := time.Now().UTC().Truncate(time.Second)
	created, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, start))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	fetched, err := otRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusPending, fetched.Status)
	require.NotNil(t, fetched.RequesterName)
	assert.Equal(t, "Test User", *fetched.RequesterName)
	require.NotNil(t, fetched.ApproverName)
}

func TestOTRequestRepository_GetByID_NotFound(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	otRepo := postgresql.NewOTRequestRepository(testDB)

	_, err := otRepo.GetByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, overtime.ErrRequestNotFound)
}

func TestOTRequestRepository_Update_Decision(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	requester := createTestUser(t, ctx, "ot-update@example.com", user.RoleUser)
	approver := createTestUser(t, ctx, "ot-update-approver@example.com", user.RoleSenior)
	otRepo := postgresql.NewOTRequestRepository(testDB)

	start := time.Now().UTC().Truncate(time.Second)
	created, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, start))
	require.NoError(t, err)

	reason := "Duplicate of an earlier request"
	decidedAt := time.Now().UTC().Truncate(time.Second)
	created.Status = overtime.StatusRejected
	created.RejectReason = &reason
	created.DecidedBy = &approver.ID
	created.DecidedAt = &decidedAt

	err = otRepo.Update(ctx, created)
	require.NoError(t, err)

	fetched, err := otRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusRejected, fetched.Status)
	require.NotNil(t, fetched.RejectReason)
	assert.Equal(t, reason, *fetched.RejectReason)
	require.NotNil(t, fetched.DecidedByName)
}

func TestOTRequestRepository_ListByRequester_NewestFirst(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	requester := createTestUser(t, ctx, "ot-list@example.com", user.RoleUser)
	other := createTestUser(t, ctx, "ot-other@example.com", user.RoleUser)
	approver := createTestUser(t, ctx, "ot-list-approver@example.com", user.RoleSenior)
	otRepo := postgresql.NewOTRequestRepository(testDB)

	start := time.Now().UTC().Truncate(time.Second)
	first, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, start))
	require.NoError(t, err)
	second, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, start.Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = otRepo.Create(ctx, pendingRequest(other.ID, approver.ID, start))
	require.NoError(t, err)

	mine, err := otRepo.ListByRequester(ctx, requester.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)

	all, err := otRepo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOTRequestRepository_ListApprovedInRange(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	requester := createTestUser(t, ctx, "ot-range@example.com", user.RoleUser)
	approver := createTestUser(t, ctx, "ot-range-approver@example.com", user.RoleSenior)
	otRepo := postgresql.NewOTRequestRepository(testDB)

	monthStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	inRange, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, monthStart.Add(10*24*time.Hour)))
	require.NoError(t, err)
	inRange.Status = overtime.StatusApproved
	require.NoError(t, otRepo.Update(ctx, inRange))

	// Approved but outside the month.
	outside, err := otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, monthStart.AddDate(0, 1, 3)))
	require.NoError(t, err)
	outside.Status = overtime.StatusApproved
	require.NoError(t, otRepo.Update(ctx, outside))

	// In the month but still pending.
	_, err = otRepo.Create(ctx, pendingRequest(requester.ID, approver.ID, monthStart.Add(12*24*time.Hour)))
	require.NoError(t, err)

	monthEnd := monthStart.AddDate(0, 1, 0)
	approved, err := otRepo.ListApprovedInRange(ctx, nil, monthStart, monthEnd)
	require.NoError(t, err)
	require.Len(t, approved, 1)
	assert.Equal(t, inRange.ID, approved[0].ID)

	// Narrowed to a requester with no approved rows.
	none, err := otRepo.ListApprovedInRange(ctx, &approver.ID, monthStart, monthEnd)
	require.NoError(t, err)
	assert.Empty(t, none)
}
