package postgresql_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/domain/user"
	"github.com/worktrail-hq/attendance-backend-go/internal/repository/postgresql"
)

func openEntry(userID string, checkin time.Time) attendance.WorkEntry {
	return attendance.WorkEntry{
		UserID:           userID,
		Date:             checkin.Truncate(24 * time.Hour),
		CheckinTime:      checkin,
		CheckinLatitude:  -7.95212,
		CheckinLongitude: 112.61499,
		Status:           attendance.StatusActive,
	}
}

func TestWorkEntryRepository_CreateAndGetOpenEntry(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "entry@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	checkin := time.Now().UTC().Truncate(time.Second)
	created, err := entryRepo.Create(ctx, openEntry(owner.ID, checkin))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	open, err := entryRepo.GetOpenEntry(ctx, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, open.ID)
	assert.True(t, open.IsOpen())
	require.NotNil(t, open.UserName)
	assert.Equal(t, "Test User", *open.UserName)
}

func TestWorkEntryRepository_GetOpenEntry_NoneOpen(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "noopen@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	_, err := entryRepo.GetOpenEntry(ctx, owner.ID)
	assert.Error(t, err)
}

func TestWorkEntryRepository_Update_ClosesEntry(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "close@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	checkin := time.Now().UTC().Add(-8 * time.Hour).Truncate(time.Second)
	created, err := entryRepo.Create(ctx, openEntry(owner.ID, checkin))
	require.NoError(t, err)

	checkout := checkin.Add(8*time.Hour + 30*time.Minute)
	lat, lng := -7.95220, 112.61510
	minutes := 510
	created.CheckoutTime = &checkout
	created.CheckoutLatitude = &lat
	created.CheckoutLongitude = &lng
	created.Status = attendance.StatusCompleted
	created.WorkMinutes = &minutes

	err = entryRepo.Update(ctx, created)
	require.NoError(t, err)

	fetched, err := entryRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, attendance.StatusCompleted, fetched.Status)
	require.NotNil(t, fetched.CheckoutTime)
	assert.Equal(t, "8:30", fetched.DurationText())

	// The closed entry no longer shows up as open.
	_, err = entryRepo.GetOpenEntry(ctx, owner.ID)
	assert.Error(t, err)
}

func TestWorkEntryRepository_GetDayEntry(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "dayentry@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	today := time.Now().UTC().Truncate(24 * time.Hour)

	found, err := entryRepo.GetDayEntry(ctx, owner.ID, today)
	require.NoError(t, err)
	assert.Nil(t, found)

	checkin := today.Add(9 * time.Hour)
	created, err := entryRepo.Create(ctx, openEntry(owner.ID, checkin))
	require.NoError(t, err)

	found, err = entryRepo.GetDayEntry(ctx, owner.ID, today)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	has, err := entryRepo.HasCheckedInOn(ctx, owner.ID, today)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestWorkEntryRepository_ListByUser_Pagination(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "history@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	base := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 1; i <= 5; i++ {
		day := base.AddDate(0, 0, -i)
		checkin := day.Add(9 * time.Hour)
		checkout := checkin.Add(8 * time.Hour)
		minutes := 480
		entry := openEntry(owner.ID, checkin)
		entry.Date = day
		entry.CheckoutTime = &checkout
		entry.Status = attendance.StatusCompleted
		entry.WorkMinutes = &minutes
		_, err := entryRepo.Create(ctx, entry)
		require.NoError(t, err)
	}

	entries, total, err := entryRepo.ListByUser(ctx, owner.ID, attendance.OwnTimeFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, entries, 2)

	entries, total, err = entryRepo.ListByUser(ctx, owner.ID, attendance.OwnTimeFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, entries, 1)
}

func TestWorkEntryRepository_ListByUser_DateFilter(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	owner := createTestUser(t, ctx, "filter@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	base := time.Now().UTC().Truncate(24 * time.Hour)
	for i := 0; i < 4; i++ {
		day := base.AddDate(0, 0, -i)
		entry := openEntry(owner.ID, day.Add(9*time.Hour))
		entry.Date = day
		_, err := entryRepo.Create(ctx, entry)
		require.NoError(t, err)
		// Only the newest entry may stay open.
		if i > 0 {
			checkout := day.Add(17 * time.Hour)
			entry2, err := entryRepo.GetDayEntry(ctx, owner.ID, day)
			require.NoError(t, err)
			entry2.CheckoutTime = &checkout
			entry2.Status = attendance.StatusCompleted
			require.NoError(t, entryRepo.Update(ctx, *entry2))
		}
	}

	start := base.AddDate(0, 0, -2).Format("2006-01-02")
	end := base.AddDate(0, 0, -1).Format("2006-01-02")
	entries, total, err := entryRepo.ListByUser(ctx, owner.ID, attendance.OwnTimeFilter{
		StartDate: &start,
		EndDate:   &end,
		Page:      1,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, entries, 2)
}

func TestWorkEntryRepository_AutoCloseStaleEntries(t *testing.T) {
	defer cleanupTestData(t)
	cleanupTestData(t)

	ctx := context.Background()
	stale := createTestUser(t, ctx, "stale@example.com", user.RoleUser)
	fresh := createTestUser(t, ctx, "fresh@example.com", user.RoleUser)
	entryRepo := postgresql.NewWorkEntryRepository(testDB)

	staleCheckin := time.Now().UTC().Add(-30 * time.Hour)
	_, err := entryRepo.Create(ctx, openEntry(stale.ID, staleCheckin))
	require.NoError(t, err)

	freshCheckin := time.Now().UTC().Add(-2 * time.Hour)
	freshEntry, err := entryRepo.Create(ctx, openEntry(fresh.ID, freshCheckin))
	require.NoError(t, err)

	closed, err := entryRepo.AutoCloseStaleEntries(ctx, time.Now().UTC().Add(-20*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), closed)

	// The stale entry is flagged and credits no duration.
	staleFetched, err := entryRepo.GetOpenEntry(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, freshEntry.ID, staleFetched.ID)

	_, err = entryRepo.GetOpenEntry(ctx, stale.ID)
	assert.Error(t, err)

	dayEntry, err := entryRepo.GetDayEntry(ctx, stale.ID, staleCheckin.Truncate(24*time.Hour))
	require.NoError(t, err)
	require.NotNil(t, dayEntry)
	assert.Equal(t, attendance.StatusAutoClosed, dayEntry.Status)
	assert.Equal(t, "Not Checked Out", dayEntry.DurationText())
}
