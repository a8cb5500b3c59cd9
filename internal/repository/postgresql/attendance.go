package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/database"
)

type workEntryRepository struct {
	db *database.DB
}

func NewWorkEntryRepository(db *database.DB) attendance.WorkEntryRepository {
	return &workEntryRepository{db: db}
}

const workEntryColumns = `
	w.id, w.user_id, w.date, w.checkin_time, w.checkout_time,
	w.checkin_latitude, w.checkin_longitude, w.checkout_latitude, w.checkout_longitude,
	w.checkin_photo_url, w.checkout_photo_url, w.checkin_address, w.checkout_address,
	w.status, w.work_minutes, w.created_at, w.updated_at,
	TRIM(u.first_name || ' ' || u.last_name) AS user_name`

func scanWorkEntry(row pgx.Row) (attendance.WorkEntry, error) {
	var e attendance.WorkEntry
	err := row.Scan(
		&e.ID, &e.UserID, &e.Date, &e.CheckinTime, &e.CheckoutTime,
		&e.CheckinLatitude, &e.CheckinLongitude, &e.CheckoutLatitude, &e.CheckoutLongitude,
		&e.CheckinPhotoURL, &e.CheckoutPhotoURL, &e.CheckinAddress, &e.CheckoutAddress,
		&e.Status, &e.WorkMinutes, &e.CreatedAt, &e.UpdatedAt,
		&e.UserName,
	)
	return e, err
}

// Create implements attendance.WorkEntryRepository.
func (a *workEntryRepository) Create(ctx context.Context, entry attendance.WorkEntry) (attendance.WorkEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO work_entries (
			user_id, date, checkin_time,
			checkin_latitude, checkin_longitude,
			checkin_photo_url, checkin_address, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		entry.UserID,
		entry.Date,
		entry.CheckinTime,
		entry.CheckinLatitude,
		entry.CheckinLongitude,
		entry.CheckinPhotoURL,
		entry.CheckinAddress,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return attendance.WorkEntry{}, fmt.Errorf("failed to create work entry: %w", err)
	}

	return entry, nil
}

// Update implements attendance.WorkEntryRepository.
func (a *workEntryRepository) Update(ctx context.Context, entry attendance.WorkEntry) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE work_entries
		SET checkout_time = $1,
			checkout_latitude = $2,
			checkout_longitude = $3,
			checkout_photo_url = $4,
			checkout_address = $5,
			status = $6,
			work_minutes = $7,
			updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		entry.CheckoutTime,
		entry.CheckoutLatitude,
		entry.CheckoutLongitude,
		entry.CheckoutPhotoURL,
		entry.CheckoutAddress,
		entry.Status,
		entry.WorkMinutes,
		entry.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrEntryNotFound
		}
		return fmt.Errorf("failed to update work entry: %w", err)
	}

	return nil
}

// GetByID implements attendance.WorkEntryRepository.
func (a *workEntryRepository) GetByID(ctx context.Context, id string) (attendance.WorkEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.id = $1
	`

	entry, err := scanWorkEntry(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkEntry{}, attendance.ErrEntryNotFound
		}
		return attendance.WorkEntry{}, fmt.Errorf("failed to get work entry by ID: %w", err)
	}

	return entry, nil
}

// GetOpenEntry implements attendance.WorkEntryRepository.
func (a *workEntryRepository) GetOpenEntry(ctx context.Context, userID string) (attendance.WorkEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.user_id = $1
		  AND w.checkout_time IS NULL
		  AND w.status = $2
		ORDER BY w.checkin_time DESC
		LIMIT 1
	`

	entry, err := scanWorkEntry(q.QueryRow(ctx, query, userID, attendance.StatusActive))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.WorkEntry{}, fmt.Errorf("no open work entry found: %w", err)
		}
		return attendance.WorkEntry{}, fmt.Errorf("failed to get open work entry: %w", err)
	}

	return entry, nil
}

// HasCheckedInOn implements attendance.WorkEntryRepository.
func (a *workEntryRepository) HasCheckedInOn(ctx context.Context, userID string, date time.Time) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM work_entries
			WHERE user_id = $1
			  AND date = $2
		)
	`

	var hasCheckedIn bool
	if err := q.QueryRow(ctx, query, userID, date).Scan(&hasCheckedIn); err != nil {
		return false, fmt.Errorf("failed to check entry for day: %w", err)
	}

	return hasCheckedIn, nil
}

// GetDayEntry implements attendance.WorkEntryRepository.
func (a *workEntryRepository) GetDayEntry(ctx context.Context, userID string, date time.Time) (*attendance.WorkEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.user_id = $1
		  AND w.date = $2
		ORDER BY w.checkin_time DESC
		LIMIT 1
	`

	entry, err := scanWorkEntry(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get day entry: %w", err)
	}

	return &entry, nil
}

// ListByUser implements attendance.WorkEntryRepository.
func (a *workEntryRepository) ListByUser(ctx context.Context, userID string, filter attendance.OwnTimeFilter) ([]attendance.WorkEntry, int64, error) {
	q := GetQuerier(ctx, a.db)

	baseWhere := "w.user_id = $1"
	args := []interface{}{userID}
	argIdx := 2

	if filter.StartDate != nil && *filter.StartDate != "" {
		baseWhere += fmt.Sprintf(" AND w.date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		baseWhere += fmt.Sprintf(" AND w.date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	countQuery := "SELECT COUNT(*) FROM work_entries w WHERE " + baseWhere
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count work entries: %w", err)
	}

	selectQuery := fmt.Sprintf(`
		SELECT %s
		FROM work_entries w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE %s
		ORDER BY w.date DESC, w.checkin_time DESC
		LIMIT $%d OFFSET $%d
	`, workEntryColumns, baseWhere, argIdx, argIdx+1)

	limit := filter.Limit
	if limit == 0 {
		limit = 20
	}
	offset := (filter.Page - 1) * limit
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, selectQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query work entries: %w", err)
	}
	defer rows.Close()

	var entries []attendance.WorkEntry
	for rows.Next() {
		entry, err := scanWorkEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, total, rows.Err()
}

// ListByUserRange implements attendance.WorkEntryRepository.
func (a *workEntryRepository) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]attendance.WorkEntry, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + workEntryColumns + `
		FROM work_entries w
		LEFT JOIN users u ON u.id = w.user_id
		WHERE w.user_id = $1
		  AND w.date >= $2
		  AND w.date <= $3
		ORDER BY w.date ASC, w.checkin_time ASC
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query work entries in range: %w", err)
	}
	defer rows.Close()

	var entries []attendance.WorkEntry
	for rows.Next() {
		entry, err := scanWorkEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// AutoCloseStaleEntries implements attendance.WorkEntryRepository.
func (a *workEntryRepository) AutoCloseStaleEntries(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE work_entries
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND checkout_time IS NULL
		  AND checkin_time < $3
	`

	tag, err := q.Exec(ctx, query, attendance.StatusAutoClosed, attendance.StatusActive, before)
	if err != nil {
		return 0, fmt.Errorf("failed to auto-close stale work entries: %w", err)
	}

	return tag.RowsAffected(), nil
}
