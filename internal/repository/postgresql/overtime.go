package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/worktrail-hq/attendance-backend-go/internal/domain/overtime"
	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/database"
)

type otRequestRepository struct {
	db *database.DB
}

func NewOTRequestRepository(db *database.DB) overtime.OTRequestRepository {
	return &otRequestRepository{db: db}
}

const otRequestColumns = `
	o.id, o.requester_id, o.approver_id, o.start_time, o.end_time,
	o.reason, o.status, o.reject_reason, o.decided_by, o.decided_at,
	o.created_at, o.updated_at,
	TRIM(req.first_name || ' ' || req.last_name) AS requester_name,
	TRIM(app.first_name || ' ' || app.last_name) AS approver_name,
	TRIM(dec.first_name || ' ' || dec.last_name) AS decided_by_name`

const otRequestJoins = `
	FROM ot_requests o
	LEFT JOIN users req ON req.id = o.requester_id
	LEFT JOIN users app ON app.id = o.approver_id
	LEFT JOIN users dec ON dec.id = o.decided_by`

func scanOTRequest(row pgx.Row) (overtime.OTRequest, error) {
	var r overtime.OTRequest
	err := row.Scan(
		&r.ID, &r.RequesterID, &r.ApproverID, &r.StartTime, &r.EndTime,
		&r.Reason, &r.Status, &r.RejectReason, &r.DecidedBy, &r.DecidedAt,
		&r.CreatedAt, &r.UpdatedAt,
		&r.RequesterName, &r.ApproverName, &r.DecidedByName,
	)
	return r, err
}

// Create implements overtime.OTRequestRepository.
func (o *otRequestRepository) Create(ctx context.Context, req overtime.OTRequest) (overtime.OTRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO ot_requests (requester_id, approver_id, start_time, end_time, reason, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.RequesterID,
		req.ApproverID,
		req.StartTime,
		req.EndTime,
		req.Reason,
		req.Status,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return overtime.OTRequest{}, fmt.Errorf("failed to create OT request: %w", err)
	}

	return req, nil
}

// GetByID implements overtime.OTRequestRepository.
func (o *otRequestRepository) GetByID(ctx context.Context, id string) (overtime.OTRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `SELECT ` + otRequestColumns + otRequestJoins + ` WHERE o.id = $1`

	req, err := scanOTRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.OTRequest{}, overtime.ErrRequestNotFound
		}
		return overtime.OTRequest{}, fmt.Errorf("failed to get OT request by ID: %w", err)
	}

	return req, nil
}

// Update implements overtime.OTRequestRepository.
func (o *otRequestRepository) Update(ctx context.Context, req overtime.OTRequest) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE ot_requests
		SET status = $1,
			reject_reason = $2,
			decided_by = $3,
			decided_at = $4,
			updated_at = NOW()
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		req.Status,
		req.RejectReason,
		req.DecidedBy,
		req.DecidedAt,
		req.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return overtime.ErrRequestNotFound
		}
		return fmt.Errorf("failed to update OT request: %w", err)
	}

	return nil
}

func (o *otRequestRepository) list(ctx context.Context, where string, args ...interface{}) ([]overtime.OTRequest, error) {
	q := GetQuerier(ctx, o.db)

	query := `SELECT ` + otRequestColumns + otRequestJoins
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY o.created_at DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query OT requests: %w", err)
	}
	defer rows.Close()

	var requests []overtime.OTRequest
	for rows.Next() {
		req, err := scanOTRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan OT request: %w", err)
		}
		requests = append(requests, req)
	}

	return requests, rows.Err()
}

// ListByRequester implements overtime.OTRequestRepository.
func (o *otRequestRepository) ListByRequester(ctx context.Context, requesterID string) ([]overtime.OTRequest, error) {
	return o.list(ctx, "o.requester_id = $1", requesterID)
}

// ListAll implements overtime.OTRequestRepository.
func (o *otRequestRepository) ListAll(ctx context.Context) ([]overtime.OTRequest, error) {
	return o.list(ctx, "")
}

// ListApprovedInRange implements overtime.OTRequestRepository.
func (o *otRequestRepository) ListApprovedInRange(ctx context.Context, requesterID *string, from, to time.Time) ([]overtime.OTRequest, error) {
	where := "o.status = $1 AND o.start_time >= $2 AND o.start_time < $3"
	args := []interface{}{overtime.StatusApproved, from, to}

	if requesterID != nil && *requesterID != "" {
		where += " AND o.requester_id = $4"
		args = append(args, *requesterID)
	}

	return o.list(ctx, where, args...)
}
