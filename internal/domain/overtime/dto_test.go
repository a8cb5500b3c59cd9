package overtime

import (
	"errors"
	"testing"
	"time"

	"github.com/worktrail-hq/attendance-backend-go/internal/pkg/validator"
)

func validCreateRequest() CreateOTRequest {
	return CreateOTRequest{
		StartDate:  "2024-03-01",
		StartTime:  "18:00",
		EndDate:    "2024-03-01",
		EndTime:    "20:00",
		Reason:     "Inventory close",
		ApproverID: "u123",
	}
}

func TestCreateOTRequest_Valid(t *testing.T) {
	req := validCreateRequest()
	if err := req.Validate(); err != nil {
		t.Fatalf("Validate returned error for a valid request: %v", err)
	}

	wantStart := time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)
	wantEnd := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	if !req.Start.Equal(wantStart) || !req.End.Equal(wantEnd) {
		t.Errorf("combined timestamps = %v / %v, want %v / %v", req.Start, req.End, wantStart, wantEnd)
	}
}

func TestCreateOTRequest_MissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateOTRequest)
		field  string
	}{
		{"no start date", func(r *CreateOTRequest) { r.StartDate = "" }, "startDate"},
		{"no start time", func(r *CreateOTRequest) { r.StartTime = "" }, "startTime"},
		{"no end date", func(r *CreateOTRequest) { r.EndDate = "" }, "endDate"},
		{"no end time", func(r *CreateOTRequest) { r.EndTime = "" }, "endTime"},
		{"blank reason", func(r *CreateOTRequest) { r.Reason = "   " }, "reason"},
		{"no approver", func(r *CreateOTRequest) { r.ApproverID = "" }, "approve"},
	}
	for _, c := range cases {
		req := validCreateRequest()
		c.mutate(&req)

		err := req.Validate()
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			t.Errorf("%s: error type = %T, want ValidationErrors", c.name, err)
			continue
		}
		if _, ok := verrs.ToMap()[c.field]; !ok {
			t.Errorf("%s: missing field %q not reported, got %v", c.name, c.field, verrs.Fields())
		}
	}
}

func TestCreateOTRequest_EndNotAfterStart(t *testing.T) {
	// 22:00 to 20:00 the same day.
	req := validCreateRequest()
	req.StartTime = "22:00"
	req.EndTime = "20:00"
	if err := req.Validate(); !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("end before start: error = %v, want ErrEndBeforeStart", err)
	}

	// Equal timestamps are rejected the same way, distinct from missing fields.
	req = validCreateRequest()
	req.EndTime = req.StartTime
	err := req.Validate()
	if !errors.Is(err, ErrEndBeforeStart) {
		t.Errorf("end == start: error = %v, want ErrEndBeforeStart", err)
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		t.Error("end == start reported as a missing-field validation error")
	}
}

func TestCreateOTRequest_MalformedTime(t *testing.T) {
	req := validCreateRequest()
	req.StartTime = ":"
	err := req.Validate()
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("malformed time: error type = %T, want ValidationErrors", err)
	}
}

func TestCreateOTRequest_OvernightSpan(t *testing.T) {
	req := validCreateRequest()
	req.StartDate = "2024-03-01"
	req.StartTime = "22:00"
	req.EndDate = "2024-03-02"
	req.EndTime = "02:00"
	if err := req.Validate(); err != nil {
		t.Errorf("overnight OT rejected: %v", err)
	}
}

func TestMonthFilter_Validate(t *testing.T) {
	f := MonthFilter{Month: 3, Year: 2024}
	if err := f.Validate(); err != nil {
		t.Errorf("valid filter rejected: %v", err)
	}

	f = MonthFilter{}
	if err := f.Validate(); err != nil {
		t.Errorf("zero filter should default to current month: %v", err)
	}
	if f.Month == 0 || f.Year == 0 {
		t.Error("zero filter not defaulted")
	}

	f = MonthFilter{Month: 13, Year: 2024}
	if err := f.Validate(); err == nil {
		t.Error("month 13 accepted")
	}
}
