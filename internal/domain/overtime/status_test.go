package overtime

import "testing"

func TestSeniorCodeRoundTrip(t *testing.T) {
	cases := []struct {
		code int
		want Status
	}{
		{0, StatusPending},
		{1, StatusSeniorApproved},
		{2, StatusRejected},
	}
	for _, c := range cases {
		got, ok := ParseSeniorCode(c.code)
		if !ok || got != c.want {
			t.Errorf("ParseSeniorCode(%d) = %q, %v; want %q", c.code, got, ok, c.want)
		}
	}

	if _, ok := ParseSeniorCode(3); ok {
		t.Error("ParseSeniorCode accepted an admin-flow code")
	}
	if _, ok := ParseSeniorCode(-1); ok {
		t.Error("ParseSeniorCode accepted a negative code")
	}
}

func TestAdminCodeRoundTrip(t *testing.T) {
	cases := []struct {
		code int
		want Status
	}{
		{1, StatusSeniorApproved},
		{3, StatusApproved},
		{4, StatusRejected},
	}
	for _, c := range cases {
		got, ok := ParseAdminCode(c.code)
		if !ok || got != c.want {
			t.Errorf("ParseAdminCode(%d) = %q, %v; want %q", c.code, got, ok, c.want)
		}
	}

	if _, ok := ParseAdminCode(0); ok {
		t.Error("ParseAdminCode accepted 0")
	}
	if _, ok := ParseAdminCode(2); ok {
		t.Error("ParseAdminCode accepted a senior-flow reject code")
	}
}

func TestStatusCodes(t *testing.T) {
	cases := []struct {
		status     Status
		seniorCode int
		adminCode  int
	}{
		{StatusPending, 0, 1},
		{StatusSeniorApproved, 1, 1},
		{StatusApproved, 1, 3},
		{StatusRejected, 2, 4},
	}
	for _, c := range cases {
		if got := c.status.SeniorCode(); got != c.seniorCode {
			t.Errorf("%s.SeniorCode() = %d, want %d", c.status, got, c.seniorCode)
		}
		if got := c.status.AdminCode(); got != c.adminCode {
			t.Errorf("%s.AdminCode() = %d, want %d", c.status, got, c.adminCode)
		}
	}
}

func TestIsFinal(t *testing.T) {
	if StatusPending.IsFinal() || StatusSeniorApproved.IsFinal() {
		t.Error("non-terminal status reported final")
	}
	if !StatusApproved.IsFinal() || !StatusRejected.IsFinal() {
		t.Error("terminal status reported non-final")
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "senior_approved", "approved", "rejected"} {
		if _, ok := ParseStatus(s); !ok {
			t.Errorf("ParseStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "1", "Pending", "done"} {
		if _, ok := ParseStatus(s); ok {
			t.Errorf("ParseStatus(%q) = true, want false", s)
		}
	}
}
