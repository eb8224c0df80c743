package task

import "testing"

func TestCreateTaskRequestValidate(t *testing.T) {
	valid := CreateTaskRequest{
		EmployeeID:  "123e4567-e89b-12d3-a456-426614174000",
		Title:       "Prepare quarterly report",
		Description: "Compile attendance and project figures for Q1",
		Priority:    "HIGH",
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request failed validation: %v", err)
	}

	t.Run("priority defaults to medium", func(t *testing.T) {
		req := valid
		req.Priority = ""
		if err := req.Validate(); err != nil {
			t.Fatal(err)
		}
		if req.Priority != string(PriorityMedium) {
			t.Errorf("Priority = %q, want MEDIUM", req.Priority)
		}
	})

	t.Run("unknown priority rejected", func(t *testing.T) {
		req := valid
		req.Priority = "CRITICAL"
		if err := req.Validate(); err == nil {
			t.Error("expected validation error for unknown priority")
		}
	})

	t.Run("missing title rejected", func(t *testing.T) {
		req := valid
		req.Title = "  "
		if err := req.Validate(); err == nil {
			t.Error("expected validation error for empty title")
		}
	})

	t.Run("malformed due date rejected", func(t *testing.T) {
		req := valid
		due := "2024-01-15"
		req.DueDate = &due
		if err := req.Validate(); err == nil {
			t.Error("expected validation error for non-RFC3339 due date")
		}
	})
}

func TestUpdateStatusRequestValidate(t *testing.T) {
	valid := UpdateStatusRequest{TaskID: "123e4567-e89b-12d3-a456-426614174000", Status: "IN_PROGRESS"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request failed validation: %v", err)
	}

	bad := valid
	bad.Status = "DONE"
	if err := bad.Validate(); err == nil {
		t.Error("expected validation error for unknown status")
	}
}

func TestStatsFilterValidate(t *testing.T) {
	if err := (&StatsFilter{}).Validate(); err != nil {
		t.Errorf("empty filter failed validation: %v", err)
	}

	start, end := "2024-01-01", "2024-01-31"
	valid := StatsFilter{StartDate: &start, EndDate: &end}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid filter failed validation: %v", err)
	}

	for _, bad := range []string{"", "01-01-2024", "2024-13-40", "garbage"} {
		f := StatsFilter{StartDate: &bad}
		if err := f.Validate(); err == nil {
			t.Errorf("expected validation error for start_date %q", bad)
		}
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "IN_PROGRESS", "COMPLETED", "CANCELLED"} {
		if _, ok := ParseStatus(s); !ok {
			t.Errorf("ParseStatus(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"pending", "DONE", ""} {
		if _, ok := ParseStatus(s); ok {
			t.Errorf("ParseStatus(%q) = true, want false", s)
		}
	}
}
