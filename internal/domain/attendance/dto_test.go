package attendance

import "testing"

func TestStatsFilterValidate(t *testing.T) {
	valid := StatsFilter{StartDate: "2024-01-01", EndDate: "2024-01-31"}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid filter failed validation: %v", err)
	}

	t.Run("both dates required", func(t *testing.T) {
		if err := (&StatsFilter{}).Validate(); err == nil {
			t.Error("expected validation error when dates are absent")
		}
		f := valid
		f.EndDate = ""
		if err := f.Validate(); err == nil {
			t.Error("expected validation error for missing end_date")
		}
	})

	t.Run("malformed dates rejected", func(t *testing.T) {
		for _, bad := range []string{"01-01-2024", "2024-13-40", "garbage"} {
			f := valid
			f.StartDate = bad
			if err := f.Validate(); err == nil {
				t.Errorf("expected validation error for start_date %q", bad)
			}
		}
	})
}

func TestRangeFilterValidate(t *testing.T) {
	if err := (&RangeFilter{Limit: 31}).Validate(); err != nil {
		t.Errorf("empty filter failed validation: %v", err)
	}

	start, end := "2024-01-01", "2024-01-31"
	valid := RangeFilter{StartDate: &start, EndDate: &end}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid filter failed validation: %v", err)
	}

	bad := "not-a-date"
	f := RangeFilter{EndDate: &bad}
	if err := f.Validate(); err == nil {
		t.Error("expected validation error for malformed end_date")
	}
}
