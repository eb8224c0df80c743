package attendance

import (
	"testing"
	"time"
)

func TestIsLateAt(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatal(err)
	}

	at := func(hour, min, sec int) time.Time {
		return time.Date(2024, 3, 11, hour, min, sec, 0, loc)
	}

	cases := []struct {
		name string
		in   time.Time
		want bool
	}{
		{"well before cutoff", at(8, 30, 0), false},
		{"exactly at cutoff", at(9, 0, 0), false},
		{"one second after", at(9, 0, 1), true},
		{"fifteen minutes after", at(9, 15, 0), true},
		{"midnight", at(0, 0, 0), false},
		{"late evening", at(23, 59, 0), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := IsLateAt(c.in, 9, 0); got != c.want {
				t.Errorf("IsLateAt(%v, 9, 0) = %v, want %v", c.in, got, c.want)
			}
		})
	}
}

func TestIsLateAtCustomCutoff(t *testing.T) {
	in := time.Date(2024, 3, 11, 9, 30, 0, 0, time.UTC)
	if IsLateAt(in, 9, 30) {
		t.Error("check-in exactly at a 09:30 cutoff should not be late")
	}
	if !IsLateAt(in.Add(time.Minute), 9, 30) {
		t.Error("check-in one minute past a 09:30 cutoff should be late")
	}
}
