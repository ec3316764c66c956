package patient

import (
	"regexp"
	"testing"
	"time"
)

var patientIDPattern = regexp.MustCompile(`^PAT-\d{6}$`)

func TestGenerateID(t *testing.T) {
	ts := time.UnixMilli(1718445600123)
	if got := GenerateID(ts); got != "PAT-600123" {
		t.Errorf("expected PAT-600123, got %s", got)
	}

	// Leading zeros in the last six digits are kept.
	ts = time.UnixMilli(1718440000042)
	if got := GenerateID(ts); got != "PAT-000042" {
		t.Errorf("expected PAT-000042, got %s", got)
	}
}

func TestTimestampGenerator_NeverRepeats(t *testing.T) {
	fixed := time.UnixMilli(1718445600123)
	g := NewTimestampGenerator(func() time.Time { return fixed })

	first := g.NewID()
	second := g.NewID()
	third := g.NewID()

	if first != "PAT-600123" {
		t.Errorf("expected first id from clock, got %s", first)
	}
	if second != "PAT-600124" || third != "PAT-600125" {
		t.Errorf("expected ids to advance past a stalled clock, got %s, %s", second, third)
	}
}

func TestTimestampGenerator_FollowsClock(t *testing.T) {
	now := time.UnixMilli(1718445600000)
	g := NewTimestampGenerator(func() time.Time { return now })

	a := g.NewID()
	now = now.Add(5 * time.Millisecond)
	b := g.NewID()

	if a != "PAT-600000" || b != "PAT-600005" {
		t.Errorf("unexpected ids %s, %s", a, b)
	}
}

func TestUUIDGenerator(t *testing.T) {
	re := regexp.MustCompile(`^PAT-[0-9A-F]{8}$`)
	var g UUIDGenerator
	a, b := g.NewID(), g.NewID()
	if !re.MatchString(a) {
		t.Errorf("unexpected uuid id format %q", a)
	}
	if a == b {
		t.Errorf("expected distinct ids, got %s twice", a)
	}
}

func TestComputeAge(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		birth time.Time
		asOf  time.Time
		want  int
	}{
		{"day before first birthday", date(2023, 6, 15), date(2024, 6, 14), 0},
		{"on first birthday", date(2023, 6, 15), date(2024, 6, 15), 1},
		{"after birthday", date(1990, 3, 1), date(2024, 6, 15), 34},
		{"earlier month", date(1990, 9, 1), date(2024, 6, 15), 33},
		{"born today", date(2024, 6, 15), date(2024, 6, 15), 0},
		{"leap day before feb 29", date(2000, 2, 29), date(2023, 2, 28), 22},
		{"leap day on mar 1", date(2000, 2, 29), date(2023, 3, 1), 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeAge(tt.birth, tt.asOf); got != tt.want {
				t.Errorf("ComputeAge(%s, %s) = %d, want %d",
					tt.birth.Format("2006-01-02"), tt.asOf.Format("2006-01-02"), got, tt.want)
			}
		})
	}
}
