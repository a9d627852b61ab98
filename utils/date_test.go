package utils

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDatesUntilIsHalfOpen(t *testing.T) {
	start := NewDate(2026, time.September, 10)
	end := start.AddDays(3)

	dates := start.DatesUntil(end)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if !dates[0].Equal(start) {
		t.Fatalf("first date = %s, want %s", dates[0], start)
	}
	last := dates[len(dates)-1]
	if last.Equal(end) {
		t.Fatal("end date must be excluded")
	}
	if !last.AddDays(1).Equal(end) {
		t.Fatalf("last date = %s, want day before %s", last, end)
	}

	if got := start.DatesUntil(start); len(got) != 0 {
		t.Fatalf("empty range should yield no dates, got %d", len(got))
	}
}

func TestDaysUntil(t *testing.T) {
	start := NewDate(2026, time.September, 10)
	if got := start.DaysUntil(start.AddDays(3)); got != 3 {
		t.Fatalf("DaysUntil = %d, want 3", got)
	}
	if got := start.DaysUntil(start.AddDays(-2)); got != -2 {
		t.Fatalf("DaysUntil = %d, want -2", got)
	}
}

func TestCustomDateJSON(t *testing.T) {
	var d CustomDate
	if err := json.Unmarshal([]byte(`"2026-09-10"`), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !d.Equal(NewDate(2026, time.September, 10)) {
		t.Fatalf("parsed %s, want 2026-09-10", d)
	}

	out, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(out) != `"2026-09-10"` {
		t.Fatalf("marshalled %s", out)
	}

	if err := json.Unmarshal([]byte(`"10/09/2026"`), &d); err == nil {
		t.Fatal("non ISO date should fail")
	}
}
