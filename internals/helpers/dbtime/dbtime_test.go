package dbtime

import (
	"testing"
	"time"
)

func withClock(t *testing.T, at time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return at }
	t.Cleanup(func() { nowFunc = prev })
}

func TestTimestampsBeforeCreateSetsBothEqual(t *testing.T) {
	at := time.Date(2024, 9, 12, 8, 30, 0, 0, time.UTC)
	withClock(t, at)

	var ts Timestamps
	if err := ts.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if !ts.Creato.Equal(at) || !ts.Modificato.Equal(at) {
		t.Fatalf("timestamps = %v / %v, want %v", ts.Creato, ts.Modificato, at)
	}
	if !ts.Creato.Equal(ts.Modificato) {
		t.Fatalf("creato and modificato differ at insert")
	}
}

func TestTimestampsBeforeUpdateAdvancesOnlyModificato(t *testing.T) {
	created := time.Date(2024, 9, 12, 8, 30, 0, 0, time.UTC)
	withClock(t, created)
	var ts Timestamps
	_ = ts.BeforeCreate(nil)

	later := created.Add(2 * time.Hour)
	withClock(t, later)
	if err := ts.BeforeUpdate(nil); err != nil {
		t.Fatalf("BeforeUpdate: %v", err)
	}
	if !ts.Creato.Equal(created) {
		t.Fatalf("creato changed: %v", ts.Creato)
	}
	if !ts.Modificato.Equal(later) {
		t.Fatalf("modificato = %v, want %v", ts.Modificato, later)
	}
}

func TestTodScanAndValue(t *testing.T) {
	cases := []struct {
		in   any
		want string
	}{
		{"08:15", "08:15:00"},
		{"13:05:30", "13:05:30"},
		{[]byte("09:00:00"), "09:00:00"},
		{time.Date(2024, 1, 2, 10, 45, 0, 0, time.UTC), "10:45:00"},
	}
	for _, c := range cases {
		var tod Tod
		if err := tod.Scan(c.in); err != nil {
			t.Fatalf("Scan(%v): %v", c.in, err)
		}
		v, _ := tod.Value()
		if v != c.want {
			t.Fatalf("Value after Scan(%v) = %v, want %s", c.in, v, c.want)
		}
	}

	var zero Tod
	if err := zero.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if v, _ := zero.Value(); v != "00:00:00" {
		t.Fatalf("zero Value = %v", v)
	}
	if err := zero.Scan(42); err == nil {
		t.Fatalf("Scan(int) should fail")
	}
}

func TestTodOrdering(t *testing.T) {
	a := NewTod(8, 0)
	b := NewTod(9, 30)
	if !a.IsBefore(b) || b.IsBefore(a) {
		t.Fatalf("ordering broken: %s %s", a, b)
	}
	if b.Minutes() != 570 {
		t.Fatalf("Minutes = %d", b.Minutes())
	}
	if b.String() != "09:30" {
		t.Fatalf("String = %q", b.String())
	}
}

func TestParseAndFormatData(t *testing.T) {
	for _, in := range []string{"05/02/2024", "2024-02-05"} {
		d, err := ParseData(in)
		if err != nil {
			t.Fatalf("ParseData(%q): %v", in, err)
		}
		if got := FormatData(d); got != "05/02/2024" {
			t.Fatalf("FormatData = %q", got)
		}
	}
	if _, err := ParseData("31/31/2024"); err == nil {
		t.Fatalf("invalid date accepted")
	}
	if FormatDataPtr(nil) != "" {
		t.Fatalf("nil date should format empty")
	}
}
