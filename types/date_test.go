package types

import "testing"

func TestNewPlainDateValid(t *testing.T) {
	d, err := NewPlainDate(2026, 7, 31)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.ShortString() != "2026-07-31" {
		t.Errorf("expected 2026-07-31, got %s", d.ShortString())
	}
}

func TestNewPlainDateInvalid(t *testing.T) {
	if _, err := NewPlainDate(2026, 2, 30); err == nil {
		t.Error("expected error for February 30")
	}
}

func TestPlainDateAddDays(t *testing.T) {
	d, _ := NewPlainDate(2026, 7, 31)
	next := d.AddDays(1)
	if next.Month != 8 || next.Day != 1 {
		t.Errorf("expected 2026-08-01, got %04d-%02d-%02d", next.Year, next.Month, next.Day)
	}
}

func TestPlainDateDaysUntil(t *testing.T) {
	a, _ := NewPlainDate(2026, 7, 1)
	b, _ := NewPlainDate(2026, 7, 31)
	if days := a.DaysUntil(b); days != 30 {
		t.Errorf("expected 30 days, got %d", days)
	}
}

func TestPlainDateEqual(t *testing.T) {
	a, _ := NewPlainDate(2026, 7, 31)
	b, _ := NewPlainDate(2026, 7, 31)
	if !a.Equal(b) {
		t.Error("expected equal dates to compare equal")
	}
}

func TestNewPlainTimeInvalid(t *testing.T) {
	if _, err := NewPlainTime(24, 0, 0, 0); err == nil {
		t.Error("expected error for hour 24")
	}
	if _, err := NewPlainTime(10, 60, 0, 0); err == nil {
		t.Error("expected error for minute 60")
	}
}

func TestPlainTimeString(t *testing.T) {
	tm, _ := NewPlainTime(9, 5, 0, 0)
	if tm.String() != "09:05:00" {
		t.Errorf("expected 09:05:00, got %s", tm.String())
	}
}

func TestPlainDateTimeString(t *testing.T) {
	dt, _ := NewPlainDateTime(2026, 7, 31, 14, 30, 0, 0)
	if dt.String() != "2026-07-31 14:30:00" {
		t.Errorf("expected 2026-07-31 14:30:00, got %s", dt.String())
	}
}

func TestInstantString(t *testing.T) {
	dt, _ := NewPlainDateTime(1970, 1, 1, 0, 0, 0, 0)
	inst := NewInstant(dt.Time)
	if inst.String() != "0" {
		t.Errorf("expected unix epoch 0, got %s", inst.String())
	}
}
