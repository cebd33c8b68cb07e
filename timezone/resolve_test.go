package timezone_test

import (
	"testing"
	"time"

	"github.com/notecalc/notecalc/timezone"
)

func TestResolveEmptyAndUTC(t *testing.T) {
	for _, suffix := range []string{"", "Z", "z", "UTC", "utc"} {
		loc, err := timezone.Resolve(suffix)
		if err != nil {
			t.Fatalf("Resolve(%q): unexpected error: %v", suffix, err)
		}
		if loc != time.UTC {
			t.Errorf("Resolve(%q) = %v, want UTC", suffix, loc)
		}
	}
}

func TestResolveNumericOffset(t *testing.T) {
	loc, err := timezone.Resolve("+5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ref := time.Date(1970, time.January, 1, 14, 0, 0, 0, time.UTC)
	_, offset := ref.In(loc).Zone()
	if offset != 5*3600 {
		t.Errorf("offset for +5 = %d seconds, want %d", offset, 5*3600)
	}
}

func TestResolveCityAlias(t *testing.T) {
	loc, err := timezone.Resolve("Tokyo")
	if err != nil {
		t.Fatalf("unexpected error resolving Tokyo alias: %v", err)
	}
	ref := time.Date(1970, time.January, 1, 14, 0, 0, 0, time.UTC)
	_, offset := ref.In(loc).Zone()
	if offset != 9*3600 {
		t.Errorf("Tokyo offset = %d seconds, want %d (UTC+9)", offset, 9*3600)
	}
}

func TestResolveIANANameDirectly(t *testing.T) {
	loc, err := timezone.Resolve("America/New_York")
	if err != nil {
		t.Fatalf("unexpected error resolving IANA zone: %v", err)
	}
	ref := time.Date(1970, time.June, 1, 14, 0, 0, 0, time.UTC)
	_, offset := ref.In(loc).Zone()
	if offset != -4*3600 {
		t.Errorf("America/New_York offset on 1970-06-01 = %d seconds, want %d (UTC-4, DST)", offset, -4*3600)
	}
}

func TestResolveUnknownZone(t *testing.T) {
	if _, err := timezone.Resolve("Not/A_Zone"); err == nil {
		t.Fatal("expected an error for an unresolvable timezone")
	}
}

func TestKnownAlias(t *testing.T) {
	if !timezone.KnownAlias("tokyo") {
		t.Error("tokyo should be a known alias")
	}
	if timezone.KnownAlias("not a real place") {
		t.Error("did not expect an unrelated string to be a known alias")
	}
}
