package event

import (
	"errors"
	"strconv"
	"testing"
)

const testQRBase = "https://example.com/qr/"

func TestBuildRecordRoundTrip(t *testing.T) {
	fields := Fields{
		Name:                "Picnic",
		Date:                "2024-10-01",
		Time:                "12:00",
		Description:         "Park",
		MaxAttendees:        "100",
		MaxWaitlist:         "20",
		GeolocationRequired: true,
	}

	record, err := BuildRecord(fields, testQRBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.Name != "Picnic" || record.Date != "2024-10-01" || record.Time != "12:00" || record.Description != "Park" {
		t.Fatalf("text fields not copied: %+v", record)
	}
	if record.MaxAttendees != 100 {
		t.Fatalf("max attendees = %d", record.MaxAttendees)
	}
	if record.MaxWaitlist == nil || *record.MaxWaitlist != 20 {
		t.Fatalf("max waitlist = %v", record.MaxWaitlist)
	}
	if !record.GeolocationRequired {
		t.Fatal("geolocation flag lost")
	}
	if record.QRCodeLink != "https://example.com/qr/Picnic" {
		t.Fatalf("qr link = %q", record.QRCodeLink)
	}
}

func TestBuildRecordWaitlistAbsent(t *testing.T) {
	record, err := BuildRecord(Fields{Name: "Talk", MaxAttendees: "5"}, testQRBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.MaxWaitlist != nil {
		t.Fatalf("blank waitlist should be absent, got %d", *record.MaxWaitlist)
	}

	zero, err := BuildRecord(Fields{Name: "Talk", MaxAttendees: "5", MaxWaitlist: "0"}, testQRBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if zero.MaxWaitlist == nil || *zero.MaxWaitlist != 0 {
		t.Fatal("explicit zero waitlist should be present")
	}
}

func TestBuildRecordParseErrors(t *testing.T) {
	cases := []struct {
		name      string
		fields    Fields
		wantField string
	}{
		{"letters", Fields{MaxAttendees: "abc"}, "max_attendees"},
		{"empty attendees", Fields{MaxAttendees: ""}, "max_attendees"},
		{"decimal", Fields{MaxAttendees: "1.5"}, "max_attendees"},
		{"overflow", Fields{MaxAttendees: "2147483648"}, "max_attendees"},
		{"bad waitlist", Fields{MaxAttendees: "10", MaxWaitlist: "ten"}, "max_waitlist"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			record, err := BuildRecord(tc.fields, testQRBase)
			if record != nil {
				t.Fatalf("no record expected, got %+v", record)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if perr.Field != tc.wantField {
				t.Fatalf("field = %q, want %q", perr.Field, tc.wantField)
			}
			if !errors.Is(err, ErrInvalidNumber) {
				t.Fatal("ParseError should unwrap to ErrInvalidNumber")
			}
		})
	}
}

func TestBuildRecordSignedAndNegative(t *testing.T) {
	record, err := BuildRecord(Fields{MaxAttendees: "-3", MaxWaitlist: "+7"}, testQRBase)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record.MaxAttendees != -3 || *record.MaxWaitlist != 7 {
		t.Fatalf("unexpected counts: %d %d", record.MaxAttendees, *record.MaxWaitlist)
	}
}

func TestQRCodeLinkIsNotEscaped(t *testing.T) {
	got := QRCodeLink(testQRBase, "Summer Fest & BBQ")
	if got != "https://example.com/qr/Summer Fest & BBQ" {
		t.Fatalf("qr link = %q", got)
	}
	if QRCodeLink(testQRBase, "") != testQRBase {
		t.Fatal("empty name should yield the bare base")
	}
}

func TestParseErrorKeepsStrconvCause(t *testing.T) {
	cases := map[string]error{
		"abc":         strconv.ErrSyntax,
		"99999999999": strconv.ErrRange,
	}
	for value, cause := range cases {
		_, err := BuildRecord(Fields{Name: "x", MaxAttendees: value}, testQRBase)
		if !errors.Is(err, ErrInvalidNumber) {
			t.Fatalf("%q: expected ErrInvalidNumber, got %v", value, err)
		}
		if !errors.Is(err, cause) {
			t.Fatalf("%q: expected %v in chain, got %v", value, cause, err)
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) || numErr.Num != value {
			t.Fatalf("%q: expected *strconv.NumError, got %v", value, err)
		}
	}
}
