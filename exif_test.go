package main

import (
	"errors"
	"testing"
)

func TestCaptureTimestampPrecedence(t *testing.T) {
	fields := map[string]string{
		"CreateDate":       "2021:01:01 01:01:01",
		"DateTimeOriginal": "2022:02:02 02:02:02",
	}

	got, err := CaptureTimestamp(fields)
	if err != nil {
		t.Fatalf("CaptureTimestamp returned error: %v", err)
	}
	if got != "2021:01:01 01:01:01" {
		t.Fatalf("expected CreateDate to win, got %q", got)
	}
}

func TestCaptureTimestampFallsThroughEmptyFields(t *testing.T) {
	fields := map[string]string{
		"CreateDate":       "",
		"DateTimeOriginal": "2022:02:02 02:02:02",
	}

	got, err := CaptureTimestamp(fields)
	if err != nil {
		t.Fatalf("CaptureTimestamp returned error: %v", err)
	}
	if got != "2022:02:02 02:02:02" {
		t.Fatalf("expected DateTimeOriginal, got %q", got)
	}
}

func TestCaptureTimestampLowestPrecedenceField(t *testing.T) {
	fields := map[string]string{
		"TrackCreateDate": "2019:12:31 23:59:59",
	}

	got, err := CaptureTimestamp(fields)
	if err != nil {
		t.Fatalf("CaptureTimestamp returned error: %v", err)
	}
	if got != "2019:12:31 23:59:59" {
		t.Fatalf("expected TrackCreateDate, got %q", got)
	}
}

func TestCaptureTimestampSentinelMeansNoTimestamp(t *testing.T) {
	fields := map[string]string{
		"CreateDate":       "0000:00:00 00:00:00",
		"DateTimeOriginal": "2022:02:02 02:02:02",
	}

	_, err := CaptureTimestamp(fields)
	if !errors.Is(err, ErrNoTimestamp) {
		t.Fatalf("expected ErrNoTimestamp, got: %v", err)
	}
}

func TestCaptureTimestampNoFields(t *testing.T) {
	_, err := CaptureTimestamp(map[string]string{})
	if !errors.Is(err, ErrNoMetadata) {
		t.Fatalf("expected ErrNoMetadata, got: %v", err)
	}
}

func TestIsoBaseName(t *testing.T) {
	got, err := IsoBaseName("2021:05:03 14:22:09")
	if err != nil {
		t.Fatalf("IsoBaseName returned error: %v", err)
	}
	if got != "2021-05-03T142209" {
		t.Fatalf("unexpected base name: %q", got)
	}
}

func TestIsoBaseNameMalformed(t *testing.T) {
	if _, err := IsoBaseName("2021-05-03"); err == nil {
		t.Fatal("expected error for timestamp without a time part")
	}
}
