package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/barasher/go-exiftool"

	"github.com/VasquezPonte/Create-EXIF-Renamed-Image-File/internal/app"
)

// TimestampFields lists the metadata fields that may carry the capture
// date, in precedence order. The first present, non-empty one wins.
var TimestampFields = []string{
	"CreateDate",
	"DateTimeOriginal",
	"MediaCreateDate",
	"TrackCreateDate",
}

var (
	ErrNoMetadata  = errors.New("no timestamp metadata")
	ErrNoTimestamp = errors.New("no usable timestamp")
)

// MetadataReader returns the timestamp fields embedded in a media file.
// It exists so tests can substitute a fake for the exiftool process.
type MetadataReader interface {
	Timestamps(path string) (map[string]string, error)
}

// ExifToolReader reads metadata through a long-running exiftool process.
type ExifToolReader struct {
	et *exiftool.Exiftool
}

func NewExifToolReader() (*ExifToolReader, error) {
	et, err := exiftool.NewExiftool()
	if app.IsError(err) {
		return nil, fmt.Errorf("cannot start exiftool: %w", err)
	}

	return &ExifToolReader{et: et}, nil
}

func (r *ExifToolReader) Close() error {
	return r.et.Close()
}

func (r *ExifToolReader) Timestamps(path string) (map[string]string, error) {
	infos := r.et.ExtractMetadata(path)
	if len(infos) == 0 {
		return nil, fmt.Errorf("exiftool returned nothing for %s", path)
	}
	if app.IsError(infos[0].Err) {
		return nil, infos[0].Err
	}

	fields := map[string]string{}
	for _, name := range TimestampFields {
		val, err := infos[0].GetString(name)
		if app.IsError(err) {
			// field absent on this file
			continue
		}
		fields[name] = val
	}

	return fields, nil
}

// CaptureTimestamp picks the capture date out of the extracted fields,
// in TimestampFields precedence order. The all-zero sentinel on the
// winning field means the camera recorded no real date.
func CaptureTimestamp(fields map[string]string) (string, error) {
	for _, name := range TimestampFields {
		val := strings.TrimSpace(fields[name])
		if val == "" {
			continue
		}
		if val == app.SentinelTimestamp {
			return "", ErrNoTimestamp
		}

		return val, nil
	}

	return "", ErrNoMetadata
}
