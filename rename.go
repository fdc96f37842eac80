package main

import (
	"crypto/md5"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/kalafut/imohash"

	"github.com/VasquezPonte/Create-EXIF-Renamed-Image-File/internal/app"
)

var mediaRegex = regexp.MustCompile(app.RegexMedia)

// Renamer copies every media file under Ctx.SrcDir to an ISO-8601 name
// derived from its capture timestamp, either next to the original or into
// a mirrored subtree under Ctx.DestDir.
type Renamer struct {
	Ctx  app.Context
	Meta MetadataReader
}

func (r *Renamer) Run() (app.FileStats, error) {
	stats := app.FileStats{}

	files, err := CollectFiles(r.Ctx.SrcDir)
	if app.IsError(err) {
		return stats, err
	}

	for _, path := range files {
		stats.TotalFiles++
		if r.Ctx.Verbose {
			app.PrintReplaceLn("[%s] %d/%d %s\n", app.AppName, stats.TotalFiles, len(files), path)
		}
		if err := r.processFile(path, &stats); app.IsError(err) {
			return stats, err
		}
	}

	return stats, nil
}

// CollectFiles returns every regular media file in the subtree under root.
// Symlinks are never followed or returned. The list is materialized up
// front so files created during the run are not picked up again.
func CollectFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if app.IsError(err) {
			return err
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !mediaRegex.MatchString(d.Name()) {
			return nil
		}

		files = append(files, path)
		return nil
	})

	return files, err
}

func (r *Renamer) processFile(path string, stats *app.FileStats) error {
	fields, err := r.Meta.Timestamps(path)
	if app.IsError(err) {
		stats.SkippedFiles++
		app.PrintLn("skipping %s: cannot read metadata: %s", path, err)
		return nil
	}

	if r.Ctx.Verbose {
		for _, name := range TimestampFields {
			if val, ok := fields[name]; ok {
				app.PrintLn("  %s = %q", name, val)
			}
		}
	}

	timestamp, err := CaptureTimestamp(fields)
	if app.IsError(err) {
		stats.SkippedFiles++
		app.PrintLn("skipping %s: %s", path, err)
		return nil
	}

	base, err := IsoBaseName(timestamp)
	if app.IsError(err) {
		stats.SkippedFiles++
		app.PrintLn("skipping %s: %s", path, err)
		return nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	origName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	// In-place products of an earlier run already carry their own
	// timestamp as a name. Renaming them again would cascade.
	if r.Ctx.InPlace() && (origName == base || strings.HasPrefix(origName, base+"_")) {
		stats.DuplicatedFiles++
		if r.Ctx.Verbose {
			app.PrintLn("%s is already renamed, skipping", path)
		}
		return nil
	}

	dir, err := r.targetDir(path)
	if app.IsError(err) {
		return err
	}

	target := filepath.Join(dir, base+ext)
	if app.PathExists(target) {
		same, err := SameContent(path, target)
		if app.IsError(err) {
			return err
		}
		if same {
			stats.DuplicatedFiles++
			if r.Ctx.Verbose {
				app.PrintLn("%s already exists with identical content, skipping", target)
			}
			return nil
		}
		// A different file claimed the timestamp name. Disambiguate
		// with a suffix derived from the original name, so the result
		// is reproducible on a re-run.
		target = filepath.Join(dir, base+"_"+NameHash(path)+ext)
	}

	if app.PathExists(target) {
		stats.DuplicatedFiles++
		if r.Ctx.Verbose {
			app.PrintLn("%s already exists, skipping", target)
		}
		return nil
	}

	if err := app.FileCopy(path, target, true); app.IsError(err) {
		return fmt.Errorf("cannot copy %s to %s: %w", path, target, err)
	}

	if r.Ctx.InPlace() {
		if err := app.FileMove(path, path+app.BackupSuffix); app.IsError(err) {
			return fmt.Errorf("cannot back up %s: %w", path, err)
		}
	}

	if info, err := os.Stat(target); !app.IsError(err) {
		stats.TotalSize += info.Size()
	}
	stats.RenamedFiles++

	if r.Ctx.Verbose {
		app.PrintLn("%s -> %s", path, target)
	}

	return nil
}

// targetDir resolves the directory the renamed copy goes into. In
// destination mode the file's sub-path relative to the source root is
// reproduced under the destination root, created on demand.
func (r *Renamer) targetDir(path string) (string, error) {
	dir := filepath.Dir(path)

	if r.Ctx.InPlace() {
		return dir, nil
	}

	rel, err := filepath.Rel(r.Ctx.SrcDir, dir)
	if app.IsError(err) {
		return "", err
	}

	dir = filepath.Join(r.Ctx.DestDir, rel)
	if err := app.MakeDir(dir); app.IsError(err) {
		return "", fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	return dir, nil
}

// IsoBaseName turns an exiftool timestamp ("2021:05:03 14:22:09") into an
// ISO-8601 file base name ("2021-05-03T142209").
func IsoBaseName(timestamp string) (string, error) {
	parts := strings.Fields(timestamp)
	if len(parts) != 2 {
		return "", fmt.Errorf("malformed timestamp %q", timestamp)
	}

	date := strings.ReplaceAll(parts[0], ":", "-")
	clock := strings.ReplaceAll(parts[1], ":", "")

	return date + "T" + clock, nil
}

// NameHash hashes the original base name plus extension. It deliberately
// ignores file content, so the same source path always maps to the same
// suffix.
func NameHash(path string) string {
	ext := filepath.Ext(path)
	name := strings.TrimSuffix(filepath.Base(path), ext)
	sum := md5.Sum([]byte(name + ext))

	return fmt.Sprintf("%x", sum)[:8]
}

// SameContent compares two files by imohash sample checksums.
func SameContent(a, b string) (bool, error) {
	sumA, err := imohash.SumFile(a)
	if app.IsError(err) {
		return false, err
	}
	sumB, err := imohash.SumFile(b)
	if app.IsError(err) {
		return false, err
	}

	return sumA == sumB, nil
}
