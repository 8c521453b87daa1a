// Package backup serializes the entire challenge state to a portable
// archive and restores it with structural validation on import.
package backup

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hard75/hard75/internal/constants"
	apperrors "github.com/hard75/hard75/internal/errors"
	"github.com/hard75/hard75/internal/logger"
	"github.com/hard75/hard75/internal/models"
	"github.com/hard75/hard75/internal/validation"
)

// Codec encodes and decodes challenge backups
type Codec struct {
	appVersion string
	validator  *validation.Validator
}

// NewCodec creates a codec stamping exports with the given app version
func NewCodec(appVersion string) *Codec {
	return &Codec{
		appVersion: appVersion,
		validator:  validation.New(),
	}
}

// ExportResult reports a best-effort archive export
type ExportResult struct {
	PhotosBundled int
	PhotosSkipped int
}

// ImportResult reports a successful import
type ImportResult struct {
	Challenge      models.Challenge
	PhotosRestored int
	PhotosSkipped  int
}

func (c *Codec) payload(ch models.Challenge) validation.Payload {
	return validation.Payload{
		Version:       constants.BackupVersion,
		ExportDate:    time.Now().Format(time.RFC3339),
		AppVersion:    c.appVersion,
		ChallengeData: ch,
	}
}

// ExportJSON serializes the manifest payload without photos
func (c *Codec) ExportJSON(ch models.Challenge) ([]byte, error) {
	data, err := json.MarshalIndent(c.payload(ch), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize backup: %w", err)
	}
	return data, nil
}

// completedPhoto returns the photo URI of the day's completed attempt, if
// any. Only completed attempts contribute photos to an archive.
func completedPhoto(d models.Day) (string, bool) {
	for _, a := range d.Attempts {
		if a.Completed && a.PhotoURI != "" {
			return a.PhotoURI, true
		}
	}
	return "", false
}

// ExportArchive writes a zip archive holding the manifest payload plus one
// photo entry per day with a completed attempt bearing a photo, named by
// 1-based day number. Per-photo read failures are skipped and counted, not
// fatal.
func (c *Codec) ExportArchive(ch models.Challenge, w io.Writer) (ExportResult, error) {
	var res ExportResult

	zw := zip.NewWriter(w)

	manifest, err := c.ExportJSON(ch)
	if err != nil {
		return res, err
	}
	entry, err := zw.Create(constants.ManifestName)
	if err != nil {
		return res, fmt.Errorf("failed to create manifest entry: %w", err)
	}
	if _, err := entry.Write(manifest); err != nil {
		return res, fmt.Errorf("failed to write manifest: %w", err)
	}

	for _, d := range ch.Days {
		uri, ok := completedPhoto(d)
		if !ok {
			continue
		}
		data, err := os.ReadFile(uri)
		if err != nil {
			logger.Warn("Skipping unreadable photo", "day", d.Index, "path", uri, "error", err)
			res.PhotosSkipped++
			continue
		}
		name := fmt.Sprintf(constants.PhotoEntryFormat, d.Index)
		entry, err := zw.Create(name)
		if err != nil {
			return res, fmt.Errorf("failed to create photo entry %s: %w", name, err)
		}
		if _, err := entry.Write(data); err != nil {
			return res, fmt.Errorf("failed to write photo entry %s: %w", name, err)
		}
		res.PhotosBundled++
	}

	if err := zw.Close(); err != nil {
		return res, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return res, nil
}

// ImportJSON parses and validates a bare manifest payload. Any structural
// failure aborts before the caller clears existing data.
func (c *Codec) ImportJSON(data []byte) (models.Challenge, error) {
	payload, result, err := c.validator.ParsePayload(data)
	if err != nil {
		return models.Challenge{}, &apperrors.ValidationError{Reason: err.Error()}
	}
	if !result.OK() {
		return models.Challenge{}, &apperrors.ValidationError{Reason: result.FormatReport()}
	}
	return payload.ChallengeData, nil
}

// ImportArchive parses a backup archive: the manifest is validated first
// (all-or-nothing), then bundled photos are extracted to photoDir and each
// affected day's photoUri is rewritten to point at the local copy.
// Individual photo extraction failures are skipped; the count of restored
// photos is reported.
func (c *Codec) ImportArchive(r io.ReaderAt, size int64, photoDir string) (ImportResult, error) {
	var res ImportResult

	zr, err := zip.NewReader(r, size)
	if err != nil {
		return res, &apperrors.ValidationError{Reason: fmt.Sprintf("not a valid backup archive: %v", err)}
	}

	var manifest *zip.File
	photos := make(map[string]*zip.File)
	for _, f := range zr.File {
		if f.Name == constants.ManifestName {
			manifest = f
			continue
		}
		photos[f.Name] = f
	}
	if manifest == nil {
		return res, &apperrors.ValidationError{Reason: "archive is missing " + constants.ManifestName}
	}

	data, err := readEntry(manifest)
	if err != nil {
		return res, &apperrors.ValidationError{Reason: fmt.Sprintf("unreadable manifest: %v", err)}
	}
	ch, err := c.ImportJSON(data)
	if err != nil {
		return res, err
	}

	if err := os.MkdirAll(photoDir, 0700); err != nil {
		return res, apperrors.Storage("write", err)
	}

	days := make([]models.Day, len(ch.Days))
	copy(days, ch.Days)
	for i, d := range days {
		name := fmt.Sprintf(constants.PhotoEntryFormat, d.Index)
		entry, ok := photos[name]
		if !ok {
			continue
		}
		dest := filepath.Join(photoDir, name)
		if err := extractEntry(entry, dest); err != nil {
			logger.Warn("Skipping unrestorable photo", "day", d.Index, "error", err)
			res.PhotosSkipped++
			continue
		}
		days[i] = rewritePhotoURI(d, dest)
		res.PhotosRestored++
	}

	res.Challenge = ch.WithDays(days)
	return res, nil
}

// rewritePhotoURI points the day's completed attempt at the extracted copy
func rewritePhotoURI(d models.Day, uri string) models.Day {
	attempts := make([]models.Attempt, len(d.Attempts))
	copy(attempts, d.Attempts)
	for i, a := range attempts {
		if a.Completed && a.PhotoURI != "" {
			attempts[i].PhotoURI = uri
			break
		}
	}
	d.Attempts = attempts
	return d
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

func extractEntry(f *zip.File, dest string) error {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return err
	}
	return out.Sync()
}
