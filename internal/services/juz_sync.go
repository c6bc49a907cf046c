package services

import (
	"strings"
	"time"

	"github.com/hafiz-app/hafiz/internal/models"
)

// OptionalTime distinguishes an absent patch field from an explicit null.
// Set=true with a nil Value clears the stored date.
type OptionalTime struct {
	Set   bool
	Value *time.Time
}

// JuzPatch is a partial update to one Juz record. Nil pointer fields were
// absent from the request.
type JuzPatch struct {
	Status    *string
	Pages     *int
	StartDate OptionalTime
	EndDate   OptionalTime
	Notes     *string
}

// ApplyJuzPatch produces the fully synced record to persist. Status and
// pages are kept mutually consistent: an explicit status wins over pages,
// otherwise a pages change drives the status. The result replaces the stored
// record wholesale, so reapplying the same patch is a no-op.
func ApplyJuzPatch(existing models.Juz, patch JuzPatch, now time.Time) (models.Juz, error) {
	if patch.Status != nil && !models.ValidJuzStatus(*patch.Status) {
		return models.Juz{}, NewValidationError("invalid status value")
	}

	record := existing

	if patch.Notes != nil {
		notes := strings.TrimSpace(*patch.Notes)
		if len(notes) > models.MaxJuzNotesLength {
			return models.Juz{}, NewValidationError("notes cannot exceed 500 characters")
		}
		record.Notes = notes
	}
	if patch.StartDate.Set {
		record.StartDate = patch.StartDate.Value
	}
	if patch.EndDate.Set {
		record.EndDate = patch.EndDate.Value
	}
	if patch.Pages != nil {
		record.Pages = clampPages(*patch.Pages)
	}

	switch {
	case patch.Status != nil:
		// Status is authoritative over pages.
		record.Status = *patch.Status
		switch record.Status {
		case models.StatusCompleted:
			record.Pages = models.PagesPerJuz
			if record.EndDate == nil {
				record.EndDate = &now
			}
		case models.StatusNotStarted:
			record.Pages = 0
			record.StartDate = nil
			record.EndDate = nil
		}
		// in-progress keeps whatever pages value the record carries,
		// including 20 when the caller insists.
	case patch.Pages != nil:
		switch {
		case record.Pages == 0:
			record.Status = models.StatusNotStarted
			record.StartDate = nil
			record.EndDate = nil
		case record.Pages >= models.PagesPerJuz:
			record.Pages = models.PagesPerJuz
			record.Status = models.StatusCompleted
			if record.EndDate == nil {
				record.EndDate = &now
			}
		default:
			record.Status = models.StatusInProgress
			if record.StartDate == nil {
				record.StartDate = &now
			}
		}
	}

	if record.StartDate != nil && record.EndDate != nil && record.EndDate.Before(*record.StartDate) {
		return models.Juz{}, NewValidationError("end date cannot be before start date")
	}

	return record, nil
}

func clampPages(pages int) int {
	if pages < 0 {
		return 0
	}
	if pages > models.PagesPerJuz {
		return models.PagesPerJuz
	}
	return pages
}
