package sanitation

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/odurisile/DNA-Insight/models"

	"github.com/go-co-op/gocron"
)

// ReportPurger deletes stored reports created before a cutoff.
type ReportPurger interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type (
	SanitationService struct {
		Initialized bool
		Config      *models.Config
		Reports     ReportPurger

		scheduler *gocron.Scheduler
		now       func() time.Time
	}
)

// NewSanitationService starts the daily cleanup. reports may be nil when no
// report store is configured.
func NewSanitationService(cfg *models.Config, reports ReportPurger) *SanitationService {
	ss := &SanitationService{
		Initialized: false,
		Config:      cfg,
		Reports:     reports,
		now:         time.Now,
	}

	ss.Init()

	return ss
}

func (ss *SanitationService) Init() {
	// safeguard to prevent multiple initilizations
	if ss.Initialized {
		return
	}
	ss.Initialized = true

	if !ss.Config.Sanitation.Enabled {
		fmt.Println("Sanitation Service Disabled ..")
		return
	}

	s := gocron.NewScheduler(time.UTC)
	if _, err := s.Every(1).Days().At(ss.Config.Sanitation.At).Do(ss.Run); err != nil {
		fmt.Printf("[%s] - Cannot schedule sanitation at %q: %s\n", time.Now(), ss.Config.Sanitation.At, err)
		return
	}
	ss.scheduler = s

	s.StartAsync()

	fmt.Println("Sanitation Service Initialized ..")
}

func (ss *SanitationService) Stop() {
	if ss.scheduler != nil {
		ss.scheduler.Stop()
	}
}

// Run removes uploads and reports older than the retention window.
func (ss *SanitationService) Run() {
	retention := time.Duration(ss.Config.Api.UploadRetentionHours) * time.Hour
	cutoff := ss.now().Add(-retention)

	fmt.Printf("[%s] - Running cleanup of anything older than %s..\n", time.Now(), cutoff.Format(time.RFC3339))

	removed, err := PurgeUploads(ss.Config.Api.UploadPath, cutoff)
	if err != nil {
		fmt.Printf("[%s] - Error purging uploads : %v..\n", time.Now(), err)
	}
	fmt.Printf("[%s] - Removed %d expired uploads..\n", time.Now(), removed)

	if ss.Reports == nil {
		return
	}
	deleted, err := ss.Reports.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		fmt.Printf("[%s] - Error deleting expired reports : %v..\n", time.Now(), err)
		return
	}
	fmt.Printf("[%s] - Deleted %d expired reports..\n", time.Now(), deleted)
}

// PurgeUploads deletes regular files directly under dir last modified before
// cutoff. A missing or unset directory is not an error.
func PurgeUploads(dir string, cutoff time.Time) (int, error) {
	if dir == "" {
		return 0, nil
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("listing %s: %w", dir, err)
	}

	removed := 0
	var errs []error
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			errs = append(errs, err)
			continue
		}
		removed++
	}
	return removed, errors.Join(errs...)
}
