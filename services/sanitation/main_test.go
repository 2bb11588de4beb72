package sanitation

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/odurisile/DNA-Insight/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePurger struct {
	cutoffs []time.Time
}

func (f *fakePurger) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	f.cutoffs = append(f.cutoffs, cutoff)
	return 2, nil
}

func writeAged(t *testing.T, dir, name string, age time.Duration) string {
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte("rsid\tchromosome\n"), 0644))
	stamp := time.Now().Add(-age)
	require.NoError(t, os.Chtimes(p, stamp, stamp))
	return p
}

func TestPurgeUploads(t *testing.T) {
	dir := t.TempDir()
	old := writeAged(t, dir, "old.txt", 48*time.Hour)
	fresh := writeAged(t, dir, "fresh.txt", time.Minute)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0755))

	removed, err := PurgeUploads(dir, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	assert.DirExists(t, filepath.Join(dir, "nested"))
}

func TestPurgeUploadsWithoutDirectory(t *testing.T) {
	removed, err := PurgeUploads("", time.Now())
	assert.NoError(t, err)
	assert.Zero(t, removed)

	removed, err = PurgeUploads(filepath.Join(t.TempDir(), "missing"), time.Now())
	assert.NoError(t, err)
	assert.Zero(t, removed)
}

func TestRunPurgesUploadsAndReports(t *testing.T) {
	dir := t.TempDir()
	old := writeAged(t, dir, "old.txt", 30*time.Hour)

	cfg := &models.Config{}
	cfg.Api.UploadPath = dir
	cfg.Api.UploadRetentionHours = 24
	cfg.Sanitation.Enabled = false

	purger := &fakePurger{}
	ss := NewSanitationService(cfg, purger)
	fixed := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	ss.now = func() time.Time { return fixed }

	ss.Run()

	assert.NoFileExists(t, old)
	require.Len(t, purger.cutoffs, 1)
	assert.Equal(t, fixed.Add(-24*time.Hour), purger.cutoffs[0])
}

func TestInitSchedulesOnlyWhenEnabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.Sanitation.Enabled = false
	ss := NewSanitationService(cfg, nil)
	assert.True(t, ss.Initialized)
	assert.Nil(t, ss.scheduler)

	cfg = &models.Config{}
	cfg.Sanitation.Enabled = true
	cfg.Sanitation.At = "04:00"
	ss = NewSanitationService(cfg, nil)
	defer ss.Stop()
	require.NotNil(t, ss.scheduler)
	assert.Len(t, ss.scheduler.Jobs(), 1)
}
