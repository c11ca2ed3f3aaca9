package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "10000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "data/cutoffs.json", cfg.CutoffDataPath)
	assert.Equal(t, "cutoffs.json", cfg.CutoffObjectKey)
	assert.Equal(t, 500, cfg.PDFPricePaise)
	assert.Equal(t, 500, cfg.AnalyticsPricePaise)
	assert.Equal(t, "prometheus", cfg.MetricsUsername)
	assert.Empty(t, cfg.MetricsPassword)
	assert.Zero(t, cfg.RandomSeed)
	assert.False(t, cfg.SnapshotBackupEnabled)
	assert.False(t, cfg.HasObjectStore())
	assert.False(t, cfg.HasRazorpay())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")
	t.Setenv("DATA_DIR", "/tmp/planner")
	t.Setenv("RANDOM_SEED", "42")
	t.Setenv("PDF_PRICE_PAISE", "9900")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "rzp_test_secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, int64(42), cfg.RandomSeed)
	assert.Equal(t, 9900, cfg.PDFPricePaise)
	assert.True(t, cfg.HasRazorpay())
	assert.Equal(t, filepath.Join("/tmp/planner", "planner.db"), cfg.SQLitePath())
}

func TestLoadObjectStore(t *testing.T) {
	t.Setenv("CUTOFF_OBJECT_ENDPOINT", "https://account.r2.cloudflarestorage.com")
	t.Setenv("CUTOFF_OBJECT_ACCESS_KEY", "access")
	t.Setenv("CUTOFF_OBJECT_SECRET_KEY", "secret")
	t.Setenv("CUTOFF_OBJECT_BUCKET", "cutoffs")
	t.Setenv("SNAPSHOT_BACKUP_ENABLED", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.HasObjectStore())
	assert.True(t, cfg.SnapshotBackupEnabled)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name     string
		setupEnv func(t *testing.T)
		wantErr  string
	}{
		{
			name: "incomplete object store",
			setupEnv: func(t *testing.T) {
				t.Setenv("CUTOFF_OBJECT_ENDPOINT", "https://account.r2.cloudflarestorage.com")
			},
			wantErr: "incomplete object store config",
		},
		{
			name: "backup without object store",
			setupEnv: func(t *testing.T) {
				t.Setenv("SNAPSHOT_BACKUP_ENABLED", "true")
			},
			wantErr: "SNAPSHOT_BACKUP_ENABLED requires object store config",
		},
		{
			name: "nonpositive unlock price",
			setupEnv: func(t *testing.T) {
				t.Setenv("ANALYTICS_PRICE_PAISE", "0")
			},
			wantErr: "unlock prices must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupEnv(t)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("PDF_PRICE_PAISE", "not-a-number")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")
	t.Setenv("SNAPSHOT_BACKUP_ENABLED", "maybe")
	t.Setenv("RANDOM_SEED", "4.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.PDFPricePaise)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.SnapshotBackupEnabled)
	assert.Zero(t, cfg.RandomSeed)
}
