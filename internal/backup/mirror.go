package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"path"

	"github.com/klauspost/compress/zstd"

	"github.com/conspirant/kcet-planner-go/internal/logger"
	"github.com/conspirant/kcet-planner-go/internal/options"
)

// ObjectStore is the subset of Client the mirror needs.
type ObjectStore interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// Mirror copies saved option snapshots to object storage, zstd-compressed,
// one object per profile. Mirroring is best-effort: failures are logged,
// never surfaced to the request that triggered the save.
type Mirror struct {
	store  ObjectStore
	prefix string
	log    *logger.Logger
}

// NewMirror creates a mirror writing under the given key prefix.
func NewMirror(store ObjectStore, prefix string, log *logger.Logger) *Mirror {
	return &Mirror{store: store, prefix: prefix, log: log.WithModule("backup")}
}

func (m *Mirror) key(profileID string) string {
	return path.Join(m.prefix, profileID+".json.zst")
}

// SnapshotSaved mirrors a freshly saved snapshot.
func (m *Mirror) SnapshotSaved(ctx context.Context, profileID string, entries []options.Entry) {
	body, err := compressSnapshot(entries)
	if err != nil {
		m.log.WithError(err).Warnf("failed to encode snapshot backup for %s", profileID)
		return
	}
	if _, err := m.store.Upload(ctx, m.key(profileID), body, "application/zstd"); err != nil {
		m.log.WithError(err).Warnf("failed to mirror snapshot for %s", profileID)
		return
	}
	m.log.WithField("profile_id", profileID).Debugf("mirrored snapshot")
}

// SnapshotDeleted removes the mirrored copy after a clear.
func (m *Mirror) SnapshotDeleted(ctx context.Context, profileID string) {
	if err := m.store.Delete(ctx, m.key(profileID)); err != nil {
		m.log.WithError(err).Warnf("failed to delete mirrored snapshot for %s", profileID)
	}
}

func compressSnapshot(entries []options.Entry) (io.Reader, error) {
	payload, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}

	var buf bytes.Buffer
	encoder, err := zstd.NewWriter(&buf, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("create zstd writer: %w", err)
	}
	if _, err := encoder.Write(payload); err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("compress snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("flush zstd writer: %w", err)
	}
	return &buf, nil
}
