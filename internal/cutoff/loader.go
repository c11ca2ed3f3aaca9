package cutoff

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// document is the wire shape of the cutoff dataset:
// { "cutoffs": [...], "metadata": { "total_entries": N, "total_files_processed": M } }
type document struct {
	Cutoffs  []Record  `json:"cutoffs"`
	Metadata *Metadata `json:"metadata"`
}

// Parse reads a cutoff dataset document from r.
func Parse(r io.Reader) (*Dataset, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode cutoff dataset: %w", err)
	}

	meta := Metadata{}
	if doc.Metadata != nil {
		meta = *doc.Metadata
	}
	if meta.TotalEntries == 0 {
		meta.TotalEntries = len(doc.Cutoffs)
	}
	return NewDataset(doc.Cutoffs, meta), nil
}

// LoadFile reads a dataset from a local path. Files ending in .gz are
// transparently decompressed.
func LoadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cutoff dataset %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", path, err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	return Parse(reader)
}

// ObjectFetcher fetches a dataset object from remote storage.
// Satisfied by backup.Client for S3-compatible stores.
type ObjectFetcher interface {
	Fetch(ctx context.Context, key string) (io.ReadCloser, error)
}

// LoadObject reads a dataset from remote object storage. Keys ending in .gz
// are transparently decompressed.
func LoadObject(ctx context.Context, fetcher ObjectFetcher, key string) (*Dataset, error) {
	body, err := fetcher.Fetch(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cutoff dataset %s: %w", key, err)
	}
	defer func() { _ = body.Close() }()

	var reader io.Reader = body
	if strings.HasSuffix(key, ".gz") {
		gz, err := gzip.NewReader(body)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip stream %s: %w", key, err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	}

	return Parse(reader)
}
