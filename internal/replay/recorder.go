// Package replay records planned turns to compressed JSONL files and reads
// them back.
package replay

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/napolitain/solver-brew/internal/converter"
)

// Record is one planned turn
type Record struct {
	Turn          int                `json:"turn"`
	Snapshot      converter.Snapshot `json:"snapshot"`
	Move          string             `json:"move"`
	TurnsToPayoff int                `json:"turns_to_payoff"`
	Reward        int                `json:"reward"`
	ElapsedMicros int64              `json:"elapsed_us"`
	Truncated     bool               `json:"truncated,omitempty"`
}

// Recorder appends records to a zstd compressed JSONL file
type Recorder struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// NewRecorder creates (or truncates) the file at path
func NewRecorder(path string) (*Recorder, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create replay directory: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create replay file: %w", err)
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	return &Recorder{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Write appends one record
func (r *Recorder) Write(rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return fmt.Errorf("replay recorder is closed")
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode record for turn %d: %w", rec.Turn, err)
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	return r.w.WriteByte('\n')
}

// Close flushes buffered records and closes the file
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.w == nil {
		return nil
	}
	var firstErr error
	if err := r.w.Flush(); err != nil {
		firstErr = err
	}
	if err := r.enc.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := r.f.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	r.w, r.enc, r.f = nil, nil, nil
	return firstErr
}
