// Package persist saves and loads sets of identities as zstd-compressed
// JSON, the batch-scale counterpart to the single-identity text and binary
// forms.
package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"github.com/meshveil/identity/pkg/identity"
)

const envelopeVersion = 1

type envelope struct {
	Version int      `json:"version"`
	Records [][]byte `json:"records"`
}

// Save marshals ids (via each identity's binary codec) into a JSON
// envelope, zstd-compresses it, and writes it to path, replacing any
// existing file atomically.
func Save(path string, ids []*identity.Identity, includePrivate bool) error {
	env := envelope{
		Version: envelopeVersion,
		Records: make([][]byte, len(ids)),
	}
	for i, id := range ids {
		env.Records[i] = id.Marshal(includePrivate)
	}

	raw, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("persist: marshal envelope: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return fmt.Errorf("persist: new zstd writer: %w", err)
	}
	comp := enc.EncodeAll(raw, make([]byte, 0, len(raw)))
	if err := enc.Close(); err != nil {
		return fmt.Errorf("persist: close zstd writer: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".persist-*.tmp")
	if err != nil {
		return fmt.Errorf("persist: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(comp); err != nil {
		tmp.Close()
		return fmt.Errorf("persist: write temp file: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("persist: chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("persist: close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("persist: rename temp file: %w", err)
	}
	return nil
}

// Load reads and decompresses path, then decodes each record via the
// identity binary codec (§4.G), skipping none and failing on the first
// malformed record.
func Load(path string) ([]*identity.Identity, error) {
	comp, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: read file: %w", err)
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("persist: new zstd reader: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(comp, nil)
	if err != nil {
		return nil, fmt.Errorf("persist: decompress: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("persist: unmarshal envelope: %w", err)
	}

	ids := make([]*identity.Identity, len(env.Records))
	for i, rec := range env.Records {
		id, n, err := identity.Unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("persist: decode record %d: %w", i, err)
		}
		if n != len(rec) {
			return nil, fmt.Errorf("persist: decode record %d: trailing bytes", i)
		}
		ids[i] = id
	}

	return ids, nil
}
