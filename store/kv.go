package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	// ErrNotFound is returned by KV.Read for keys never written
	ErrNotFound = errors.New("key not found")

	// ErrInvalidKey is returned for keys that cannot name a file
	ErrInvalidKey = errors.New("invalid key")
)

// KV is a byte-level key-value store that survives process restart
type KV interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// FileKV stores each key as <dir>/<key>.toml
type FileKV struct {
	dir string
}

// NewFileKV creates a store rooted at dir; the directory is created on first write
func NewFileKV(dir string) *FileKV {
	return &FileKV{dir: dir}
}

// Path returns the file backing key
func (f *FileKV) Path(key string) string {
	return filepath.Join(f.dir, key+".toml")
}

func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return fmt.Errorf("%q: %w", key, ErrInvalidKey)
	}
	return nil
}

func (f *FileKV) Read(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	return data, err
}

func (f *FileKV) Write(key string, data []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	return os.WriteFile(f.Path(key), data, 0644)
}

// MemoryKV is an in-process KV
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	d, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), d...), nil
}

func (m *MemoryKV) Write(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// record wraps a value so scalars and lists encode as a TOML document
type record[T any] struct {
	Value T `toml:"value"`
}

// Load decodes key into a T, returning def when the key is missing or malformed
func Load[T any](kv KV, key string, def T) T {
	data, err := kv.Read(key)
	if errors.Is(err, ErrNotFound) {
		return def
	}
	if err != nil {
		log.Printf("store: read %s: %v, using default", key, err)
		return def
	}

	var rec record[T]
	md, err := toml.Decode(string(data), &rec)
	if err != nil {
		log.Printf("store: decode %s: %v, using default", key, err)
		return def
	}
	// A nil list encodes as a document without the key
	if !md.IsDefined("value") {
		return def
	}
	return rec.Value
}

// Save encodes v under key
func Save[T any](kv KV, key string, v T) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(record[T]{Value: v}); err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := kv.Write(key, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}
