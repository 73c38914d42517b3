// package testing contains shared testing utilities
package testing

import (
	"errors"
	"io"
	"os"
	"testing"

	"github.com/desertthunder/gigs/internal/models"
	"github.com/desertthunder/gigs/internal/shared"
)

// SampleConcerts returns a small collection with derived fields already filled in.
//
// It covers a multi-artist band, an empty event, a zero cost and two years.
func SampleConcerts() []models.Concert {
	return []models.Concert{
		{ID: "c1", Band: "Verdena", Date: "12-mar-2022", City: "Milano", Event: "", Artists: 1, Cost: 35, Year: 2022},
		{ID: "c2", Band: "Afterhours, Verdena", Date: "3-lug-2023", City: "Roma", Event: "Rock in Roma", Artists: 2, Cost: 50.5, Year: 2023},
		{ID: "c3", Band: "Marlene Kuntz", Date: "25-feb-2023", City: "Torino", Event: "", Artists: 1, Cost: 0, Year: 2023},
	}
}

// MemBlobs is an in-memory keyed blob store. Set GetErr or PutErr to simulate failures.
// PutKeys records every successful write in order.
type MemBlobs struct {
	Data    map[string][]byte
	GetErr  error
	PutErr  error
	PutKeys []string
}

func NewMemBlobs() *MemBlobs {
	return &MemBlobs{Data: map[string][]byte{}}
}

func (m *MemBlobs) Get(key string) ([]byte, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	v, ok := m.Data[key]
	if !ok {
		return nil, shared.ErrBlobNotFound
	}
	return v, nil
}

func (m *MemBlobs) Put(key string, value []byte) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.PutKeys = append(m.PutKeys, key)
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemBlobs) Delete(key string) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	if _, ok := m.Data[key]; !ok {
		return shared.ErrBlobNotFound
	}
	delete(m.Data, key)
	return nil
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func AssertDirExists(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		t.Errorf("Directory does not exist: %s", path)
		return
	}
	if !info.IsDir() {
		t.Errorf("Path is not a directory: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}
