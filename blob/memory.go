package blob

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// Memory is the in-process Storage used by tests.
type Memory struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func NewMemory() *Memory {
	return &Memory{objects: make(map[string][]byte)}
}

func (s *Memory) url(path string) string {
	return "https://blobs.test/" + path
}

func (s *Memory) Upload(ctx context.Context, path string, r io.Reader, size int64, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	s.mu.Lock()
	s.objects[path] = data
	s.mu.Unlock()
	return s.url(path), nil
}

func (s *Memory) DownloadURL(ctx context.Context, path string) (string, error) {
	s.mu.Lock()
	_, ok := s.objects[path]
	s.mu.Unlock()
	if !ok {
		return "", ErrObjectNotFound
	}
	return s.url(path), nil
}

func (s *Memory) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	delete(s.objects, path)
	s.mu.Unlock()
	return nil
}

func (s *Memory) List(ctx context.Context, prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var paths []string
	for path := range s.objects {
		if strings.HasPrefix(path, prefix) {
			paths = append(paths, path)
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// Exists reports whether an object was uploaded; test helper.
func (s *Memory) Exists(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[path]
	return ok
}

// Len reports how many objects are stored; test helper.
func (s *Memory) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
