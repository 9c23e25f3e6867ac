package asset

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"portfolio/internal/storage"
)

// fakeStore implements storage.ObjectStore in memory for tests. URLs use
// the shape https://cdn.test/{bucket}/{key}.
type fakeStore struct {
	objects    map[string]bool // "bucket/key"
	puts       int
	deletes    int
	failPutAt  int             // fail the nth put (1-based), 0 = never
	failDelete map[string]bool // "bucket/key" -> delete fails
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		objects:    make(map[string]bool),
		failDelete: make(map[string]bool),
	}
}

func (f *fakeStore) Put(_ context.Context, bucket, key string, body io.Reader, _ string) (storage.Object, error) {
	f.puts++
	if f.failPutAt > 0 && f.puts >= f.failPutAt {
		return storage.Object{}, storage.ErrStoreUnavailable
	}
	_, _ = io.Copy(io.Discard, body)
	f.objects[bucket+"/"+key] = true
	return storage.Object{Bucket: bucket, Key: key, URL: f.PublicURL(bucket, key)}, nil
}

func (f *fakeStore) Delete(_ context.Context, bucket, key string) error {
	f.deletes++
	if f.failDelete[bucket+"/"+key] {
		return storage.ErrStoreUnavailable
	}
	delete(f.objects, bucket+"/"+key)
	return nil
}

func (f *fakeStore) List(_ context.Context, bucket, _ string, limit int) ([]storage.ObjectInfo, error) {
	var infos []storage.ObjectInfo
	for name := range f.objects {
		b, key, _ := strings.Cut(name, "/")
		if b != bucket || len(infos) >= limit {
			continue
		}
		infos = append(infos, storage.ObjectInfo{Key: key, Size: 1, CreatedAt: time.Now()})
	}
	return infos, nil
}

func (f *fakeStore) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://cdn.test/%s/%s", bucket, key)
}

func (f *fakeStore) KeyForURL(rawURL string) (string, string, bool) {
	rest, found := strings.CutPrefix(rawURL, "https://cdn.test/")
	if !found {
		return "", "", false
	}
	bucket, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

func (f *fakeStore) has(bucket, key string) bool {
	return f.objects[bucket+"/"+key]
}
