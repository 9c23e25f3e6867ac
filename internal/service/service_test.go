package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"portfolio/internal/asset"
	"portfolio/internal/model"
	"portfolio/internal/repository"
	"portfolio/internal/storage"
)

// fakeStore implements storage.ObjectStore in memory. URLs use the shape
// https://cdn.test/{bucket}/{key}.
type fakeStore struct {
	objects    map[string]bool // "bucket/key"
	puts       int
	deletes    int
	failPut    bool
	failDelete bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: make(map[string]bool)}
}

func (f *fakeStore) Put(_ context.Context, bucket, key string, body io.Reader, _ string) (storage.Object, error) {
	if f.failPut {
		return storage.Object{}, storage.ErrStoreUnavailable
	}
	f.puts++
	_, _ = io.Copy(io.Discard, body)
	f.objects[bucket+"/"+key] = true
	return storage.Object{Bucket: bucket, Key: key, URL: f.PublicURL(bucket, key)}, nil
}

func (f *fakeStore) Delete(_ context.Context, bucket, key string) error {
	f.deletes++
	if f.failDelete {
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

func (f *fakeStore) count() int {
	return len(f.objects)
}

// fakeProfileRepo keeps the singleton row in memory.
type fakeProfileRepo struct {
	profile   *model.Profile
	upsertErr error
}

func (f *fakeProfileRepo) Get() (*model.Profile, error) {
	if f.profile == nil {
		return nil, repository.ErrProfileNotFound
	}
	p := *f.profile
	return &p, nil
}

func (f *fakeProfileRepo) Upsert(profile *model.Profile) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	p := *profile
	f.profile = &p
	return nil
}

// fakeCertificateRepo keeps certificates in memory.
type fakeCertificateRepo struct {
	certs     map[string]*model.Certificate
	createErr error
	updateErr error
}

func newFakeCertificateRepo() *fakeCertificateRepo {
	return &fakeCertificateRepo{certs: make(map[string]*model.Certificate)}
}

func (f *fakeCertificateRepo) Create(cert *model.Certificate) error {
	if f.createErr != nil {
		return f.createErr
	}
	c := *cert
	f.certs[cert.ID] = &c
	return nil
}

func (f *fakeCertificateRepo) ByID(id string) (*model.Certificate, error) {
	cert, ok := f.certs[id]
	if !ok {
		return nil, repository.ErrCertificateNotFound
	}
	c := *cert
	return &c, nil
}

func (f *fakeCertificateRepo) Certificates(publishedOnly bool) ([]*model.Certificate, error) {
	var out []*model.Certificate
	for _, cert := range f.certs {
		if publishedOnly && !cert.IsPublished {
			continue
		}
		c := *cert
		out = append(out, &c)
	}
	return out, nil
}

func (f *fakeCertificateRepo) Update(cert *model.Certificate) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.certs[cert.ID]; !ok {
		return repository.ErrCertificateNotFound
	}
	c := *cert
	f.certs[cert.ID] = &c
	return nil
}

func (f *fakeCertificateRepo) Delete(id string) error {
	if _, ok := f.certs[id]; !ok {
		return repository.ErrCertificateNotFound
	}
	delete(f.certs, id)
	return nil
}

// fakeProjectRepo keeps projects in memory.
type fakeProjectRepo struct {
	projects  map[string]*model.Project
	createErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*model.Project)}
}

func (f *fakeProjectRepo) Create(project *model.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	p := *project
	f.projects[project.ID] = &p
	return nil
}

func (f *fakeProjectRepo) ByID(id string) (*model.Project, error) {
	project, ok := f.projects[id]
	if !ok {
		return nil, repository.ErrProjectNotFound
	}
	p := *project
	return &p, nil
}

func (f *fakeProjectRepo) Projects() ([]*model.Project, error) {
	var out []*model.Project
	for _, project := range f.projects {
		p := *project
		out = append(out, &p)
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(project *model.Project) error {
	if _, ok := f.projects[project.ID]; !ok {
		return repository.ErrProjectNotFound
	}
	p := *project
	f.projects[project.ID] = &p
	return nil
}

func (f *fakeProjectRepo) Delete(id string) error {
	if _, ok := f.projects[id]; !ok {
		return repository.ErrProjectNotFound
	}
	delete(f.projects, id)
	return nil
}

var (
	pngContent = append([]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, make([]byte, 64)...)
	pdfContent = []byte("%PDF-1.4\n%test document\n")
)

func pngUpload(filename string) asset.Upload {
	return asset.Upload{
		Filename:    filename,
		ContentType: "image/png",
		Size:        int64(len(pngContent)),
		File:        bytes.NewReader(pngContent),
	}
}

func pdfUpload(filename string) asset.Upload {
	return asset.Upload{
		Filename:    filename,
		ContentType: "application/pdf",
		Size:        int64(len(pdfContent)),
		File:        bytes.NewReader(pdfContent),
	}
}

func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
