package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/model"
)

func TestFilesListsBucketWithTypes(t *testing.T) {
	store := newFakeStore()
	store.objects["profile/abc-photo.png"] = true
	store.objects["profile/def-cv.pdf"] = true
	store.objects["certificates/xyz-cert.pdf"] = true

	svc := NewFileService(store, "profile", 100)

	files, err := svc.Files(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2, "only the managed bucket is listed")

	byKey := make(map[string]model.StoredObject, len(files))
	for _, f := range files {
		byKey[f.Key] = f
	}
	assert.Equal(t, model.StoredObjectTypeImage, byKey["abc-photo.png"].Type)
	assert.Equal(t, model.StoredObjectTypePDF, byKey["def-cv.pdf"].Type)
	assert.Equal(t, "https://cdn.test/profile/abc-photo.png", byKey["abc-photo.png"].URL)
}

func TestFilesRespectsListLimit(t *testing.T) {
	store := newFakeStore()
	store.objects["profile/a.png"] = true
	store.objects["profile/b.png"] = true
	store.objects["profile/c.png"] = true

	svc := NewFileService(store, "profile", 2)

	files, err := svc.Files(context.Background())
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFileDelete(t *testing.T) {
	store := newFakeStore()
	store.objects["profile/abc-photo.png"] = true

	svc := NewFileService(store, "profile", 100)

	err := svc.Delete(context.Background(), "abc-photo.png")
	require.NoError(t, err)
	assert.False(t, store.has("profile", "abc-photo.png"))
}
