package service

import (
	"context"
	"strings"

	"portfolio/internal/model"
	"portfolio/internal/storage"
)

// FileService backs the admin file manager: a single-page listing of the
// profile bucket and direct deletion of individual objects.
type FileService struct {
	store     storage.ObjectStore
	bucket    string
	listLimit int
}

func NewFileService(store storage.ObjectStore, bucket string, listLimit int) *FileService {
	return &FileService{
		store:     store,
		bucket:    bucket,
		listLimit: listLimit,
	}
}

// Files lists the bucket's objects with their public URLs. The listing is
// a single page capped at the configured limit.
func (s *FileService) Files(ctx context.Context) ([]model.StoredObject, error) {
	infos, err := s.store.List(ctx, s.bucket, "", s.listLimit)
	if err != nil {
		return nil, err
	}

	objects := make([]model.StoredObject, 0, len(infos))
	for _, info := range infos {
		objType := model.StoredObjectTypeImage
		if strings.HasSuffix(strings.ToLower(info.Key), ".pdf") {
			objType = model.StoredObjectTypePDF
		}

		objects = append(objects, model.StoredObject{
			Key:       info.Key,
			Size:      info.Size,
			URL:       s.store.PublicURL(s.bucket, info.Key),
			Type:      objType,
			CreatedAt: info.CreatedAt,
		})
	}

	return objects, nil
}

// Delete removes one object by key.
func (s *FileService) Delete(ctx context.Context, key string) error {
	return s.store.Delete(ctx, s.bucket, key)
}
