package handler

import (
	"mime/multipart"
	"strconv"
	"strings"

	"portfolio/internal/asset"
)

// maxFormMemory bounds in-memory multipart parsing, larger parts spill to
// temp files.
const maxFormMemory = 32 << 20

// formValue distinguishes an omitted field (nil, keep stored value) from
// an explicitly empty one ("" overwrites).
func formValue(form *multipart.Form, key string) *string {
	values, ok := form.Value[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

// formFlag reads a boolean form field, absent means false.
func formFlag(form *multipart.Form, key string) bool {
	v := formValue(form, key)
	if v == nil {
		return false
	}
	b, err := strconv.ParseBool(*v)
	return err == nil && b
}

// formBool reads an optional boolean field, nil when absent.
func formBool(form *multipart.Form, key string) *bool {
	v := formValue(form, key)
	if v == nil {
		return nil
	}
	b, err := strconv.ParseBool(*v)
	if err != nil {
		return nil
	}
	return &b
}

// formLabels reads a repeated field, splitting comma-separated entries.
// Returns nil when the field is absent so callers can keep stored values.
func formLabels(form *multipart.Form, key string) []string {
	values, ok := form.Value[key]
	if !ok {
		return nil
	}

	labels := []string{}
	for _, value := range values {
		for _, label := range strings.Split(value, ",") {
			label = strings.TrimSpace(label)
			if label != "" {
				labels = append(labels, label)
			}
		}
	}
	return labels
}

// fileUploads opens the form's file parts for a field. The returned
// closer must run after the service call completed.
func fileUploads(form *multipart.Form, key string) ([]asset.Upload, func(), error) {
	headers := form.File[key]

	var uploads []asset.Upload
	var files []multipart.File

	closeAll := func() {
		for _, f := range files {
			_ = f.Close()
		}
	}

	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, func() {}, err
		}
		files = append(files, f)

		uploads = append(uploads, asset.Upload{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			File:        f,
		})
	}

	return uploads, closeAll, nil
}
