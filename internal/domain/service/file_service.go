package service

import (
	"context"
	"io"
)

type FileUploadService interface {
	// UploadFile stores the file under the given object key and returns its
	// public URL.
	UploadFile(ctx context.Context, file io.Reader, contentType, key string) (string, error)
	DeleteFile(ctx context.Context, key string) error
	Close() error
}
