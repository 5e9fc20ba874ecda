package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"hrmslite.com/hrms/infrastructure/filesystem"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// openInput opens a local path or an s3:// object.
func openInput(ctx context.Context, path string) (io.ReadCloser, error) {
	if !filesystem.IsS3URI(path) {
		return os.Open(path)
	}
	fs, err := filesystem.ConnectS3(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := fs.ReadFile(ctx, path, &buf); err != nil {
		return nil, err
	}
	return io.NopCloser(&buf), nil
}

// writeOutput writes body to a local path or an s3:// object.
func writeOutput(ctx context.Context, path string, body io.Reader, contentType string) error {
	if !filesystem.IsS3URI(path) {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if _, err := io.Copy(f, body); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	fs, err := filesystem.ConnectS3(ctx)
	if err != nil {
		return err
	}
	return fs.WriteFile(ctx, path, body, contentType)
}
