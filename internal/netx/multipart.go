// Package netx contains small HTTP plumbing helpers shared by the API layer.
package netx

import (
	"bytes"
	"fmt"
	"mime/multipart"
)

// EncodeMultipart builds a multipart/form-data body from string fields plus an
// optional file part. It returns the encoded body and the Content-Type header
// value (including the boundary).
//
// fields are written in map iteration order; the backend reads them by name,
// so ordering does not matter. If image is nil the file part is omitted,
// which the product endpoints treat as "keep the current image".
func EncodeMultipart(fields map[string]string, fileField, fileName string, image []byte) ([]byte, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", fmt.Errorf("failed to write field %q: %w", k, err)
		}
	}

	if image != nil {
		part, err := w.CreateFormFile(fileField, fileName)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create file part: %w", err)
		}
		if _, err := part.Write(image); err != nil {
			return nil, "", fmt.Errorf("failed to write file part: %w", err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return buf.Bytes(), w.FormDataContentType(), nil
}
