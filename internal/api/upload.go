package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
)

// Upload endpoints. All uploads are multipart with a single file field.
const (
	UploadAvatar      = "/upload/avatar"
	UploadCover       = "/upload/cover"
	UploadThreadImage = "/upload/thread-image"
)

// UploadResult is the hosted URL of a stored file.
type UploadResult struct {
	URL string `json:"url"`
}

// Upload sends one file as multipart form data and returns the hosted URL.
// The same error policy as JSON requests applies.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader) (*UploadResult, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err == nil {
		_, err = io.Copy(part, r)
	}
	if err == nil {
		err = writer.Close()
	}
	if err != nil {
		c.notifier.Error(NoticeUnexpected)
		return nil, &Error{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		c.notifier.Error(NoticeUnexpected)
		return nil, &Error{Err: err}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.notifier.Error(NoticeNetworkError)
		return nil, &Error{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return nil, c.handleErrorStatus(resp)
	}

	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		c.notifier.Error(NoticeUnexpected)
		return nil, &Error{Status: resp.StatusCode, Message: "invalid response body", Err: err}
	}
	return &result, nil
}
