package vaiz

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/aisa-it/vaiz.go/pkg/apierrors"
	"github.com/aisa-it/vaiz.go/pkg/models"
	"github.com/gofrs/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// UploadFile загружает локальный файл. fileType (Image, Video, Pdf, File) необязателен.
func (c *Client) UploadFile(ctx context.Context, filePath, fileType string) (*models.UploadFileResponse, error) {
	f, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apierrors.ErrFileNotFound.WithFormattedMessage(filePath)
		}
		return nil, err
	}
	defer f.Close()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("read %s: %w", filePath, err)
	}
	if fileType != "" {
		if err := w.WriteField("type", fileType); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	var resp models.UploadFileResponse
	if err := c.postMultipart(ctx, "uploadFile", &body, w.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UploadFileFromURL скачивает файл во временный каталог и загружает его в Vaiz.
// Временный файл удаляется в любом случае.
func (c *Client) UploadFileFromURL(ctx context.Context, fileURL, fileType string) (*models.UploadFileResponse, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}
	name := "vaiz-upload-" + id.String()
	if u, err := url.Parse(fileURL); err == nil {
		name += path.Ext(u.Path)
	}
	tmp := filepath.Join(os.TempDir(), name)
	defer os.Remove(tmp)

	if err := c.download(ctx, fileURL, tmp, nil); err != nil {
		return nil, err
	}
	return c.UploadFile(ctx, tmp, fileType)
}

// DownloadImage сохраняет изображение в localPath. Для адресов vaiz.com добавляются заголовки авторизации.
func (c *Client) DownloadImage(ctx context.Context, imageURL, localPath string) (string, error) {
	if err := c.download(ctx, imageURL, localPath, c.imageHeaders(imageURL)); err != nil {
		return "", err
	}
	return localPath, nil
}

func (c *Client) imageHeaders(imageURL string) http.Header {
	h := http.Header{}
	h.Set("Accept", "image/*")
	if strings.Contains(imageURL, "vaiz.com") {
		h.Set("Authorization", "Bearer "+c.apiKey)
		h.Set("current-space-id", c.spaceID)
	}
	return h
}

func (c *Client) download(ctx context.Context, rawURL, dst string, header http.Header) (err error) {
	start := time.Now()
	status := "ok"
	defer func() {
		if err != nil {
			status = "http_error"
		}
		c.metrics.observe("download", status, time.Since(start))
	}()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &apierrors.HTTPError{URL: rawURL, Err: err}
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := c.http.Do(req)
	if resp == nil {
		return &apierrors.HTTPError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &apierrors.HTTPError{StatusCode: resp.StatusCode, URL: rawURL, Body: string(b)}
	}

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		out.Close()
		return &apierrors.HTTPError{StatusCode: resp.StatusCode, URL: rawURL, Err: err}
	}
	return out.Close()
}
