package cdn

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"
)

var ErrUploadFailed = errors.New("failed to upload file to CDN")

// Uploader stores one object and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, objectPath string, contentType string, file io.Reader) (string, error)
}

type Client struct {
	origin     string
	token      string
	httpClient *http.Client
}

func New(origin string, token string) *Client {
	return &Client{
		origin: strings.TrimRight(origin, "/"),
		token:  token,
		httpClient: &http.Client{
			Timeout: time.Second * 30,
		},
	}
}

func (c *Client) Upload(ctx context.Context, objectPath string, contentType string, file io.Reader) (string, error) {
	endpoint := "/upload"
	url := c.origin + endpoint

	var requestBody bytes.Buffer
	writer := multipart.NewWriter(&requestBody)

	partHeader := make(textproto.MIMEHeader)
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, objectPath))
	partHeader.Set("Content-Type", contentType)

	fileWriter, err := writer.CreatePart(partHeader)
	if err != nil {
		return "", fmt.Errorf("create file part: %w", err)
	}

	if _, err := io.Copy(fileWriter, file); err != nil {
		return "", fmt.Errorf("copy file content: %w", err)
	}

	if err := writer.WriteField("path", objectPath); err != nil {
		return "", fmt.Errorf("write path field: %w", err)
	}

	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &requestBody)
	if err != nil {
		return "", fmt.Errorf("create CDN request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Add("type", "IMAGE")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("do CDN request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read CDN response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var bodyJSON map[string]interface{}
		if err := json.Unmarshal(body, &bodyJSON); err == nil {
			return "", fmt.Errorf("%w: endpoint(%s), code(%d), details: %v", ErrUploadFailed, endpoint, resp.StatusCode, bodyJSON["details"])
		}
		return "", fmt.Errorf("%w: endpoint(%s), code(%d)", ErrUploadFailed, endpoint, resp.StatusCode)
	}

	return strings.TrimSpace(string(body)), nil
}
