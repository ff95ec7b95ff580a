package service

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a *multipart.FileHeader the way net/http would after parsing a form.
func fileHeader(t *testing.T, filename string, contentType string, body string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte(body))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	return form.File["image"][0]
}

func TestImage_Upload(t *testing.T) {
	env := newTestEnv(t)

	url, err := env.svc.Image.Upload(context.Background(), owner, fileHeader(t, "photo.PNG", "image/png", "png-bytes"))
	require.NoError(t, err)

	require.Len(t, env.uploader.paths, 1)
	path := env.uploader.paths[0]
	assert.True(t, strings.HasPrefix(path, "post-images/owner-1/"))
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Equal(t, "png-bytes", env.uploader.data[0])
	assert.Equal(t, "https://cdn.example.com/"+path, url)
}

func TestImage_UploadRejects(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.svc.Image.Upload(ctx, nil, fileHeader(t, "a.png", "image/png", "x"))
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = env.svc.Image.Upload(ctx, owner, fileHeader(t, "a.txt", "text/plain", "x"))
	assert.ErrorIs(t, err, ErrFileMustBeImage)

	_, err = env.svc.Image.Upload(ctx, owner, fileHeader(t, "a.svg", "image/svg+xml", "x"))
	assert.ErrorIs(t, err, ErrFileMustHaveAValidExtension)

	env.uploader.err = assert.AnError
	_, err = env.svc.Image.Upload(ctx, owner, fileHeader(t, "a.jpg", "image/jpeg", "x"))
	assert.ErrorIs(t, err, ErrFailedToUploadPostImageToCDN)

	assert.Empty(t, env.uploader.paths)
}
