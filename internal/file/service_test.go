package file_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/file"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

func newService(t *testing.T, handler http.Handler) (*file.Service, string) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credential.NewMemoryStore()
	require.NoError(t, creds.Set("user@test.com"))

	gw := gateway.New(log.NewNop(), creds, gateway.Config{
		Endpoints: gateway.Endpoints{Auth: srv.URL, Task: srv.URL, File: srv.URL},
	})
	svc := file.NewService(log.NewNop(), gw, creds, file.Config{
		Policy:    file.DefaultPolicy(),
		CacheSize: 8,
		CacheTTL:  time.Minute,
	})
	return svc, srv.URL
}

func TestUploadPolicy(t *testing.T) {
	policy := file.DefaultPolicy()

	t.Run("accepted types", func(t *testing.T) {
		for _, name := range []string{"photo.jpg", "scan.JPEG", "chart.png", "cv.pdf", "notes.txt"} {
			assert.NoError(t, policy.Validate(name, 1024), name)
		}
	})

	t.Run("rejected types", func(t *testing.T) {
		for _, name := range []string{"script.exe", "archive.zip", "noextension", "movie.mp4"} {
			err := policy.Validate(name, 1024)
			assert.ErrorIs(t, err, gateway.ErrValidation, name)
		}
	})

	t.Run("size ceiling", func(t *testing.T) {
		assert.NoError(t, policy.Validate("ok.pdf", 5<<20))
		assert.ErrorIs(t, policy.Validate("big.pdf", 5<<20+1), gateway.ErrValidation)
	})
}

func TestUpload(t *testing.T) {
	t.Run("multipart fields reach the backend", func(t *testing.T) {
		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/upload", r.URL.Path)
			require.NoError(t, r.ParseMultipartForm(1<<20))

			f, header, err := r.FormFile("file")
			require.NoError(t, err)
			defer f.Close()
			assert.Equal(t, "notes.txt", header.Filename)
			assert.Equal(t, "shopping list", r.FormValue("description"))
			assert.Equal(t, "user@test.com", r.FormValue("user_id"))

			fmt.Fprint(w, `{"_id":"f1","original_filename":"notes.txt","file_type":"txt","file_size":11,"user_id":"user@test.com","upload_time":"2025-06-15T12:00:00Z"}`)
		}))

		content := strings.NewReader("milk, bread")
		record, err := svc.Upload(context.Background(), file.UploadInput{
			Filename:    "notes.txt",
			Size:        11,
			Description: "shopping list",
			Content:     content,
		})
		require.NoError(t, err)
		assert.Equal(t, "f1", record.ID)
		assert.Equal(t, "txt", record.FileType)
	})

	t.Run("disallowed extension never dispatches", func(t *testing.T) {
		var calls atomic.Int32
		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := svc.Upload(context.Background(), file.UploadInput{
			Filename: "malware.exe", Size: 10, Content: strings.NewReader("x"),
		})
		require.ErrorIs(t, err, gateway.ErrValidation)
		assert.Zero(t, calls.Load())
	})
}

func TestList(t *testing.T) {
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/files/user@test.com", r.URL.Path)
		fmt.Fprint(w, `[{"_id":"f1","original_filename":"a.pdf","file_type":"pdf","file_size":100,"upload_time":"2025-06-15T12:00:00Z"}]`)
	}))

	records, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "a.pdf", records[0].OriginalFilename)
}

func TestDownload(t *testing.T) {
	t.Run("repeat reads served from cache", func(t *testing.T) {
		var hits atomic.Int32
		svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/files/download/f1", r.URL.Path)
			hits.Add(1)
			fmt.Fprint(w, "file content")
		}))

		first, err := svc.Download(context.Background(), "f1")
		require.NoError(t, err)
		second, err := svc.Download(context.Background(), "f1")
		require.NoError(t, err)

		assert.Equal(t, []byte("file content"), first)
		assert.Equal(t, first, second)
		assert.Equal(t, int32(1), hits.Load(), "second read must not hit the backend")
	})

	t.Run("missing file", func(t *testing.T) {
		svc, _ := newService(t, http.NotFoundHandler())
		_, err := svc.Download(context.Background(), "ghost")
		require.ErrorIs(t, err, gateway.ErrRequestRejected)
	})
}

func TestDownloadURL(t *testing.T) {
	svc, base := newService(t, http.NotFoundHandler())
	assert.Equal(t, base+"/files/download/f1", svc.DownloadURL("f1"))
}

func TestDeleteDropsCache(t *testing.T) {
	var hits atomic.Int32
	svc, _ := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			hits.Add(1)
			fmt.Fprint(w, "content")
		case http.MethodDelete:
			require.Equal(t, "/files/f1", r.URL.Path)
		}
	}))

	_, err := svc.Download(context.Background(), "f1")
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), "f1"))

	_, err = svc.Download(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load(), "delete must invalidate the cached content")
}
