package fakeserver_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth"
	authUC "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth/usecase"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/fakeserver"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/file"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// wires the full client stack against all three fake backends.
type stack struct {
	creds *credential.MemoryStore
	auth  auth.UseCase
	files *file.Service
}

func newStack(t *testing.T) *stack {
	t.Helper()
	cluster := fakeserver.New()
	cluster.AddUser("user@test.com", "12345678")

	authSrv := httptest.NewServer(cluster.AuthHandler())
	taskSrv := httptest.NewServer(cluster.TaskHandler())
	fileSrv := httptest.NewServer(cluster.FileHandler())
	t.Cleanup(authSrv.Close)
	t.Cleanup(taskSrv.Close)
	t.Cleanup(fileSrv.Close)

	creds := credential.NewMemoryStore()
	l := log.NewNop()
	gw := gateway.New(l, creds, gateway.Config{
		Endpoints: gateway.Endpoints{Auth: authSrv.URL, Task: taskSrv.URL, File: fileSrv.URL},
	})
	return &stack{
		creds: creds,
		auth:  authUC.New(l, creds, gw),
		files: file.NewService(l, gw, creds, file.Config{
			Policy:    file.DefaultPolicy(),
			CacheSize: 4,
			CacheTTL:  time.Minute,
		}),
	}
}

func TestLoginAgainstFakeAuth(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)

	t.Run("wrong password", func(t *testing.T) {
		err := s.auth.Login(ctx, auth.LoginInput{Email: "user@test.com", Password: "wrong"})
		require.ErrorIs(t, err, gateway.ErrRequestRejected)
		var rejected *gateway.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Incorrect email or password", rejected.Message)
		assert.False(t, s.auth.Authenticated())
	})

	t.Run("issued token is the email", func(t *testing.T) {
		require.NoError(t, s.auth.Login(ctx, auth.LoginInput{Email: "user@test.com", Password: "12345678"}))
		token, err := s.creds.Get()
		require.NoError(t, err)
		assert.Equal(t, "user@test.com", token)
	})
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)

	input := auth.RegisterInput{Email: "new@test.com", Password: "secret123"}
	require.NoError(t, s.auth.Register(ctx, input))

	t.Run("duplicate email rejected", func(t *testing.T) {
		err := s.auth.Register(ctx, input)
		require.ErrorIs(t, err, gateway.ErrRequestRejected)
		var rejected *gateway.RejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Email already registered", rejected.Message)
	})

	require.NoError(t, s.auth.Login(ctx, auth.LoginInput{Email: "new@test.com", Password: "secret123"}))
	assert.True(t, s.auth.Authenticated())
}

func TestFileLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newStack(t)
	require.NoError(t, s.auth.Login(ctx, auth.LoginInput{Email: "user@test.com", Password: "12345678"}))

	record, err := s.files.Upload(ctx, file.UploadInput{
		Filename:    "notes.txt",
		Size:        5,
		Description: "memo",
		Content:     strings.NewReader("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "txt", record.FileType)
	assert.Equal(t, "user@test.com", record.UserID)
	assert.Equal(t, int64(5), record.FileSize)

	listed, err := s.files.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, record.ID, listed[0].ID)

	content, err := s.files.Download(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), content)

	require.NoError(t, s.files.Delete(ctx, record.ID))
	listed, err = s.files.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

// The fake enforces the allow-list server-side as well, so a client with a
// looser policy still gets rejected.
func TestFakeFileBackendRejectsDisallowedType(t *testing.T) {
	cluster := fakeserver.New()
	srv := httptest.NewServer(cluster.FileHandler())
	t.Cleanup(srv.Close)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("file", "malware.exe")
	require.NoError(t, err)
	_, err = part.Write([]byte("MZ"))
	require.NoError(t, err)
	require.NoError(t, w.WriteField("user_id", "user@test.com"))
	require.NoError(t, w.Close())

	resp, err := http.Post(srv.URL+"/upload", w.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
