package activity_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/activity"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

func newService(t *testing.T, handler http.Handler) *activity.Service {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	creds := credential.NewMemoryStore()
	require.NoError(t, creds.Set("user@test.com"))

	gw := gateway.New(log.NewNop(), creds, gateway.Config{
		Endpoints: gateway.Endpoints{Auth: srv.URL, Task: srv.URL, File: srv.URL},
	})
	return activity.NewService(log.NewNop(), gw)
}

func TestRefreshAndSnapshot(t *testing.T) {
	svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/activities/", r.URL.Path)
		fmt.Fprint(w, `[{"id":"a1","name":"gym","date":"2025-06-15","time":"07:00"}]`)
	}))

	got, err := svc.Refresh(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "gym", got[0].Name)
	assert.Equal(t, "07:00", got[0].Time)
	assert.Equal(t, got, svc.Activities())
}

func TestAdd(t *testing.T) {
	t.Run("confirmed record replaces the placeholder", func(t *testing.T) {
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			var payload map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
			assert.Equal(t, "standup", payload["name"])
			fmt.Fprintf(w, `{"id":"a9","name":%q,"date":%q,"time":%q}`,
				payload["name"], payload["date"], payload["time"])
		}))

		created, err := svc.Add(context.Background(), activity.AddInput{
			Name: "standup", Date: "2025-06-16", Time: "09:30",
		})
		require.NoError(t, err)
		assert.Equal(t, "a9", created.ID)
		assert.False(t, created.Pending)

		got := svc.Activities()
		require.Len(t, got, 1)
		assert.Equal(t, "a9", got[0].ID)
		assert.False(t, strings.HasPrefix(got[0].ID, "pending-"))
	})

	t.Run("placeholder is visible while the create is in flight", func(t *testing.T) {
		// the handler snapshots the working copy before answering, so the
		// assertion sees exactly what a reader would mid-request
		var svc *activity.Service
		var midFlight []model.Activity
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			midFlight = svc.Activities()
			fmt.Fprint(w, `{"id":"a7","name":"standup","date":"2025-06-16","time":"09:30"}`)
		}))
		t.Cleanup(srv.Close)

		creds := credential.NewMemoryStore()
		require.NoError(t, creds.Set("user@test.com"))
		gw := gateway.New(log.NewNop(), creds, gateway.Config{
			Endpoints: gateway.Endpoints{Auth: srv.URL, Task: srv.URL, File: srv.URL},
		})
		svc = activity.NewService(log.NewNop(), gw)

		created, err := svc.Add(context.Background(), activity.AddInput{
			Name: "standup", Date: "2025-06-16", Time: "09:30",
		})
		require.NoError(t, err)

		require.Len(t, midFlight, 1)
		assert.True(t, midFlight[0].Pending)
		assert.True(t, strings.HasPrefix(midFlight[0].ID, "pending-"), "placeholder id was %q", midFlight[0].ID)
		assert.Equal(t, "standup", midFlight[0].Name)
		assert.Equal(t, "a7", created.ID)
	})

	t.Run("failed add removes the placeholder", func(t *testing.T) {
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"detail":"schedule full"}`, http.StatusBadRequest)
		}))

		_, err := svc.Add(context.Background(), activity.AddInput{Name: "nap", Time: "14:00"})
		require.ErrorIs(t, err, gateway.ErrRequestRejected)
		assert.Empty(t, svc.Activities())
	})

	t.Run("name and time are required", func(t *testing.T) {
		var calls atomic.Int32
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
		}))

		_, err := svc.Add(context.Background(), activity.AddInput{Name: "  "})
		require.ErrorIs(t, err, gateway.ErrValidation)
		_, err = svc.Add(context.Background(), activity.AddInput{Name: "walk"})
		require.ErrorIs(t, err, gateway.ErrValidation)
		assert.Zero(t, calls.Load(), "validation rejections never reach the network")
	})
}

func TestDelete(t *testing.T) {
	list := `[{"id":"a1","name":"gym","date":"2025-06-15","time":"07:00"},
	          {"id":"a2","name":"read","date":"2025-06-15","time":"21:00"}]`

	t.Run("success", func(t *testing.T) {
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet:
				fmt.Fprint(w, list)
			case http.MethodDelete:
				require.Equal(t, "/activities/a1", r.URL.Path)
			}
		}))
		_, err := svc.Refresh(context.Background())
		require.NoError(t, err)

		require.NoError(t, svc.Delete(context.Background(), "a1"))
		got := svc.Activities()
		require.Len(t, got, 1)
		assert.Equal(t, "a2", got[0].ID)
	})

	t.Run("failed delete does not restore the entry", func(t *testing.T) {
		svc := newService(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet {
				fmt.Fprint(w, list)
				return
			}
			http.Error(w, `{"detail":"cannot delete"}`, http.StatusConflict)
		}))
		_, err := svc.Refresh(context.Background())
		require.NoError(t, err)

		err = svc.Delete(context.Background(), "a2")
		require.ErrorIs(t, err, gateway.ErrRequestRejected)
		require.Len(t, svc.Activities(), 1)
		assert.Equal(t, "a1", svc.Activities()[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc := newService(t, http.NotFoundHandler())
		require.ErrorIs(t, svc.Delete(context.Background(), "ghost"), activity.ErrNotFound)
	})
}
