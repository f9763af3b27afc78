package activity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/model"
	pkgLog "github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/pkg/log"
)

// Service keeps the working copy of daily activities. Mutations follow the
// same optimistic policy as the task view-model: add reconciles a local
// placeholder, delete removes immediately and does not restore on failure.
type Service struct {
	l  pkgLog.Logger
	gw *gateway.Gateway

	mu         sync.Mutex
	activities []model.Activity
}

// NewService creates an activity service over the gateway.
func NewService(l pkgLog.Logger, gw *gateway.Gateway) *Service {
	return &Service{l: l, gw: gw}
}

// Refresh replaces the working copy with the server's activity list.
func (s *Service) Refresh(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := s.gw.Get(ctx, "/activities/", &activities); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.activities = activities
	s.mu.Unlock()
	return s.snapshot(), nil
}

// Activities returns a snapshot of the working copy.
func (s *Service) Activities() []model.Activity {
	return s.snapshot()
}

// Add appends a placeholder immediately and swaps in the server record on
// confirmation; on failure the placeholder is removed.
func (s *Service) Add(ctx context.Context, input AddInput) (model.Activity, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Time) == "" {
		return model.Activity{}, &gateway.ValidationError{Reason: "activity name and time are required"}
	}

	placeholder := model.Activity{
		ID:      "pending-" + uuid.NewString(),
		Name:    input.Name,
		Date:    input.Date,
		Time:    input.Time,
		Pending: true,
	}
	s.mu.Lock()
	s.activities = append(s.activities, placeholder)
	s.mu.Unlock()

	payload := map[string]string{"name": input.Name, "date": input.Date, "time": input.Time}
	var created model.Activity
	if err := s.gw.Post(ctx, "/activities/", payload, &created); err != nil {
		s.remove(placeholder.ID)
		s.l.Warnf(ctx, "add activity %q failed, placeholder removed: %v", input.Name, err)
		return model.Activity{}, err
	}

	s.mu.Lock()
	if i := s.indexOf(placeholder.ID); i >= 0 {
		s.activities[i] = created
	} else {
		s.activities = append(s.activities, created)
	}
	s.mu.Unlock()
	return created, nil
}

// Delete removes the activity locally before the call resolves; a failed
// call only surfaces the error, mirroring the task view-model.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return ErrNotFound
	}
	s.activities = append(s.activities[:i], s.activities[i+1:]...)
	s.mu.Unlock()

	if err := s.gw.Delete(ctx, fmt.Sprintf("/activities/%s", id)); err != nil {
		s.l.Warnf(ctx, "delete activity %s failed; entry already removed locally: %v", id, err)
		return err
	}
	return nil
}

func (s *Service) snapshot() []model.Activity {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

func (s *Service) indexOf(id string) int {
	for i := range s.activities {
		if s.activities[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		s.activities = append(s.activities[:i], s.activities[i+1:]...)
	}
}
