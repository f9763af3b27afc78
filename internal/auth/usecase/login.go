package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"golang.org/x/oauth2"

	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/auth"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/credential"
	"github.com/EASS-HIT-PART-A-2025-CLASS-VII/ezlife/internal/gateway"
)

// Login runs the OAuth2 resource-owner password grant against the auth
// target's /token endpoint and stores the returned bearer credential. The
// issuance call carries the login form, never an existing credential.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) error {
	if input.Email == "" || input.Password == "" {
		return &gateway.ValidationError{Reason: "email and password are required"}
	}

	conf := &oauth2.Config{
		Endpoint: oauth2.Endpoint{
			TokenURL:  uc.gw.Endpoints().BaseURL(gateway.Resolve("/token")) + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}

	token, err := conf.PasswordCredentialsToken(ctx, input.Email, input.Password)
	if err != nil {
		return classifyTokenError(err)
	}

	if err := uc.creds.Set(token.AccessToken); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}
	uc.l.Infof(ctx, "logged in as %s (credential %s)", input.Email, credential.Truncate(token.AccessToken))
	return nil
}

// Logout clears the stored credential. It does not notify session-ended
// subscribers: that event is reserved for server-side credential rejection.
func (uc *implUseCase) Logout(ctx context.Context) error {
	if err := uc.creds.Clear(); err != nil {
		return fmt.Errorf("failed to clear credential: %w", err)
	}
	uc.l.Info(ctx, "logged out")
	return nil
}

// Register creates the account through the default target, matching the web
// client which posts the registration form to the task backend.
func (uc *implUseCase) Register(ctx context.Context, input auth.RegisterInput) error {
	if input.Email == "" || input.Password == "" {
		return &gateway.ValidationError{Reason: "email and password are required"}
	}
	form := url.Values{}
	form.Set("email", input.Email)
	form.Set("password", input.Password)
	if err := uc.gw.PostForm(ctx, "/register", form, nil); err != nil {
		return err
	}
	uc.l.Infof(ctx, "registered %s", input.Email)
	return nil
}

// classifyTokenError maps oauth2 failures onto the gateway taxonomy so the
// login path surfaces the same error shapes as every other operation.
func classifyTokenError(err error) error {
	var retrieve *oauth2.RetrieveError
	if errors.As(err, &retrieve) {
		message := serverDetail(retrieve.Body)
		if message == "" {
			message = retrieve.ErrorDescription
		}
		if message == "" {
			message = "invalid credentials"
		}
		status := 0
		if retrieve.Response != nil {
			status = retrieve.Response.StatusCode
		}
		return &gateway.RejectedError{Status: status, Message: message}
	}
	return fmt.Errorf("credential issuance: %w", gateway.ErrUnreachable)
}

func serverDetail(body []byte) string {
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ""
	}
	return parsed.Detail
}
