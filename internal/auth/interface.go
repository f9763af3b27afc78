package auth

import "context"

// UseCase defines the session lifecycle operations.
type UseCase interface {
	// Login exchanges the login form for a bearer credential via the auth
	// target's issuance endpoint and persists it in the credential store.
	Login(ctx context.Context, input LoginInput) error

	// Register creates a new account. It does not log the user in.
	Register(ctx context.Context, input RegisterInput) error

	// Logout clears the stored credential. Idempotent.
	Logout(ctx context.Context) error

	// Authenticated reports whether a credential is currently stored.
	Authenticated() bool
}
