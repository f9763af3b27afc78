package auth

// LoginInput is the credential-issuance form. The auth backend follows the
// OAuth2 password grant: the username field carries the email.
type LoginInput struct {
	Email    string
	Password string
}

// RegisterInput is the account-creation form.
type RegisterInput struct {
	Email    string
	Password string
}
