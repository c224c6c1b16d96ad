package auth

// OAuthIdentity represents user information obtained from an OAuth provider.
// Email is the only field the core binds to.
type OAuthIdentity struct {
	Email       string
	DisplayName *string
	ProviderID  string
}
