package models

// Scopes understood by the API.
const (
	ScopeSignIn        = "signin:auth"
	ScopeSignUp        = "signup:auth"
	ScopeReadProducts  = "read:products"
	ScopeCreateProduct = "create:product"
	ScopeUpdateProduct = "update:product"
	ScopeDeleteProduct = "delete:product"
)

// AdminScopes are granted by the admin API key.
var AdminScopes = []string{
	ScopeSignIn, ScopeSignUp, ScopeReadProducts,
	ScopeCreateProduct, ScopeUpdateProduct, ScopeDeleteProduct,
}

// PublicScopes are granted by the public API key.
var PublicScopes = []string{ScopeSignIn, ScopeSignUp, ScopeReadProducts}

// Principal is the identity decoded from a verified token. It lives for one request.
type Principal struct {
	Subject string   `json:"sub"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Scopes  []string `json:"scopes"`
}

// APIKey maps a client token to the scopes embedded in issued JWTs.
type APIKey struct {
	Token  string
	Scopes []string
}
