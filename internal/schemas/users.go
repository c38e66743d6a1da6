package schemas

// SignUpSchema validates new account bodies.
var SignUpSchema = Schema{
	"name":     Str("min=1,max=100").Require(),
	"email":    Str("email").Require(),
	"password": Str("min=8,max=72").Require(),
}

// SignInSchema validates the sign-in body; credentials travel in the Basic auth header.
var SignInSchema = Field("apiKeyToken", Str("min=1").Require())
