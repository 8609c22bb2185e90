/*
Package authsdk provides a client SDK for the clinic authentication service.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (register, login, refresh, revoke,
    health) and session creation
  - Session: authenticated operations with automatic token refresh

	client := authsdk.NewSDKClient("https://auth.clinic.example")

	resp, err := client.Register(ctx, authsdk.RegisterRequest{
		FirstName: "Gregory",
		LastName:  "House",
		Username:  "ghouse",
		Email:     "house@clinic.example",
		Password:  "Vic0din!",
		Role:      "Doctor",
	})

	session, err := client.AuthenticateWithPassword(ctx, "house@clinic.example", "Vic0din!")
	me, err := session.Me(ctx)

# Refresh tokens

Refresh tokens rotate: RefreshToken returns a new refresh token and revokes
the presented one, so a replayed token fails with "Invalid token". Login
returns the caller's currently active refresh token when there is one.

# Errors

Every non-2xx response is returned as *APIError:

	var apiErr *authsdk.APIError
	if errors.As(err, &apiErr) && apiErr.Code == authsdk.ErrorCodeInvalidGrant {
		// wrong email or password
	}
*/
package authsdk
