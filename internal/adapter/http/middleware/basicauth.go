package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/skyfare/flight-fare-service/internal/adapter/http/response"
)

// Access gate messages and the challenge sent when no credentials arrive.
const (
	MsgCredentialsMissing = "Username and password not provided."
	MsgCredentialsInvalid = "Username or password are invalid."

	basicChallenge = "Basic realm=Authorization Required"
)

// BasicAuth returns the access gate middleware. Every request must carry
// an Authorization header whose base64 payload decodes to the configured
// user:password pair. A missing header gets the browser challenge; a
// wrong pair gets a plain 401 without one.
func BasicAuth(username, password string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Response().Header().Set(echo.HeaderWWWAuthenticate, basicChallenge)
				return response.Unauthorized(c, MsgCredentialsMissing)
			}

			user, pass, ok := decodeCredentials(header)
			if !ok || !credentialsMatch(user, pass, username, password) {
				return response.Unauthorized(c, MsgCredentialsInvalid)
			}

			return next(c)
		}
	}
}

// decodeCredentials extracts the user and password from an Authorization
// header value of the form "<scheme> <base64(user:pass)>".
func decodeCredentials(header string) (user, pass string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	user, pass, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", false
	}
	return user, pass, true
}

// credentialsMatch compares both fields in constant time so mismatches
// leak no timing information.
func credentialsMatch(user, pass, wantUser, wantPass string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(wantPass)) == 1
	return userOK && passOK
}
