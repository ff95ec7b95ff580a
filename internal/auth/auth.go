package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/BloggingApp/diary-service/internal/model"
	"github.com/BloggingApp/diary-service/pkg/utils"
)

const SessionCookie = "access_token"

var (
	ErrNotAuthenticated = errors.New("login required")
	ErrNotAuthorized    = errors.New("no access")
)

// Resolver turns access tokens issued by the auth provider into identities.
type Resolver struct {
	secret []byte
}

func NewResolver(secret string) *Resolver {
	return &Resolver{
		secret: []byte(secret),
	}
}

func (r *Resolver) Resolve(token string) (*model.Identity, error) {
	if token == "" || len(r.secret) == 0 {
		return nil, ErrNotAuthenticated
	}

	claims, err := utils.DecodeJWT(token, r.secret)
	if err != nil {
		return nil, ErrNotAuthenticated
	}

	sub, err := claims.GetSubject()
	if err != nil || strings.TrimSpace(sub) == "" {
		return nil, ErrNotAuthenticated
	}

	identity := &model.Identity{ID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, nil
}

// TokenFromRequest reads the bearer token, falling back to the session cookie.
func TokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}

	cookie, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// IsOwner reports whether userID is the configured owner. A blank owner id
// matches nobody.
func IsOwner(ownerID string, userID string) bool {
	ownerID = strings.TrimSpace(ownerID)
	return ownerID != "" && ownerID == userID
}

func RequireOwner(ownerID string, identity *model.Identity) error {
	if identity == nil {
		return ErrNotAuthenticated
	}

	if !IsOwner(ownerID, identity.ID) {
		return ErrNotAuthorized
	}

	return nil
}
