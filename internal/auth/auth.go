package auth

import (
	"context"
	"fmt"
	"time"

	"devpulse/internal/lib"
	"devpulse/internal/lib/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
	githuboauth "golang.org/x/oauth2/github"
)

// Service handles the GitHub OAuth exchange and signed-token issuance.
type Service struct {
	oauth  *oauth2.Config
	secret string
	ttl    time.Duration
}

type GithubUser struct {
	ID    int64
	Login string
}

func NewService(gh config.GitHub, j config.JWT) *Service {
	return &Service{
		oauth: &oauth2.Config{
			ClientID:     gh.ClientID,
			ClientSecret: gh.ClientSecret,
			RedirectURL:  gh.CallbackURL,
			Scopes:       []string{"repo", "user"},
			Endpoint:     githuboauth.Endpoint,
		},
		secret: j.Secret,
		ttl:    j.TTL,
	}
}

// LoginURL builds the provider redirect URL. Pure, no I/O.
func (s *Service) LoginURL() string {
	return s.oauth.AuthCodeURL("")
}

// ExchangeCode posts the authorization code to the provider's token endpoint.
func (s *Service) ExchangeCode(ctx context.Context, code string) (string, error) {
	const op = "auth.ExchangeCode"

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", lib.Err(op, err)
	}

	return token.AccessToken, nil
}

// FetchGithubUser fetches the authenticated user's profile with the bearer
// token obtained from the OAuth exchange.
func (s *Service) FetchGithubUser(ctx context.Context, accessToken string) (*GithubUser, error) {
	const op = "auth.FetchGithubUser"

	client := github.NewClient(nil).WithAuthToken(accessToken)
	user, _, err := client.Users.Get(ctx, "")
	if err != nil {
		return nil, lib.Err(op, err)
	}

	return &GithubUser{
		ID:    user.GetID(),
		Login: user.GetLogin(),
	}, nil
}

// CreateToken signs a bearer token with the configured secret. The subject
// claim carries the external github id.
func (s *Service) CreateToken(githubID string) (string, error) {
	const op = "auth.CreateToken"

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": githubID,
		"exp": time.Now().Add(s.ttl).Unix(),
	})

	signed, err := t.SignedString([]byte(s.secret))
	if err != nil {
		return "", lib.Err(op, err)
	}

	return signed, nil
}

// VerifyToken verifies signature and expiry. It never propagates parse
// errors: any invalid token (expired, malformed, wrong secret or signing
// method) yields ok == false.
func (s *Service) VerifyToken(tokenString string) (jwt.MapClaims, bool) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	return claims, true
}
