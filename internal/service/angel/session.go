// Package angel implements the broker quote source against the Angel
// One SmartAPI REST endpoints.
package angel

import (
	"context"
	"fmt"
	"sync"
	"time"

	xhttp "SentiPulse/pkg/http"
	"SentiPulse/pkg/logger"

	"github.com/pquerna/otp/totp"
)

const (
	loginPath = "/rest/auth/angelbroking/user/v1/loginByPassword"
)

// Credentials holds everything needed to open a broker session.
type Credentials struct {
	APIKey     string
	ClientCode string
	PIN        string
	TOTPSecret string
	LocalIP    string
	PublicIP   string
	MACAddress string
}

// Session manages the broker JWT, renewing it on demand.
type Session struct {
	creds   Credentials
	baseURL string
	client  *xhttp.Client
	log     *logger.Logger

	mu    sync.Mutex
	token string
}

// NewSession creates a session manager. No login happens until the
// first Token call.
func NewSession(creds Credentials, baseURL string, client *xhttp.Client, log *logger.Logger) *Session {
	return &Session{
		creds:   creds,
		baseURL: baseURL,
		client:  client,
		log:     log,
	}
}

type loginRequest struct {
	ClientCode string `json:"clientcode"`
	Password   string `json:"password"`
	TOTP       string `json:"totp"`
}

type loginResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		JWTToken     string `json:"jwtToken"`
		RefreshToken string `json:"refreshToken"`
		FeedToken    string `json:"feedToken"`
	} `json:"data"`
}

// Token returns the cached JWT, logging in first if necessary.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != "" {
		return s.token, nil
	}
	return s.loginLocked(ctx)
}

// Refresh discards the cached JWT and logs in again. Used after the
// broker rejects a request with an auth failure.
func (s *Session) Refresh(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.loginLocked(ctx)
}

func (s *Session) loginLocked(ctx context.Context) (string, error) {
	code, err := totp.GenerateCode(s.creds.TOTPSecret, time.Now())
	if err != nil {
		return "", fmt.Errorf("generate totp: %w", err)
	}

	var resp loginResponse
	err = s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:  xhttp.MethodPost,
		URL:     s.baseURL + loginPath,
		Headers: s.baseHeaders(),
		Body: loginRequest{
			ClientCode: s.creds.ClientCode,
			Password:   s.creds.PIN,
			TOTP:       code,
		},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if !resp.Status || resp.Data.JWTToken == "" {
		return "", fmt.Errorf("login rejected: %s", resp.Message)
	}

	s.token = resp.Data.JWTToken
	s.log.Info("broker session established", logger.String("client", s.creds.ClientCode))
	return s.token, nil
}

// baseHeaders returns the SmartAPI identification headers sent on every
// request.
func (s *Session) baseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":     "application/json",
		"Accept":           "application/json",
		"X-UserType":       "USER",
		"X-SourceID":       "WEB",
		"X-ClientLocalIP":  s.creds.LocalIP,
		"X-ClientPublicIP": s.creds.PublicIP,
		"X-MACAddress":     s.creds.MACAddress,
		"X-PrivateKey":     s.creds.APIKey,
	}
}

// authHeaders returns the base headers plus the bearer token.
func (s *Session) authHeaders(token string) map[string]string {
	h := s.baseHeaders()
	h["Authorization"] = "Bearer " + token
	return h
}
