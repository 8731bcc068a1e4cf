package hcaptcha

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/zakerai/zaker-web/internal/pkg/env"
)

const DefaultEndpoint = "https://hcaptcha.com/siteverify"

var ErrEmptyToken = errors.New("hCaptcha token is empty")

type Response struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verifier checks hCaptcha tokens. A nil *Verifier accepts everything so the
// check can be switched off by leaving HCAPTCHA_SECRET empty.
type Verifier struct {
	SiteKey  string
	secret   string
	endpoint string
	http     *http.Client
}

func New(siteKey, secret, endpoint string) *Verifier {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Verifier{
		SiteKey:  siteKey,
		secret:   secret,
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

// NewFromEnv returns nil when no secret is configured.
func NewFromEnv() *Verifier {
	secret := env.GetEnv("HCAPTCHA_SECRET", "")
	if secret == "" {
		return nil
	}
	return New(env.GetEnv("HCAPTCHA_SITEKEY", ""), secret, "")
}

func (v *Verifier) Enabled() bool {
	return v != nil
}

func (v *Verifier) Verify(ctx context.Context, token string) error {
	if v == nil {
		return nil
	}
	if token == "" {
		return ErrEmptyToken
	}

	formData := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(formData.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to hCaptcha API: %w", err)
	}
	defer resp.Body.Close()

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return fmt.Errorf("failed to decode hCaptcha API response: %w", err)
	}

	if !response.Success {
		errorMsg := "hCaptcha validation failed"
		if len(response.ErrorCodes) > 0 {
			errorMsg = errorMsg + ": " + strings.Join(response.ErrorCodes, ", ")
		}
		return errors.New(errorMsg)
	}
	return nil
}
