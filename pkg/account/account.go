// Package account talks to the vendor cloud API: account login and the
// device manifest carrying each appliance's encrypted local credential.
// The cloud is only needed once to obtain credentials; everything after
// that happens on the local network.
package account

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// Account errors.
var (
	// ErrLoginFailed is returned when the cloud API rejects the account
	// credentials.
	ErrLoginFailed = errors.New("login rejected by the cloud API")

	// ErrNotAuthenticated is returned by Devices before a successful
	// Login, or when the API no longer accepts the stored credentials.
	ErrNotAuthenticated = errors.New("not authenticated, call Login first")
)

const (
	// DefaultBaseURL is the vendor cloud API root.
	DefaultBaseURL = "https://api.cp.dyson.com"

	// DefaultCountry is used when Config.Country is empty.
	DefaultCountry = "US"

	defaultTimeout = 30 * time.Second
)

// Config configures a cloud API client.
type Config struct {
	// Email and Password are the cloud account credentials.
	Email    string
	Password string

	// Country is the account's two-letter country code. Defaults to
	// DefaultCountry.
	Country string

	// BaseURL overrides the cloud API root, mainly for tests. Defaults
	// to DefaultBaseURL.
	BaseURL string

	// HTTPClient overrides the HTTP client. When set, InsecureTLS is
	// ignored.
	HTTPClient *http.Client

	// InsecureTLS skips certificate verification. The vendor API has
	// served certificates absent from common system trust stores.
	InsecureTLS bool
}

// Client is a cloud API client. Login stores the basic-auth credentials
// the API issues; Devices uses them to fetch the manifest.
type Client struct {
	mu sync.RWMutex

	config Config
	http   *http.Client

	authAccount  string
	authPassword string
	logged       bool
}

// New creates a cloud API client. No network traffic happens until Login.
func New(config Config) *Client {
	if config.Country == "" {
		config.Country = DefaultCountry
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
		if config.InsecureTLS {
			httpClient.Transport = &http.Transport{
				TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
			}
		}
	}

	return &Client{
		config: config,
		http:   httpClient,
	}
}

// Login authenticates the account. On success the API's response
// credentials are stored and used as basic auth on later requests.
func (c *Client) Login(ctx context.Context) error {
	form := url.Values{
		"Email":    {c.config.Email},
		"Password": {c.config.Password},
	}
	endpoint := fmt.Sprintf("%s/v1/userregistration/authenticate?country=%s",
		c.config.BaseURL, url.QueryEscape(c.config.Country))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach the cloud API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	var auth struct {
		Account  string `json:"Account"`
		Password string `json:"Password"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}

	c.mu.Lock()
	c.authAccount = auth.Account
	c.authPassword = auth.Password
	c.logged = true
	c.mu.Unlock()
	return nil
}

// Authenticated reports whether a Login has succeeded.
func (c *Client) Authenticated() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.logged
}

// Devices fetches the account's device manifest.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	c.mu.RLock()
	account := c.authAccount
	password := c.authPassword
	logged := c.logged
	c.mu.RUnlock()

	if !logged {
		return nil, ErrNotAuthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.config.BaseURL+"/v1/provisioningservice/manifest", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build manifest request: %w", err)
	}
	req.SetBasicAuth(account, password)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach the cloud API: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, fmt.Errorf("%w: status %d", ErrNotAuthenticated, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("manifest request failed with status %d", resp.StatusCode)
	}

	var devices []Device
	if err := json.NewDecoder(resp.Body).Decode(&devices); err != nil {
		return nil, fmt.Errorf("failed to decode manifest: %w", err)
	}
	return devices, nil
}
