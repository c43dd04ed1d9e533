package awswaf

import "time"

const (
	DEFAULT_USER_AGENT = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	DEFAULT_NAVIGATION_TIMEOUT = 30
	DEFAULT_POLL_INTERVAL      = time.Second * 3
	DEFAULT_MAX_POLL_ATTEMPTS  = 40
)

// Model of a single pass through the WAF
type Model struct {
	// Page we want to open
	TargetURL string

	// Solving service API key
	ClientKey string

	// Solving service base URL. Empty - default service
	ServiceURL string

	// Proxy descriptor "user:pass@host:port" or "host:port". Empty - direct connection
	Proxy string

	// User agent for target site requests
	UserAgent string

	// Use Chrome instead of Http client
	Chrome bool

	// Chrome visible
	Visible bool

	// Navigation timeout, seconds. 0 - default
	NavigationTimeout int

	// Delay between solving service polls. 0 - default
	PollInterval time.Duration

	// How many polls before giving up. 0 - default
	MaxPollAttempts int
}

func (m *Model) withDefaults() *Model {
	if m.UserAgent == "" {
		m.UserAgent = DEFAULT_USER_AGENT
	}
	if m.NavigationTimeout <= 0 {
		m.NavigationTimeout = DEFAULT_NAVIGATION_TIMEOUT
	}
	if m.PollInterval <= 0 {
		m.PollInterval = DEFAULT_POLL_INTERVAL
	}
	if m.MaxPollAttempts <= 0 {
		m.MaxPollAttempts = DEFAULT_MAX_POLL_ATTEMPTS
	}
	return m
}

func (m *Model) navigationTimeout() time.Duration {
	return time.Second * time.Duration(m.NavigationTimeout)
}
