package capsolver

import (
	"net/http"
	"time"
)

const (
	DEFAULT_API_URL       = "https://api.capsolver.com"
	DEFAULT_POLL_INTERVAL = time.Second * 3
	DEFAULT_MAX_ATTEMPTS  = 40

	TASK_TYPE           = "AntiAwsWafTask"
	TASK_TYPE_PROXYLESS = "AntiAwsWafTaskProxyLess"
)

type Client struct {
	// Service API key
	apiKey string

	// Service base URL
	apiURL string

	// Delay before every result poll
	pollInterval time.Duration

	// How many polls before giving up
	maxAttempts int

	httpClient *http.Client
}

func New(apiKey string) *Client {
	return &Client{
		apiKey:       apiKey,
		apiURL:       DEFAULT_API_URL,
		pollInterval: DEFAULT_POLL_INTERVAL,
		maxAttempts:  DEFAULT_MAX_ATTEMPTS,
		httpClient:   http.DefaultClient,
	}
}

func (c *Client) SetApiURL(url string) *Client {
	c.apiURL = url
	return c
}

func (c *Client) SetPollPolicy(interval time.Duration, maxAttempts int) *Client {
	if interval > 0 {
		c.pollInterval = interval
	}
	if maxAttempts > 0 {
		c.maxAttempts = maxAttempts
	}
	return c
}

func (c *Client) SetHttpClient(client *http.Client) *Client {
	c.httpClient = client
	return c
}
