// Package client downloads Flex query statements from the Flex Web Service
// without logging into Account Management.
//
// Retrieval is a two-phase protocol: SendRequest returns a reference code
// for a statement being generated, then GetStatement is polled until the
// document is ready or the retry budget runs out. The client hands back the
// complete raw byte stream; parsing is package parser's job.
package client

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the production Flex Web Service location. The
// ".SendRequest" and ".GetStatement" operations are appended to it.
const DefaultBaseURL = "https://gdcdyn.interactivebrokers.com/Universal/servlet/FlexStatementService"

const (
	defaultPollInterval = 5 * time.Second
	throttledInterval   = 10 * time.Second
	defaultMaxPolls     = 5
)

// errorMessages maps the service's numeric error codes to their documented
// text, used when a response carries a code without a message.
var errorMessages = map[string]string{
	"1003": "Statement is not available.",
	"1004": "Statement is incomplete at this time. Please try again shortly.",
	"1005": "Settlement data is not ready at this time. Please try again shortly.",
	"1006": "FIFO P/L data is not ready at this time. Please try again shortly.",
	"1007": "MTM P/L data is not ready at this time. Please try again shortly.",
	"1008": "MTM and FIFO P/L data is not ready at this time. Please try again shortly.",
	"1009": "The server is under heavy load. Statement could not be generated at this time. Please try again shortly.",
	"1010": "Legacy Flex Queries are no longer supported. Please convert over to Activity Flex.",
	"1011": "Service account is inactive.",
	"1012": "Token has expired.",
	"1013": "IP restriction.",
	"1014": "Query is invalid.",
	"1015": "Token is invalid.",
	"1016": "Account in invalid.",
	"1017": "Reference code is invalid.",
	"1018": "Too many requests have been made from this token. Please try again shortly.",
	"1019": "Statement generation in progress. Please try again shortly.",
	"1020": "Invalid request or unable to validate request.",
	"1021": "Statement could not be retrieved at this time. Please try again shortly.",
}

// serverBusy codes mean the statement is still being generated; they are
// retried rather than surfaced.
var serverBusy = map[string]bool{"1009": true, "1019": true}

// clientThrottled codes mean we asked too often; retried with a longer wait.
var clientThrottled = map[string]bool{"1018": true}

// ResponseCodeError is a non-retryable error response from the service.
type ResponseCodeError struct {
	Code    string
	Message string
}

func (e *ResponseCodeError) Error() string {
	return fmt.Sprintf("flex web service: code=%s: %s", e.Code, e.Message)
}

// BadResponseError is a response that could not be understood as either a
// statement or a service status.
type BadResponseError struct {
	Body []byte
}

func (e *BadResponseError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("flex web service: unintelligible response: %q", body)
}

// GenerationTimeoutError means the service kept reporting the statement as
// in progress past the poll budget.
type GenerationTimeoutError struct {
	Tries int
}

func (e *GenerationTimeoutError) Error() string {
	return fmt.Sprintf("flex web service: statement not ready after %d tries", e.Tries)
}

// StatementAccess is a successful SendRequest response: the handle used to
// fetch the generated statement.
type StatementAccess struct {
	Timestamp     time.Time
	ReferenceCode string
	URL           string
}

// Options configure a Client; the zero value selects production defaults.
type Options struct {
	BaseURL      string
	HTTPClient   *http.Client
	PollInterval time.Duration
	MaxPolls     int
}

// Client is a Flex Web Service client. It is safe for concurrent use.
type Client struct {
	baseURL      string
	token        string
	httpClient   *http.Client
	pollInterval time.Duration
	maxPolls     int
}

// New creates a client for the given access token
// (Reports > Settings > FlexWeb Service).
func New(token string, opts Options) *Client {
	c := &Client{
		baseURL:      opts.BaseURL,
		token:        token,
		httpClient:   opts.HTTPClient,
		pollInterval: opts.PollInterval,
		maxPolls:     opts.MaxPolls,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if c.pollInterval <= 0 {
		c.pollInterval = defaultPollInterval
	}
	if c.maxPolls <= 0 {
		c.maxPolls = defaultMaxPolls
	}
	return c
}

// Download runs the full two-phase protocol for queryID and returns the
// complete raw statement bytes.
func (c *Client) Download(ctx context.Context, queryID string) ([]byte, error) {
	access, err := c.RequestStatement(ctx, queryID)
	if err != nil {
		return nil, err
	}

	for tries := 1; ; tries++ {
		data, retryAfter, err := c.fetchStatement(ctx, access)
		if err != nil {
			return nil, err
		}
		if data != nil {
			return data, nil
		}
		if tries >= c.maxPolls {
			return nil, &GenerationTimeoutError{Tries: tries}
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryAfter):
		}
	}
}

// RequestStatement performs phase one: ask the service to generate the
// statement for queryID.
func (c *Client) RequestStatement(ctx context.Context, queryID string) (StatementAccess, error) {
	body, err := c.submit(ctx, c.baseURL+".SendRequest", queryID)
	if err != nil {
		return StatementAccess{}, err
	}
	resp, err := parseStatementResponse(body)
	if err != nil {
		return StatementAccess{}, err
	}
	if resp.Status != "Success" {
		return StatementAccess{}, codeError(resp)
	}
	return StatementAccess{
		Timestamp:     resp.timestamp,
		ReferenceCode: resp.ReferenceCode,
		URL:           resp.URL,
	}, nil
}

// fetchStatement performs one phase-two attempt. It returns the statement
// bytes when ready, or a retry delay when the service says to try again.
func (c *Client) fetchStatement(ctx context.Context, access StatementAccess) ([]byte, time.Duration, error) {
	u := access.URL
	if u == "" {
		u = c.baseURL + ".GetStatement"
	}
	body, err := c.submit(ctx, u, access.ReferenceCode)
	if err != nil {
		return nil, 0, err
	}

	// Statements can be tens of megabytes; detect the payload without a
	// full parse.
	switch {
	case bytes.Contains(body, []byte("FlexQueryResponse")):
		return body, 0, nil
	case bytes.Contains(body, []byte("FlexStatementResponse")):
		resp, err := parseStatementResponse(body)
		if err != nil {
			return nil, 0, err
		}
		switch {
		case serverBusy[resp.ErrorCode]:
			return nil, c.pollInterval, nil
		case clientThrottled[resp.ErrorCode]:
			return nil, throttledInterval, nil
		}
		return nil, 0, codeError(resp)
	}
	return nil, 0, &BadResponseError{Body: body}
}

// submit issues one GET with the protocol's query parameters.
func (c *Client) submit(ctx context.Context, rawURL, query string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	params := url.Values{}
	params.Set("v", "3")
	params.Set("t", c.token)
	params.Set("q", query)
	req.URL.RawQuery = params.Encode()
	// The service rejects requests from unfamiliar user agents.
	req.Header.Set("User-Agent", "Java")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("flex web service request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("flex web service: HTTP %d", resp.StatusCode)
	}
	return body, nil
}

type statementResponse struct {
	XMLName       xml.Name `xml:"FlexStatementResponse"`
	TimestampRaw  string   `xml:"timestamp,attr"`
	Status        string   `xml:"Status"`
	ReferenceCode string   `xml:"ReferenceCode"`
	URL           string   `xml:"Url"`
	ErrorCode     string   `xml:"ErrorCode"`
	ErrorMessage  string   `xml:"ErrorMessage"`

	timestamp time.Time
}

func parseStatementResponse(body []byte) (*statementResponse, error) {
	var resp statementResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, &BadResponseError{Body: body}
	}
	switch resp.Status {
	case "Success", "Fail", "Warn":
	default:
		return nil, &BadResponseError{Body: body}
	}
	resp.timestamp = parseTimestamp(resp.TimestampRaw)
	return &resp, nil
}

// parseTimestamp reads the service's "28 August, 2026 10:15 AM EDT" format.
// The zone abbreviation is one of the US Eastern pair; anything else leaves
// the zero time rather than failing retrieval over a cosmetic field.
func parseTimestamp(raw string) time.Time {
	offsets := map[string]string{"EST": "-0500", "EDT": "-0400"}
	for abbrev, offset := range offsets {
		if strings.HasSuffix(raw, abbrev) {
			t, err := time.Parse("2 January, 2006 3:04 PM -0700", strings.TrimSuffix(raw, abbrev)+offset)
			if err != nil {
				return time.Time{}
			}
			return t
		}
	}
	return time.Time{}
}

func codeError(resp *statementResponse) error {
	msg := resp.ErrorMessage
	if msg == "" {
		msg = errorMessages[resp.ErrorCode]
	}
	return &ResponseCodeError{Code: resp.ErrorCode, Message: msg}
}
