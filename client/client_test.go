package client

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

const statementXML = `<FlexQueryResponse queryName="test" type="AF">
<FlexStatements count="0"></FlexStatements>
</FlexQueryResponse>`

func sendRequestOK(refCode string) string {
	return fmt.Sprintf(`<FlexStatementResponse timestamp="28 August, 2026 10:15 AM EDT">
<Status>Success</Status>
<ReferenceCode>%s</ReferenceCode>
<Url></Url>
</FlexStatementResponse>`, refCode)
}

func errorResponse(code string) string {
	return fmt.Sprintf(`<FlexStatementResponse timestamp="28 August, 2026 10:15 AM EDT">
<Status>Fail</Status>
<ErrorCode>%s</ErrorCode>
<ErrorMessage>%s</ErrorMessage>
</FlexStatementResponse>`, code, errorMessages[code])
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New("token123", Options{
		BaseURL:      srv.URL + "/FlexStatementService",
		PollInterval: time.Millisecond,
		MaxPolls:     3,
	})
}

func TestDownload(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Java", r.Header.Get("User-Agent"))
		assert.Equal(t, "3", r.URL.Query().Get("v"))
		assert.Equal(t, "token123", r.URL.Query().Get("t"))

		switch r.URL.Path {
		case "/FlexStatementService.SendRequest":
			assert.Equal(t, "q123", r.URL.Query().Get("q"))
			fmt.Fprint(w, sendRequestOK("REF1"))
		case "/FlexStatementService.GetStatement":
			assert.Equal(t, "REF1", r.URL.Query().Get("q"))
			fmt.Fprint(w, statementXML)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})

	data, err := c.Download(context.Background(), "q123")
	assert.NoError(t, err)
	assert.Equal(t, statementXML, string(data))
}

func TestDownloadRetriesWhileGenerating(t *testing.T) {
	t.Parallel()

	polls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/FlexStatementService.SendRequest" {
			fmt.Fprint(w, sendRequestOK("REF1"))
			return
		}
		polls++
		if polls < 3 {
			fmt.Fprint(w, errorResponse("1019"))
			return
		}
		fmt.Fprint(w, statementXML)
	})

	data, err := c.Download(context.Background(), "q123")
	assert.NoError(t, err)
	assert.Equal(t, statementXML, string(data))
	assert.Equal(t, 3, polls)
}

func TestDownloadPollBudgetExhausted(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/FlexStatementService.SendRequest" {
			fmt.Fprint(w, sendRequestOK("REF1"))
			return
		}
		fmt.Fprint(w, errorResponse("1009"))
	})

	_, err := c.Download(context.Background(), "q123")
	var gte *GenerationTimeoutError
	assert.ErrorAs(t, err, &gte)
	assert.Equal(t, 3, gte.Tries)
}

func TestDownloadFatalErrorCode(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, errorResponse("1012"))
	})

	_, err := c.Download(context.Background(), "q123")
	var rce *ResponseCodeError
	assert.ErrorAs(t, err, &rce)
	assert.Equal(t, "1012", rce.Code)
	assert.Contains(t, rce.Message, "expired")
}

func TestDownloadBadResponse(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html>maintenance</html>")
	})

	_, err := c.Download(context.Background(), "q123")
	var bre *BadResponseError
	assert.ErrorAs(t, err, &bre)
}

func TestDownloadContextCancelled(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/FlexStatementService.SendRequest" {
			fmt.Fprint(w, sendRequestOK("REF1"))
			return
		}
		fmt.Fprint(w, errorResponse("1019"))
	})
	c.pollInterval = time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := c.Download(ctx, "q123")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRequestStatementTimestamp(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, sendRequestOK("REF9"))
	})

	access, err := c.RequestStatement(context.Background(), "q123")
	assert.NoError(t, err)
	assert.Equal(t, "REF9", access.ReferenceCode)

	want := time.Date(2026, 8, 28, 10, 15, 0, 0, time.FixedZone("", -4*3600))
	assert.True(t, access.Timestamp.Equal(want))
}

func TestParseTimestampUnknownZone(t *testing.T) {
	t.Parallel()

	assert.True(t, parseTimestamp("28 August, 2026 10:15 AM CET").IsZero())
	assert.True(t, parseTimestamp("").IsZero())
}
