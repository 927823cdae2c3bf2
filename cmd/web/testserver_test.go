package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/thejury/internal/ai"
	"github.com/myrjola/thejury/internal/errors"
	"github.com/myrjola/thejury/internal/logging"
	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitForReady calls the specified endpoint until it gets a HTTP 200 Success
// response or until the context is cancelled or the 1-second timeout is reached.
func waitForReady(ctx context.Context, endpoint string) error {
	timeout := 1 * time.Second
	client := http.Client{}
	startTime := time.Now()
	var (
		err  error
		req  *http.Request
		resp *http.Response
	)
	for {
		if req, err = http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			endpoint,
			nil,
		); err != nil {
			return errors.Wrap(err, "create request")
		}

		if resp, err = client.Do(req); err == nil {
			if resp.StatusCode == http.StatusOK {
				if err = resp.Body.Close(); err != nil {
					return errors.Wrap(err, "close response body")
				}
				return nil
			}
			if err = resp.Body.Close(); err != nil {
				return errors.Wrap(err, "close response body")
			}
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if time.Since(startTime) >= timeout {
				return errors.New("timeout waiting for endpoint to be ready")
			}
			time.Sleep(250 * time.Millisecond)
		}
	}
}

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "THEJURY_ADDR":
		return "localhost:0", true
	case "THEJURY_SQLITE_URL":
		return ":memory:", true
	case "THEJURY_PPROF_PORT":
		// Every test server needs its own pprof listener.
		return ":0", true
	case "OPENAI_API_KEY":
		return "test-key", true
	default:
		return "", false
	}
}

// stubAI is a canned remote model backend for handler tests. The zero value
// answers every call successfully with empty payloads.
type stubAI struct {
	raw      []byte
	rawErr   error
	reply    ai.ChatReply
	replyErr error
	audio    []byte
	audioErr error
}

func (s *stubAI) GenerateAnalysis(_ context.Context, _ ai.GenerationRequest) ([]byte, error) {
	return s.raw, s.rawErr
}

func (s *stubAI) ChatCompletion(_ context.Context, _ ai.ChatRequest) (ai.ChatReply, error) {
	return s.reply, s.replyErr
}

func (s *stubAI) Speak(_ context.Context, _ string, _ openai.SpeechVoice, _ float64) ([]byte, error) {
	return s.audio, s.audioErr
}

type testServer struct {
	url    string
	client *http.Client
}

// startTestServer starts the test server, waits for it to be ready, and returns a client for testing.
// A nil backend lets the server wire the real remote client.
func startTestServer(t *testing.T, w io.Writer, lookupEnv func(string) (string, bool), backend aiBackend) testServer {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())

	// We need to grab the dynamically allocated port from the log output.
	addrCh := make(chan string, 1)
	logger := slog.New(logging.NewContextHandler(slog.NewTextHandler(w, &slog.HandlerOptions{ //nolint:exhaustruct
		AddSource: false,
		Level:     slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == "Addr" {
				addrCh <- a.Value.String()
			}
			return a
		},
	})))

	// Start the server and wait for it to be ready.
	go func() {
		if err := run(ctx, logger, lookupEnv, backend); err != nil {
			cancel()
			assert.NoError(t, err)
		}
	}()
	select {
	case <-ctx.Done():
		t.Fatal("server failed to start")
		return testServer{} //nolint:exhaustruct
	case addr := <-addrCh:
		// swap 127.0.0.1 with localhost to make secure cookies work in [cookiejar.Jar]
		port := strings.Split(addr, ":")[1]
		serverURL := fmt.Sprintf("http://localhost:%s", port)
		if err := waitForReady(ctx, fmt.Sprintf("%s/api/healthy", serverURL)); err != nil {
			require.NoError(t, err)
		}
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		return testServer{
			url:    serverURL,
			client: &http.Client{Jar: jar}, //nolint:exhaustruct
		}
	}
}

// getDocument fetches a page and parses it.
func (s testServer) getDocument(t *testing.T, path string) *goquery.Document {
	t.Helper()
	resp, err := s.client.Get(s.url + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// csrfToken scrapes the CSRF token from the first form on the page.
func csrfToken(t *testing.T, doc *goquery.Document) string {
	t.Helper()
	token, ok := doc.Find(`input[name="csrf_token"]`).First().Attr("value")
	require.True(t, ok, "page must carry a CSRF token")
	return token
}

// postForm submits an urlencoded form with the given CSRF token.
func (s testServer) postForm(t *testing.T, path, token string, form url.Values) *http.Response {
	t.Helper()
	form.Set("csrf_token", token)
	resp, err := s.client.PostForm(s.url+path, form)
	require.NoError(t, err)
	return resp
}
