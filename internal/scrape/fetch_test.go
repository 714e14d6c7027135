package scrape

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"f1jobs/internal/domain"

	"github.com/stretchr/testify/require"
)

type seenRequest struct {
	method      string
	userAgent   string
	contentType string
	body        string
}

func recordingServer(t *testing.T, status int, reply string) (*httptest.Server, *seenRequest) {
	t.Helper()
	seen := &seenRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*seen = seenRequest{
			method:      r.Method,
			userAgent:   r.Header.Get("User-Agent"),
			contentType: r.Header.Get("Content-Type"),
			body:        string(b),
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestFetchRequestProfiles(t *testing.T) {
	f := NewHTTPFetcher(5*time.Second, "Mozilla/5.0")
	ctx := context.Background()

	t.Run("plain get", func(t *testing.T) {
		srv, seen := recordingServer(t, http.StatusOK, "<html>ok</html>")
		res := f.Fetch(ctx, domain.TeamEntry{ID: "Mclaren", SourceURL: srv.URL, Profile: domain.PlainGet})
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.Equal(t, "<html>ok</html>", res.RawContent)
		require.Equal(t, "Mclaren", res.TeamID)
		require.Equal(t, http.MethodGet, seen.method)
		require.NotEqual(t, "Mozilla/5.0", seen.userAgent)
	})

	t.Run("get with user agent", func(t *testing.T) {
		srv, seen := recordingServer(t, http.StatusOK, "")
		f.Fetch(ctx, domain.TeamEntry{ID: "Williams", SourceURL: srv.URL, Profile: domain.GetWithUserAgent})
		require.Equal(t, http.MethodGet, seen.method)
		require.Equal(t, "Mozilla/5.0", seen.userAgent)
	})

	t.Run("post json without body", func(t *testing.T) {
		srv, seen := recordingServer(t, http.StatusOK, `{}`)
		f.Fetch(ctx, domain.TeamEntry{ID: "Alpine", SourceURL: srv.URL, Profile: domain.PostJSON})
		require.Equal(t, http.MethodPost, seen.method)
		require.Equal(t, "application/json", seen.contentType)
		require.Empty(t, seen.body)
	})

	t.Run("post json with body", func(t *testing.T) {
		srv, seen := recordingServer(t, http.StatusOK, `{}`)
		f.Fetch(ctx, domain.TeamEntry{ID: "Alpine", SourceURL: srv.URL, Profile: domain.PostJSON, Body: `{"limit":20}`})
		require.Equal(t, `{"limit":20}`, seen.body)
	})
}

func TestFetchNon200IsNotAnError(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusForbidden, "denied")
	res := NewHTTPFetcher(5*time.Second, "Mozilla/5.0").Fetch(context.Background(), domain.TeamEntry{ID: "Williams", SourceURL: srv.URL})
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	require.Equal(t, "denied", res.RawContent)
	require.False(t, res.OK())
}

func TestFetchTransportFailureIsStatusZero(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK, "")
	url := srv.URL
	srv.Close()

	res := NewHTTPFetcher(time.Second, "Mozilla/5.0").Fetch(context.Background(), domain.TeamEntry{ID: "Mercedes", SourceURL: url})
	require.Equal(t, 0, res.StatusCode)
	require.Empty(t, res.RawContent)
}

func TestFetchVerifiesCertificatesUnlessTeamOptsOut(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "secure")
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5*time.Second, "Mozilla/5.0")
	ctx := context.Background()

	verified := f.Fetch(ctx, domain.TeamEntry{ID: "Ferrari", SourceURL: srv.URL})
	require.Equal(t, 0, verified.StatusCode)

	skipped := f.Fetch(ctx, domain.TeamEntry{ID: "Ferrari", SourceURL: srv.URL, InsecureTLS: true})
	require.Equal(t, http.StatusOK, skipped.StatusCode)
	require.Equal(t, "secure", skipped.RawContent)
}

func TestFetchTruncatedBodyIsStatusZero(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			t.Error("response writer cannot hijack")
			return
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			t.Error(err)
			return
		}
		defer conn.Close()
		_, _ = io.WriteString(conn, "HTTP/1.1 200 OK\r\nContent-Type: text/html\r\nContent-Length: 100000\r\n\r\n<html><li class=\"job\">Role X</li>")
	}))
	defer srv.Close()

	entry := domain.TeamEntry{ID: "Mclaren", SourceURL: srv.URL, Extractor: staticExtractor([]string{"Title"}, domain.JobRow{"Role X"})}
	res := NewHTTPFetcher(5*time.Second, "Mozilla/5.0").Fetch(context.Background(), entry)
	require.Equal(t, 0, res.StatusCode)
	require.Empty(t, res.RawContent)

	_, ok, err := Dispatch(entry, res)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestFetchOversizedBodyIsStatusZero(t *testing.T) {
	srv, _ := recordingServer(t, http.StatusOK, "0123456789")
	ctx := context.Background()
	entry := domain.TeamEntry{ID: "Haas", SourceURL: srv.URL}

	f := NewHTTPFetcher(5*time.Second, "Mozilla/5.0")
	f.maxBody = 9
	res := f.Fetch(ctx, entry)
	require.Equal(t, 0, res.StatusCode)
	require.Empty(t, res.RawContent)

	f.maxBody = 10
	res = f.Fetch(ctx, entry)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "0123456789", res.RawContent)
}
