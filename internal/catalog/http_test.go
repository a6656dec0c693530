package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
	"time"
)

func TestParseBaseURL_Normalizes(t *testing.T) {
	u, err := parseBaseURL("example.com:8080")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "example.com:8080" {
		t.Fatalf("url = %q, want http://example.com:8080", u.String())
	}

	u, err = parseBaseURL("https://example.com/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}

	if _, err := parseBaseURL("  "); err == nil {
		t.Fatal("parseBaseURL(blank) returned nil error")
	}
}

func TestHTTP_PredictEncodesQuery(t *testing.T) {
	t.Parallel()

	var gotQuery url.Values
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != predictionsPath {
			http.NotFound(w, r)
			return
		}
		gotQuery = r.URL.Query()
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"predictions":["Sintel","Sintel 2","Sintel 3"]}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewHTTP(server.URL)
	if err != nil {
		t.Fatalf("NewHTTP returned error: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	got, err := c.Predict(ctx, " sin ", 2)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if want := []string{"Sintel", "Sintel 2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Predict = %v, want %v", got, want)
	}
	if gotQuery.Get("q") != "sin" || gotQuery.Get("limit") != "2" {
		t.Fatalf("query = %v, want q=sin limit=2", gotQuery)
	}
	if gotUserAgent != defaultUserAgent {
		t.Fatalf("User-Agent = %q, want %q", gotUserAgent, defaultUserAgent)
	}
}

func TestHTTP_PredictErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{}`},
		{"invalid json", http.StatusOK, `{"predictions":`},
		{"missing list", http.StatusOK, `{"titles":[]}`},
		{"non-string entry", http.StatusOK, `{"predictions":[1]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c, err := NewHTTP(server.URL)
			if err != nil {
				t.Fatalf("NewHTTP returned error: %v", err)
			}
			if _, err := c.Predict(context.Background(), "x", 3); err == nil {
				t.Fatal("Predict returned nil error")
			}
		})
	}
}

func TestHTTP_PredictEmptyQuery(t *testing.T) {
	c, err := NewHTTP("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewHTTP returned error: %v", err)
	}
	if _, err := c.Predict(context.Background(), "", 3); !errors.Is(err, ErrEmptyQuery) {
		t.Fatalf("Predict = %v, want ErrEmptyQuery", err)
	}
}
