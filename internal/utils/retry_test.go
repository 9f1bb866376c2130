package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func fastRetryConfig(maxRetries int) *RetryConfig {
	return &RetryConfig{
		MaxRetries:           maxRetries,
		InitialDelay:         10 * time.Millisecond,
		MaxDelay:             100 * time.Millisecond,
		BackoffMultiplier:    2.0,
		RetryableStatusCodes: []int{http.StatusInternalServerError},
	}
}

func TestRetryableHTTPClient_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}))
	defer server.Close()

	retryClient := NewRetryableHTTPClient(server.Client(), DefaultRetryConfig())

	req, err := http.NewRequest("GET", server.URL, nil)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	resp, err := retryClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
}

func TestRetryableHTTPClient_RetryOn500(t *testing.T) {
	var requestCount int32

	// 500 twice, then 200
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&requestCount, 1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	var retries []int
	config := fastRetryConfig(3)
	config.OnRetry = func(attempt int, err error) {
		retries = append(retries, attempt)
	}
	retryClient := NewRetryableHTTPClient(server.Client(), config)

	req, _ := http.NewRequest("GET", server.URL, nil)

	start := time.Now()
	resp, err := retryClient.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&requestCount); got != 3 {
		t.Errorf("Expected 3 requests, got %d", got)
	}
	if len(retries) != 2 || retries[0] != 1 || retries[1] != 2 {
		t.Errorf("Expected OnRetry for attempts [1 2], got %v", retries)
	}
	// 10ms + 20ms of backoff
	if elapsed < 25*time.Millisecond {
		t.Errorf("Expected at least 25ms delay due to retries, got %v", elapsed)
	}
}

func TestRetryableHTTPClient_FailAfterMaxRetries(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	retryClient := NewRetryableHTTPClient(server.Client(), fastRetryConfig(2))

	req, _ := http.NewRequest("GET", server.URL, nil)

	resp, err := retryClient.Do(req)
	if err == nil {
		t.Fatal("Expected error after max retries")
	}
	if resp != nil {
		t.Errorf("Expected nil response on failure, got status %d", resp.StatusCode)
	}

	// 1 initial request + 2 retries
	if got := atomic.LoadInt32(&requestCount); got != 3 {
		t.Errorf("Expected 3 requests (1 initial + 2 retries), got %d", got)
	}
	if !strings.HasPrefix(err.Error(), "after 2 retries") {
		t.Errorf("Expected error message to start with %q, got %q", "after 2 retries", err.Error())
	}
}

func TestRetryableHTTPClient_NonRetryableStatusReturnsResponse(t *testing.T) {
	var requestCount int32

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requestCount, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	retryClient := NewRetryableHTTPClient(server.Client(), fastRetryConfig(3))

	req, _ := http.NewRequest("GET", server.URL, nil)
	resp, err := retryClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", resp.StatusCode)
	}
	if got := atomic.LoadInt32(&requestCount); got != 1 {
		t.Errorf("Expected a single request, got %d", got)
	}
}

type failingDoer struct {
	calls int
}

func (d *failingDoer) Do(*http.Request) (*http.Response, error) {
	d.calls++
	return nil, errors.New("connection refused")
}

func TestRetryableHTTPClient_ContextCancellation(t *testing.T) {
	doer := &failingDoer{}
	config := fastRetryConfig(10)
	config.InitialDelay = 20 * time.Millisecond
	config.RetryableErrors = func(error) bool { return true }
	retryClient := NewRetryableHTTPClient(doer, config)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	req, _ := http.NewRequestWithContext(ctx, "GET", "http://example.invalid", nil)
	_, err := retryClient.Do(req)

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected context deadline exceeded, got %v", err)
	}
	if doer.calls >= 11 {
		t.Errorf("Expected the deadline to cut retries short, got %d calls", doer.calls)
	}
}

func TestRetryableHTTPClient_TransportErrorNotRetried(t *testing.T) {
	doer := &failingDoer{}
	config := fastRetryConfig(3)
	config.RetryableErrors = nil
	retryClient := NewRetryableHTTPClient(doer, config)

	req, _ := http.NewRequest("GET", "http://example.invalid", nil)
	if _, err := retryClient.Do(req); err == nil {
		t.Fatal("Expected transport error")
	}
	if doer.calls != 1 {
		t.Errorf("Expected one call when errors are not retryable, got %d", doer.calls)
	}
}
