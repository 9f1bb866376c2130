package utils

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"time"
)

// RetryConfig 配置重试参数
type RetryConfig struct {
	// MaxRetries 最大重试次数，不含首次请求
	MaxRetries int
	// InitialDelay 初始延迟时间
	InitialDelay time.Duration
	// MaxDelay 最大延迟时间
	MaxDelay time.Duration
	// BackoffMultiplier 退避倍数
	BackoffMultiplier float64
	// RetryableStatusCodes 需要重试的HTTP状态码
	RetryableStatusCodes []int
	// RetryableErrors 需要重试的错误类型判断函数
	RetryableErrors func(error) bool
	// OnRetry 每次重试前回调（可选）
	OnRetry func(attempt int, err error)
}

// DefaultRetryConfig 返回默认的重试配置：临时错误重试一次
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:        1,
		InitialDelay:      500 * time.Millisecond,
		MaxDelay:          5 * time.Second,
		BackoffMultiplier: 2.0,
		RetryableStatusCodes: []int{
			http.StatusRequestTimeout,      // 408
			http.StatusTooManyRequests,     // 429
			http.StatusInternalServerError, // 500
			http.StatusBadGateway,          // 502
			http.StatusServiceUnavailable,  // 503
			http.StatusGatewayTimeout,      // 504
		},
		RetryableErrors: func(err error) bool {
			return true
		},
	}
}

// RetryableHTTPClient 带指数退避的 HTTP 客户端
type RetryableHTTPClient struct {
	client Doer
	config *RetryConfig
}

// NewRetryableHTTPClient 创建可重试的 HTTP 客户端，config 为 nil 时使用默认配置
func NewRetryableHTTPClient(client Doer, config *RetryConfig) *RetryableHTTPClient {
	if client == nil {
		client = http.DefaultClient
	}
	if config == nil {
		config = DefaultRetryConfig()
	}
	return &RetryableHTTPClient{
		client: client,
		config: config,
	}
}

// Do 发送无请求体的请求，遇到临时错误时重试
// 请求的 context 限定整个过程，包括等待时间
func (r *RetryableHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	var lastErr error

	for attempt := 0; attempt <= r.config.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if attempt > 0 {
			if r.config.OnRetry != nil {
				r.config.OnRetry(attempt, lastErr)
			}
			if err := sleepContext(ctx, r.config.delay(attempt)); err != nil {
				return nil, err
			}
		}

		resp, err := r.client.Do(req.Clone(ctx))
		if err != nil {
			lastErr = err
			if !r.shouldRetryError(err) {
				break
			}
			continue
		}

		if !r.shouldRetryStatus(resp.StatusCode) {
			return resp, nil
		}

		resp.Body.Close()
		lastErr = fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return nil, fmt.Errorf("after %d retries: %w", r.config.MaxRetries, lastErr)
}

func (c *RetryConfig) delay(attempt int) time.Duration {
	delay := float64(c.InitialDelay) * math.Pow(c.BackoffMultiplier, float64(attempt-1))
	if delay > float64(c.MaxDelay) {
		delay = float64(c.MaxDelay)
	}
	return time.Duration(delay)
}

func (r *RetryableHTTPClient) shouldRetryStatus(statusCode int) bool {
	for _, code := range r.config.RetryableStatusCodes {
		if statusCode == code {
			return true
		}
	}
	return false
}

func (r *RetryableHTTPClient) shouldRetryError(err error) bool {
	if r.config.RetryableErrors == nil {
		return false
	}
	return r.config.RetryableErrors(err)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
