package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AZS-FEFU/camera/internal/model"
)

const basePath = "/api/v1/license-plates"

// Client представляет типизированный HTTP-клиент сервиса проверки номерных знаков.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ValidatePlate проверяет один номерной знак.
func (c *Client) ValidatePlate(ctx context.Context, plateNumber string) (model.PlateValidationResponse, error) {
	var result model.PlateValidationResponse

	payload, err := json.Marshal(model.PlateValidationRequest{PlateNumber: plateNumber})
	if err != nil {
		return result, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+basePath+"/validate", bytes.NewReader(payload))
	if err != nil {
		return result, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return result, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := decodeResponse(resp, &result); err != nil {
		return result, err
	}

	return result, nil
}

// ValidateBatch проверяет несколько номеров за один запрос.
// Сервис принимает не более десяти номеров.
func (c *Client) ValidateBatch(ctx context.Context, plates []string) ([]model.PlateValidationResponse, error) {
	q := url.Values{}
	q.Set("plates", strings.Join(plates, ","))

	var results []model.PlateValidationResponse
	if err := c.getJSON(ctx, basePath+"?"+q.Encode(), &results); err != nil {
		return nil, err
	}

	return results, nil
}

// Stats возвращает накопленные счётчики проверок.
func (c *Client) Stats(ctx context.Context) (model.ValidationStats, error) {
	var stats model.ValidationStats
	if err := c.getJSON(ctx, basePath+"/stats/validation", &stats); err != nil {
		return model.ValidationStats{}, err
	}

	return stats, nil
}

// Health проверяет доступность сервиса.
func (c *Client) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/health", &status); err != nil {
		return err
	}
	if status.Status != "healthy" {
		return fmt.Errorf("unexpected service status %q", status.Status)
	}

	return nil
}

// getJSON выполняет GET с повтором при сетевых ошибках.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	const maxRetries = 3

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(time.Duration(attempt) * 500 * time.Millisecond)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		err = decodeResponse(resp, out)
		resp.Body.Close()
		return err
	}

	return fmt.Errorf("failed to execute request after %d attempts: %w", maxRetries, lastErr)
}

func decodeResponse(resp *http.Response, out interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("plate service returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}
