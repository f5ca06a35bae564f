package cli

// client.go is a small HTTP client for the person API.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/callibrity/person-workshop/internal/problem"
	"github.com/callibrity/person-workshop/internal/server/handlers"
	"github.com/callibrity/person-workshop/internal/service"
)

// APIError is a problem response returned by the server.
type APIError struct {
	Problem problem.ProblemDetail
}

func (e *APIError) Error() string {
	if e.Problem.RequestID != "" {
		return fmt.Sprintf("%d %s: %s (request id %s)", e.Problem.Status, e.Problem.Title, e.Problem.Detail, e.Problem.RequestID)
	}
	return fmt.Sprintf("%d %s: %s", e.Problem.Status, e.Problem.Title, e.Problem.Detail)
}

// Client calls the person API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL. An empty token sends no
// Authorization header.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) CreatePerson(ctx context.Context, firstName, lastName string) (service.PersonDto, error) {
	var dto service.PersonDto
	err := c.do(ctx, http.MethodPost, "/api/persons", handlers.PersonRequest{FirstName: firstName, LastName: lastName}, &dto)
	return dto, err
}

func (c *Client) RetrievePerson(ctx context.Context, id string) (service.PersonDto, error) {
	var dto service.PersonDto
	err := c.do(ctx, http.MethodGet, "/api/persons/"+url.PathEscape(id), nil, &dto)
	return dto, err
}

func (c *Client) UpdatePerson(ctx context.Context, id, firstName, lastName string) (service.PersonDto, error) {
	var dto service.PersonDto
	err := c.do(ctx, http.MethodPut, "/api/persons/"+url.PathEscape(id), handlers.PersonRequest{FirstName: firstName, LastName: lastName}, &dto)
	return dto, err
}

func (c *Client) DeletePerson(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/persons/"+url.PathEscape(id), nil, nil)
}

// ListPersons fetches one page. Zero values in spec are left to the server defaults.
func (c *Client) ListPersons(ctx context.Context, spec service.PageSpec) (handlers.PersonPage, error) {
	query := url.Values{}
	if spec.Page != 0 {
		query.Set("page", strconv.Itoa(spec.Page))
	}
	if spec.Size != 0 {
		query.Set("size", strconv.Itoa(spec.Size))
	}
	if spec.SortBy != "" {
		query.Set("sortBy", spec.SortBy)
	}
	if spec.SortDir != "" {
		query.Set("sortDir", spec.SortDir)
	}

	path := "/api/persons"
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page handlers.PersonPage
	err := c.do(ctx, http.MethodGet, path, nil, &page)
	return page, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/problem+json")
	if body != nil {
		req.Header.Set("Content-Type", problem.ContentTypeJSON)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeProblem(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeProblem(resp *http.Response) error {
	var p problem.ProblemDetail
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if p.Status == 0 {
		p.Status = resp.StatusCode
		p.Title = http.StatusText(resp.StatusCode)
	}
	return &APIError{Problem: p}
}
