package crmsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is a minimal API client. It is what the end-to-end tests drive, and
// doubles as the reference for how each endpoint is called.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	accessToken string
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SetAccessToken sets the bearer token attached to subsequent requests.
func (c *Client) SetAccessToken(token string) { c.accessToken = token }

// BaseURL returns the server address this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reqBody = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}
	if err := json.NewDecoder(resp.Body).Decode(apiErr); err != nil {
		apiErr.Code = CodeInternal
		apiErr.Message = resp.Status
	}
	return apiErr
}

func (c *Client) Register(ctx context.Context, req RegisterRequest) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/register", req, &out)
	return out, err
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &out)
	return out, err
}

func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenResponse, error) {
	var out TokenResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/refresh", RefreshRequest{RefreshToken: refreshToken}, &out)
	return out, err
}

func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", LogoutRequest{RefreshToken: refreshToken}, nil)
}

func (c *Client) Me(ctx context.Context) (UserResponse, error) {
	var out UserResponse
	err := c.do(ctx, http.MethodGet, "/v1/me", nil, &out)
	return out, err
}

func (c *Client) ChangePassword(ctx context.Context, req ChangePasswordRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/me/password", req, nil)
}

func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/password-reset", PasswordResetRequest{Email: email}, nil)
}

func (c *Client) ConfirmPasswordReset(ctx context.Context, req PasswordResetConfirmRequest) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/password-reset/confirm", req, nil)
}

func (c *Client) CreateClient(ctx context.Context, req CreateClientRequest) (ClientRecord, error) {
	var out ClientRecord
	err := c.do(ctx, http.MethodPost, "/v1/clients", req, &out)
	return out, err
}

func (c *Client) GetClient(ctx context.Context, id string) (ClientRecord, error) {
	var out ClientRecord
	err := c.do(ctx, http.MethodGet, "/v1/clients/"+id, nil, &out)
	return out, err
}

func (c *Client) ListClients(ctx context.Context, q ListClientsQuery) (ListClientsResponse, error) {
	values := url.Values{}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Location != "" {
		values.Set("location", q.Location)
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}

	path := "/v1/clients"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out ListClientsResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}

func (c *Client) UpdateClient(ctx context.Context, id string, req UpdateClientRequest) (ClientRecord, error) {
	var out ClientRecord
	err := c.do(ctx, http.MethodPatch, "/v1/clients/"+id, req, &out)
	return out, err
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/clients/"+id, nil, nil)
}

func (c *Client) Stats(ctx context.Context) (StatsResponse, error) {
	var out StatsResponse
	err := c.do(ctx, http.MethodGet, "/v1/clients/stats", nil, &out)
	return out, err
}

func (c *Client) NormalizeNames(ctx context.Context) (NormalizeReport, error) {
	var out NormalizeReport
	err := c.do(ctx, http.MethodPost, "/v1/clients/normalize", nil, &out)
	return out, err
}

// ImportClients uploads a CSV document as multipart form data under the
// "file" field.
func (c *Client) ImportClients(ctx context.Context, filename string, csv io.Reader) (ImportReport, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return ImportReport{}, err
	}
	if _, err := io.Copy(part, csv); err != nil {
		return ImportReport{}, err
	}
	if err := mw.Close(); err != nil {
		return ImportReport{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/clients/import", &buf)
	if err != nil {
		return ImportReport{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ImportReport{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return ImportReport{}, decodeError(resp)
	}
	var out ImportReport
	return out, json.NewDecoder(resp.Body).Decode(&out)
}

// ExportClients downloads the CSV export. It returns the document body and
// the filename announced in the Content-Disposition header.
func (c *Client) ExportClients(ctx context.Context) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/clients/export", nil)
	if err != nil {
		return nil, "", err
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, "", decodeError(resp)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}

	filename := ""
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			filename = params["filename"]
		}
	}
	return body, filename, nil
}

func (c *Client) MapState(ctx context.Context, selectedID string, zoom int) (MapStateResponse, error) {
	values := url.Values{}
	if selectedID != "" {
		values.Set("selected", selectedID)
	}
	if zoom > 0 {
		values.Set("zoom", strconv.Itoa(zoom))
	}

	path := "/v1/map/state"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var out MapStateResponse
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out, err
}
