package tandoor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"
)

// AuthError is returned when the token endpoint rejects the credentials.
// It carries the response body so the operator can see what Tandoor said.
type AuthError struct {
	StatusCode int
	Body       string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("authentication failed with status %d: %s", e.StatusCode, e.Body)
}

// Client talks to a Tandoor instance. The token is obtained once at
// construction and is read-only afterwards.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient exchanges the credentials for an API token. A non-200 response
// from the token endpoint returns an *AuthError; without a token no other
// call can succeed, so callers should treat this as fatal.
func NewClient(ctx context.Context, baseURL, username, password string, timeout time.Duration) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}

	token, err := c.authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}
	c.token = token

	return c, nil
}

func (c *Client) authenticate(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	authURL := fmt.Sprintf("%s/api-token-auth/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach token endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &AuthError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var tokenResp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.Token == "" {
		return "", fmt.Errorf("token endpoint returned an empty token")
	}

	return tokenResp.Token, nil
}

// CreateRecipe POSTs a recipe payload and returns the identifier Tandoor
// assigned to it. Any status other than 201 is an error carrying the
// response body.
func (c *Client) CreateRecipe(ctx context.Context, recipe *Recipe) (int, error) {
	payload, err := json.Marshal(recipe)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal recipe payload: %w", err)
	}

	createURL := fmt.Sprintf("%s/api/recipe/", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, createURL, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to create recipe request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to create recipe: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("recipe creation returned status %d: %s", resp.StatusCode, string(body))
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return 0, fmt.Errorf("failed to decode recipe creation response: %w", err)
	}

	return created.ID, nil
}

// UploadImage attaches a preview image to an existing recipe via a
// multipart PUT. The image endpoint authenticates with the Token scheme,
// not Bearer; Tandoor's API really is asymmetric here.
func (c *Client) UploadImage(ctx context.Context, recipeID int, imageURL string, image []byte) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="image"; filename="image.jpg"`)
	header.Set("Content-Type", "image/jpeg")
	part, err := writer.CreatePart(header)
	if err != nil {
		return fmt.Errorf("failed to create image form part: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return fmt.Errorf("failed to write image data: %w", err)
	}
	if err := writer.WriteField("image_url", imageURL); err != nil {
		return fmt.Errorf("failed to write image_url field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/api/recipe/%d/image/", c.baseURL, recipeID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, &buf)
	if err != nil {
		return fmt.Errorf("failed to create image upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("image upload returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
