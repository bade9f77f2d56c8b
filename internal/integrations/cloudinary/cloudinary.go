// Package cloudinary implements signed image uploads to the Cloudinary REST
// API. Records reference the returned secure URL, so uploads run before the
// owning row is committed.
package cloudinary

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/SulimanFURC/BE-HMS/internal/config"
	"github.com/sirupsen/logrus"
)

// Client handles uploads to Cloudinary
type Client struct {
	baseURL   string
	cloudName string
	apiKey    string
	apiSecret string
	client    *http.Client
	log       *logrus.Logger
}

// NewClient initializes a new Cloudinary client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		baseURL:   cfg.CloudinaryURL,
		cloudName: cfg.CloudinaryCloudName,
		apiKey:    cfg.CloudinaryAPIKey,
		apiSecret: cfg.CloudinaryAPISecret,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// sign builds the request signature: SHA-1 over the alphabetically sorted
// params joined as a query string, with the API secret appended.
func (c *Client) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+params[k])
	}
	sum := sha1.Sum([]byte(strings.Join(pairs, "&") + c.apiSecret))
	return hex.EncodeToString(sum[:])
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends a base64 data URI to Cloudinary and returns the hosted URL.
// One retry is attempted on transport failure since the call leaves the
// process boundary.
func (c *Client) Upload(ctx context.Context, dataURI, folder, filename string) (string, error) {
	if !strings.HasPrefix(dataURI, "data:") || !strings.Contains(dataURI, ";base64,") {
		return "", fmt.Errorf("invalid base64 data URI")
	}

	publicID := strings.TrimSuffix(filename, ".jpg")
	params := map[string]string{
		"folder":    folder,
		"public_id": publicID,
		"timestamp": fmt.Sprintf("%d", time.Now().Unix()),
	}

	form := url.Values{}
	for k, v := range params {
		form.Set(k, v)
	}
	form.Set("api_key", c.apiKey)
	form.Set("signature", c.sign(params))
	form.Set("file", dataURI)

	endpoint := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)

	var resp *http.Response
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return "", fmt.Errorf("failed to create upload request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err = c.client.Do(req)
		if err == nil {
			break
		}
		c.log.Warnf("Cloudinary upload attempt %d failed: %v", attempt+1, err)
	}
	if err != nil {
		return "", fmt.Errorf("upload request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read upload response: %w", err)
	}

	var parsed uploadResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload rejected (%d): %s", resp.StatusCode, parsed.Error.Message)
	}
	if parsed.SecureURL == "" {
		return "", fmt.Errorf("upload response missing secure_url")
	}

	c.log.Debugf("Uploaded %s/%s to Cloudinary", folder, publicID)
	return parsed.SecureURL, nil
}
