package license

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type httpClient struct {
	endpoint string
	key      string
	deviceID string
}

func NewHTTP(endpoint, key, deviceID string) Client {
	return &httpClient{endpoint: endpoint, key: key, deviceID: deviceID}
}

func (c *httpClient) Check(ctx context.Context) (Result, error) {
	u := strings.TrimRight(c.endpoint, "/") + "/v1/license/check?device_id=" + url.QueryEscape(c.deviceID)

	httpc := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)

	resp, err := httpc.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("license backend: %s", resp.Status)
	}

	var out Result
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Result{}, err
	}
	return out, nil
}
