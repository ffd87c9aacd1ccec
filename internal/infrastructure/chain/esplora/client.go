package esplora

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const requestTimeout = 10 * time.Second

type esploraClient struct {
	url        string
	httpClient *http.Client
}

func newEsploraClient(esploraURL string) *esploraClient {
	return &esploraClient{
		url:        esploraURL,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// getFeeMap returns a map of sat/kvbyte fees for different confirmation
// targets.
func (c *esploraClient) getFeeMap(
	ctx context.Context,
) (map[uint32]uint32, error) {
	endpoint, err := url.JoinPath(c.url, "fee-estimates")
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	// nolint:all
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("fee-estimates endpoint HTTP error: " + resp.Status)
	}

	response := make(map[string]float64)

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	if len(response) == 0 {
		response = map[string]float64{"1": 2.0}
	}

	mapResponse := make(map[uint32]uint32)
	for k, v := range response {
		key, err := strconv.Atoi(k)
		if err != nil {
			return nil, err
		}

		mapResponse[uint32(key)] = uint32(v * 1000)
	}

	return mapResponse, nil
}
