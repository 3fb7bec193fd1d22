package infra

import (
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const DefaultPurgomalumURL = "https://www.purgomalum.com"

// PurgomalumClient asks the PurgoMalum web service whether a text contains
// profanity.
type PurgomalumClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPurgomalumClient(baseURL string, timeout time.Duration) *PurgomalumClient {
	if baseURL == "" {
		baseURL = DefaultPurgomalumURL
	}
	return &PurgomalumClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *PurgomalumClient) ContainsProfanity(ctx context.Context, text string) (bool, error) {
	endpoint := fmt.Sprintf("%s/service/containsprofanity?%s", c.baseURL, url.Values{"text": {text}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("build purgomalum request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("call purgomalum: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return false, fmt.Errorf("read purgomalum response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("purgomalum returned status %d", resp.StatusCode)
	}

	profane, err := strconv.ParseBool(strings.TrimSpace(string(body)))
	if err != nil {
		return false, fmt.Errorf("unexpected purgomalum response %q: %w", body, err)
	}
	logrus.Debugf("PurgomalumClient.ContainsProfanity: text [%s] profane [%t]", text, profane)
	return profane, nil
}
