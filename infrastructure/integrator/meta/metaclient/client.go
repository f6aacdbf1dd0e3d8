package metaclient

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
	"github.com/vfg2006/ads-dashboard-api/pkg/log"
)

type Client interface {
	GetAdAccounts() ([]metadomain.AdAccount, error)
	GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error)
	GetAdsByAccountID(accountID string) ([]metadomain.Ad, error)
	GetInsights(req *domain.InsightsRequest) ([]metadomain.InsightRow, error)
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Meta.RequestTimeoutSeconds) * time.Second,
		},
	}
}

// get issues a GET against the given API path, appending the access token,
// and returns the response body after error handling.
func (c *MetaClient) get(path string, params url.Values) ([]byte, error) {
	params.Set("access_token", c.Cfg.Meta.AccessToken)

	requestURL := c.Cfg.Meta.URL + path + "?" + params.Encode()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building meta request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling meta api")
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse reads the body and converts API error envelopes into typed
// errors so callers can classify rate limiting.
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading meta response")
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &metadomain.ErrorResponse{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Detail.Code == 0 {
		return nil, errors.Errorf("meta api returned status %d", resp.StatusCode)
	}

	if apiErr.IsRateLimited() {
		log.L.WithFields(log.Fields{
			"code":    apiErr.Detail.Code,
			"subcode": apiErr.Detail.ErrorSubcode,
		}).Warn("meta: rate limited by the api")
	}

	return nil, apiErr
}
