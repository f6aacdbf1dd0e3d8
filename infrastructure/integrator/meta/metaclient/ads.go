package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseAds struct {
	Data   []metadomain.Ad   `json:"data"`
	Paging metadomain.Paging `json:"paging"`
}

// GetAdsByAccountID lists every ad of an ad account with its parent campaign
// reference.
func (c *MetaClient) GetAdsByAccountID(accountID string) ([]metadomain.Ad, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,campaign{id}")
	params.Set("limit", defaultPageLimit)

	path := fmt.Sprintf("/act_%s/ads", domain.NormalizeAccountID(accountID))

	body, err := c.get(path, params)
	if err != nil {
		return nil, err
	}

	var response ResponseAds
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding ads response")
	}

	return response.Data, nil
}
