package metaclient

import (
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseCampaigns struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID lists every campaign of an ad account, regardless
// of lifecycle status.
func (c *MetaClient) GetCampaignsByAccountID(accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Set("fields", "id,name,status,objective")
	params.Set("limit", defaultPageLimit)

	path := fmt.Sprintf("/act_%s/campaigns", domain.NormalizeAccountID(accountID))

	body, err := c.get(path, params)
	if err != nil {
		return nil, err
	}

	var response ResponseCampaigns
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding campaigns response")
	}

	return response.Data, nil
}
