package metaclient

import (
	"encoding/json"
	"net/url"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
)

type ResponseAdAccounts struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdAccounts lists the ad accounts visible to the configured token.
func (c *MetaClient) GetAdAccounts() ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Set("fields", "account_id,name,account_status,currency,timezone_name")
	params.Set("limit", defaultPageLimit)

	body, err := c.get("/me/adaccounts", params)
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding ad accounts response")
	}

	return response.Data, nil
}
