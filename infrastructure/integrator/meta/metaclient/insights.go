package metaclient

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/ads-dashboard-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

type ResponseInsights struct {
	Data   []metadomain.InsightRow `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetInsights runs one insights query against the account-level insights
// edge. The request is translated to wire parameters by BuildInsightsParams.
func (c *MetaClient) GetInsights(req *domain.InsightsRequest) ([]metadomain.InsightRow, error) {
	params := BuildInsightsParams(req)

	path := fmt.Sprintf("/act_%s/insights", domain.NormalizeAccountID(req.AccountID))

	body, err := c.get(path, params)
	if err != nil {
		return nil, err
	}

	var response ResponseInsights
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(err, "decoding insights response")
	}

	return response.Data, nil
}
