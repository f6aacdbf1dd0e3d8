package metadomain

type Ad struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Status   string     `json:"status"`
	Campaign AdCampaign `json:"campaign"`
}

// AdCampaign is the nested campaign reference returned by the ads edge.
type AdCampaign struct {
	ID string `json:"id"`
}
