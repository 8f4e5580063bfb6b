package transit

type Stop struct {
	Name string
	ID   string
}

type stopAttributes struct {
	Name string `json:"name"`
}

func NewStopFromResource(resource Resource) (Stop, error) {
	var attributes stopAttributes
	if err := resource.decodeAttributes(&attributes); err != nil {
		return Stop{}, err
	}

	return Stop{
		Name: attributes.Name,
		ID:   resource.ID,
	}, nil
}
