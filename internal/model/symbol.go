package model

type Symbol struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Reference   *string `json:"reference"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	Meaning     *string `json:"meaning"`
	Context     *string `json:"context"`
	Application *string `json:"application"`
}
