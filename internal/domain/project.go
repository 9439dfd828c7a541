package domain

// Project is a portfolio entry derived from a GitHub repository.
type Project struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"type"`
	Technology  string       `json:"technology"`
	Year        string       `json:"year"`
	Stats       ProjectStats `json:"stats"`
	Color       string       `json:"color"`
	Link        string       `json:"link"`
	GitHub      string       `json:"github"`
}

// ProjectStats carries repository popularity counters.
type ProjectStats struct {
	Stars int `json:"stars"`
	Forks int `json:"forks"`
}
