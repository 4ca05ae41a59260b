package models

// NewsItem is a single headline from the news feed. The list is replaced
// wholesale on each fetch.
type NewsItem struct {
	Title  string `json:"title"`
	Source string `json:"source"`
	Time   string `json:"time"`
}
