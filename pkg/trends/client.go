package trends

// Headline is a normalised news result from any source.
type Headline struct {
	Title   string
	Link    string
	Snippet string
	Source  string
	Date    string
}

// RisingQuery is a trending search query with its breakout value.
type RisingQuery struct {
	Query string
	Value float64
}

type NewsSource interface {
	FetchNews(query string, limit int) ([]Headline, error)
	Name() string
}
