package types

import "time"

// NewsCategory classifies a news item.
type NewsCategory string

const (
	NewsFestival      NewsCategory = "festival"
	NewsConcert       NewsCategory = "concert"
	NewsAward         NewsCategory = "award"
	NewsCulturalEvent NewsCategory = "cultural-event"
	NewsWorkshop      NewsCategory = "workshop"
	NewsRelease       NewsCategory = "release"
)

// NewsDateLayout is the layout of News.Date and News.EndDate.
const NewsDateLayout = "2006-01-02"

// News is a musical event or announcement tied to a region.
type News struct {
	ID          string       `json:"id" yaml:"id"`
	Title       string       `json:"title" yaml:"title"`
	Category    NewsCategory `json:"category" yaml:"category"`
	Region      string       `json:"region" yaml:"region"` // region ID
	Date        string       `json:"date" yaml:"date"`
	EndDate     string       `json:"endDate,omitempty" yaml:"end_date,omitempty"` // multi-day events
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Venue       string       `json:"venue,omitempty" yaml:"venue,omitempty"`
	City        string       `json:"city,omitempty" yaml:"city,omitempty"`
	Artists     []string     `json:"artists,omitempty" yaml:"artists,omitempty"`
	Organizer   string       `json:"organizer,omitempty" yaml:"organizer,omitempty"`
	TicketURL   string       `json:"ticketUrl,omitempty" yaml:"ticket_url,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty" yaml:"image_url,omitempty"`
	Tags        []string     `json:"tags,omitempty" yaml:"tags,omitempty"`
	Featured    bool         `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// StartTime parses Date. Unparseable dates return the zero time.
func (n *News) StartTime() time.Time {
	t, err := time.Parse(NewsDateLayout, n.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Upcoming reports whether the event has not ended before now.
func (n *News) Upcoming(now time.Time) bool {
	end := n.EndDate
	if end == "" {
		end = n.Date
	}
	t, err := time.Parse(NewsDateLayout, end)
	if err != nil {
		return false
	}
	// an event on today's date is still upcoming
	return !t.Add(24 * time.Hour).Before(now)
}
