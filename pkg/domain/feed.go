package domain

import "time"

// Feed is a named channel articles are published to. Name is the primary key.
type Feed struct {
	Name      string     `json:"name"`
	CreatedOn *time.Time `json:"created_on,omitempty"`
}

// FeedOption sets optional Feed fields
type FeedOption func(*Feed)

// NewFeed makes a feed record with the given name
func NewFeed(name string, opts ...FeedOption) Feed {
	f := Feed{Name: name}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// FeedCreatedOn sets the feed's creation time
func FeedCreatedOn(t time.Time) FeedOption {
	return func(f *Feed) { f.CreatedOn = &t }
}
