package domain

// Subscription links a user to a feed, keyed by (UserID, FeedName)
type Subscription struct {
	UserID   int64  `json:"user_id"`
	FeedName string `json:"feed_name"`
}
