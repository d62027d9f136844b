package domain

import "time"

// Item represents a single publication entry from an RSS journal or an
// arXiv search, normalized for digest generation. A zero Published means
// the entry carried no resolvable publication date; such items are
// filtered out before they ever reach posting.
type Item struct {
	Title     string
	Link      string
	Published time.Time
	Abstract  string
}

// Digest is the two-part notification content derived from one item:
// the first Slack message carries Title+Link, the second Summary+Abstract.
type Digest struct {
	Title    string
	Link     string
	Summary  string
	Abstract string
}

// Identity is the bot's own identity as reported by auth.test, used to
// recognize the bot's postings during retention pruning.
type Identity struct {
	UserID string
	BotID  string
}
