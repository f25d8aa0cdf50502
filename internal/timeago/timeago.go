// Package timeago renders the human-readable relative-time labels shown on
// posts. The label is computed once when a post is created and stored with it;
// it is intentionally never refreshed on later reads.
package timeago

import (
	"fmt"
	"time"
)

// Label formats the elapsed time between t and now the way the feed displays
// it: seconds, then minutes, hours, and days. A freshly created post reads
// "0s ago".
func Label(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf("%ds ago", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}
