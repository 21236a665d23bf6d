// Package diff computes which playlist items are new relative to the last
// observed snapshot.
//
// An item counts as new when its added-at timestamp is strictly greater
// than the maximum added-at of the previous snapshot. Items sharing that
// maximum timestamp are never reported, even if they were not present
// before; a playlist that gains several tracks in the same second can
// therefore miss some of them.
package diff

import (
	"time"

	"github.com/nanomoomug/spotify-notify-playlist-update/internal/domain"
)

// NewItems returns the items of current that were added after everything
// in previous, in the order they appear in current.
//
// A nil previous means the playlist has never been polled; the current
// snapshot establishes the baseline and nothing is reported. A previous
// snapshot with no items likewise yields nothing, since no threshold
// exists to compare against.
func NewItems(previous, current *domain.Snapshot) []domain.Item {
	if previous == nil || current == nil || len(previous.Items) == 0 {
		return nil
	}

	threshold := maxAddedAt(previous.Items)

	var added []domain.Item
	for _, item := range current.Items {
		if item.AddedAt.After(threshold) {
			added = append(added, item)
		}
	}
	return added
}

func maxAddedAt(items []domain.Item) time.Time {
	max := items[0].AddedAt
	for _, item := range items[1:] {
		if item.AddedAt.After(max) {
			max = item.AddedAt
		}
	}
	return max
}
