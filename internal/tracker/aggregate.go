package tracker

import (
	"github.com/daybook-app/daybook/internal/models"
)

// AggregatedItem is a tracked item with its classified day buckets attached.
// Delta computation is left to the presentation boundary so this stays
// storage- and transport-agnostic.
type AggregatedItem struct {
	Item    models.TrackedItem
	Buckets Buckets
}

// Aggregate attaches ytd/today buckets to each of a user's items. The caller
// computes the window once (ComputeWindow) and fetches logsByItem (keyed by
// item ID, ascending CreatedAt) before calling; the same window is shared
// across every item. Soft-deleted items and items not owned by ownerID are
// excluded; input order is otherwise preserved. Items with no entry in the
// map get empty buckets.
func Aggregate(ownerID string, w DayWindow, items []models.TrackedItem, logsByItem map[int64][]models.LogEntry) []AggregatedItem {
	out := make([]AggregatedItem, 0, len(items))
	for _, item := range items {
		if item.Deleted() || item.OwnerID != ownerID {
			continue
		}
		out = append(out, AggregatedItem{
			Item:    item,
			Buckets: Classify(logsByItem[item.ItemID], w),
		})
	}
	return out
}
