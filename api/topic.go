package api

type Topic string

const (
	// ImageListUpdated carries the current filtered view to the
	// presentation layer after a query or a mutation.
	ImageListUpdated Topic = "image-list-updated"
	// CategoryCountsUpdated signals that per category tallies should be
	// recomputed. Sent after a full load. No payload.
	CategoryCountsUpdated Topic = "category-counts-updated"
	// ProcessStatusUpdated carries advisory busy state changes.
	ProcessStatusUpdated Topic = "process-status-updated"

	ShowError   Topic = "show-error"
	ShowWarning Topic = "show-warning"
)
