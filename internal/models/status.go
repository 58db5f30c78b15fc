package models

// Order and line-item statuses form a fixed domain in the source data.
// Counting logic compares against these constants, never free text.
const (
	StatusCancelled  = "Cancelled"
	StatusComplete   = "Complete"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusReturned   = "Returned"
)

// KnownStatuses lists every status the dataset may carry, in display order.
var KnownStatuses = []string{
	StatusCancelled,
	StatusComplete,
	StatusProcessing,
	StatusShipped,
	StatusReturned,
}
