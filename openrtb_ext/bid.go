package openrtb_ext

// BidType describes the media type of a normalized bid.
type BidType string

const (
	BidTypeVideo BidType = "video"
)
