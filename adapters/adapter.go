package adapters

import (
	"net/http"

	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

// RequestData packages a serialized bid request for the host's transport to
// dispatch. The adapter itself never performs the HTTP call.
type RequestData struct {
	Method  string
	Uri     string
	Body    []byte
	Headers http.Header
}

// ResponseData wraps the server's http response as received by the host's
// transport.
type ResponseData struct {
	StatusCode int
	Body       []byte
	Headers    http.Header
}

// NormalizedBid is one demand-side bid translated into the host's model.
// It is constructed once per accepted response, handed to the host and not
// retained by the adapter.
type NormalizedBid struct {
	// RequestID echoes the top-level auction id of the server response.
	RequestID  string
	CPM        float64
	Width      int64
	Height     int64
	Ad         string
	VastXML    string
	TTL        int
	CreativeID string
	NetRevenue bool
	Currency   string
	MediaType  openrtb_ext.BidType
	Meta       BidMeta
}

// BidMeta carries pass-through metadata about the winning ad.
type BidMeta struct {
	ADomain []string
}

// BidderResponse carries the bids extracted from one server response.
type BidderResponse struct {
	Bids []*NormalizedBid
}

// NewBidderResponseWithBidsCapacity initializes a BidderResponse with an
// empty bid list of the given capacity.
func NewBidderResponseWithBidsCapacity(capacity int) *BidderResponse {
	return &BidderResponse{
		Bids: make([]*NormalizedBid, 0, capacity),
	}
}
