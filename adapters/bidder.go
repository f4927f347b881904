package adapters

import (
	"encoding/json"

	"github.com/prebid/openrtb/v20/adcom1"
	"github.com/prebid/openrtb/v20/openrtb2"

	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

// Bidder translates between the host auction system's internal slot
// representation and one demand partner's wire protocol.
//
// Implementations hold no per-request state: every method is a pure function
// of its inputs (plus diagnostic logging), so the host may process
// independent bid requests in any order or concurrency it likes. The host
// owns the HTTP transport; a Bidder only describes the call to make and
// interprets what came back.
type Bidder interface {
	// IsBidRequestValid reports whether the slot is well formed enough to
	// send. Invalid requests are skipped by the host, never sent.
	IsBidRequestValid(bid *BidRequest) bool

	// MakeRequests produces one HTTP request descriptor per bid request.
	// Inputs are expected to have passed IsBidRequestValid already.
	MakeRequests(bids []*BidRequest, reqInfo *ExtraRequestInfo) ([]*RequestData, []error)

	// MakeBids unpacks the server's response into zero or more normalized
	// bids. Errors describe why the response (or part of it) was unusable;
	// they never abort processing of sibling requests.
	MakeBids(bid *BidRequest, externalRequest *RequestData, response *ResponseData) (*BidderResponse, []error)
}

// BidRequest is the host's internal representation of one video ad slot.
// It is owned by the host and read-only to adapters.
type BidRequest struct {
	// BidID identifies the slot request and becomes the wire request id.
	BidID string

	// Params is the raw bidder configuration for the slot, shaped per
	// static/bidder-params/{bidder}.json.
	Params json.RawMessage

	MediaTypes MediaTypes

	GDPRConsent *GDPRConsent
	USPConsent  string
	SChain      *openrtb2.SupplyChain

	// GetFloor resolves the floor price for a described context. Nil when
	// the host runs no floors module; adapters then fall back to whatever
	// static floor their params carry.
	GetFloor FloorResolver
}

type MediaTypes struct {
	Video *VideoMediaType
}

// VideoMediaType mirrors the host's mediaTypes.video declaration. Optional
// OpenRTB fields use pointers (or nil slices) so unset and zero stay
// distinguishable; adapters copy a field to the wire only when the host
// declared it.
type VideoMediaType struct {
	Context    string
	PlayerSize [][2]int64

	MIMEs          []string
	MinDuration    *int64
	MaxDuration    *int64
	Placement      *adcom1.VideoPlacementSubtype
	Protocols      []adcom1.MediaCreativeSubtype
	StartDelay     *adcom1.StartDelay
	Skip           *int8
	SkipAfter      *int64
	MinBitrate     *int64
	MaxBitrate     *int64
	Delivery       []adcom1.DeliveryMethod
	PlaybackMethod []adcom1.PlaybackMethod
	API            []adcom1.APIFramework
	Linearity      *adcom1.LinearityMode
}

// GDPRConsent carries the TCF consent state collected by the host's CMP.
type GDPRConsent struct {
	ConsentString string
	GDPRApplies   bool
}

// FloorRequest describes the context a floor is being requested for.
type FloorRequest struct {
	Currency  string
	MediaType openrtb_ext.BidType
	Size      string
}

// Floor is a resolved floor price.
type Floor struct {
	Floor    float64
	Currency string
}

// FloorResolver returns the floor for the described context.
type FloorResolver func(FloorRequest) (Floor, error)

// ExtraRequestInfo carries batch-level page state the host environment
// provides alongside the slots.
type ExtraRequestInfo struct {
	Page    *PageContext
	Referer *RefererInfo
}

// PageContext is the browsing context the auction runs in.
type PageContext struct {
	Hostname string
	Href     string
	Secure   bool
}

// RefererInfo is the referer state as detected by the host.
type RefererInfo struct {
	Ref string
}
