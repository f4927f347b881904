package vidlane

import (
	"encoding/json"
	"fmt"
	"net/http"
	"text/template"

	"github.com/golang/glog"
	"github.com/prebid/openrtb/v20/openrtb2"
	"github.com/xorcare/pointer"

	"github.com/vidlane/openrtb-adapter/adapters"
	"github.com/vidlane/openrtb-adapter/config"
	"github.com/vidlane/openrtb-adapter/errortypes"
	"github.com/vidlane/openrtb-adapter/macros"
	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

const (
	contextInstream = "instream"

	// The e2etest account answers every request with a canned bid, so slots
	// routed there skip validation and get a fixed 640x480 instream setup.
	e2eTestPublisherID = "e2etest"

	defaultFloorCurrency = "USD"

	// Exactly one impression per wire request.
	impID = "1"
)

type adapter struct {
	endpoint *template.Template
	video    config.Video
}

// Builder builds a new instance of the vidlane adapter with the given config.
func Builder(cfg *config.Configuration) (adapters.Bidder, error) {
	endpointTemplate, err := template.New("endpointTemplate").Parse(cfg.Adapter.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("unable to parse endpoint url template: %v", err)
	}

	return &adapter{
		endpoint: endpointTemplate,
		video:    cfg.Video,
	}, nil
}

// IsBidRequestValid reports whether the slot is well formed enough to send.
// Rules short-circuit on the first failure and log the reason.
func (a *adapter) IsBidRequestValid(bid *adapters.BidRequest) bool {
	params, err := parseParams(bid.Params)
	if err != nil {
		glog.Warningf("vidlane: discarding bid request %s: %v", bid.BidID, err)
		return false
	}

	if params.Video != nil && params.Video.E2ETest {
		return true
	}

	video := bid.MediaTypes.Video
	if video == nil {
		return false
	}
	if params.PublisherID == "" {
		glog.Warning("vidlane: publisher id not declared")
		return false
	}
	if video.Context == "" {
		glog.Warning("vidlane: context id not declared")
		return false
	}
	if video.Context != contextInstream {
		glog.Warning("vidlane: only context instream is supported")
		return false
	}
	if video.PlayerSize == nil {
		glog.Warning("vidlane: player size not declared")
		return false
	}

	return true
}

// MakeRequests translates each validated slot into one HTTP request
// descriptor. An empty batch yields no descriptors and no errors. The error
// slice can carry non-fatal warnings next to the descriptors; hosts filter
// with errortypes.FatalOnly.
func (a *adapter) MakeRequests(bids []*adapters.BidRequest, reqInfo *adapters.ExtraRequestInfo) ([]*adapters.RequestData, []error) {
	if len(bids) == 0 {
		return nil, nil
	}

	var errs []error
	requests := make([]*adapters.RequestData, 0, len(bids))
	for _, bid := range bids {
		request, bidErrs := a.makeRequest(bid, reqInfo)
		errs = append(errs, bidErrs...)
		if request != nil {
			requests = append(requests, request)
		}
	}

	return requests, errs
}

func (a *adapter) makeRequest(bid *adapters.BidRequest, reqInfo *adapters.ExtraRequestInfo) (*adapters.RequestData, []error) {
	params, err := parseParams(bid.Params)
	if err != nil {
		return nil, []error{err}
	}

	videoMediaType := bid.MediaTypes.Video
	publisherID := params.PublisherID
	if params.Video != nil && params.Video.E2ETest {
		publisherID = e2eTestPublisherID

		testVideo := adapters.VideoMediaType{}
		if videoMediaType != nil {
			testVideo = *videoMediaType
		}
		testVideo.Context = contextInstream
		testVideo.PlayerSize = [][2]int64{{640, 480}}
		videoMediaType = &testVideo
	}
	if videoMediaType == nil {
		return nil, []error{&errortypes.BadInput{Message: "vidlane: no video media type declared"}}
	}

	var warnings []error
	bidFloor, bidFloorCur, floorWarning := resolveFloor(bid, params)
	if floorWarning != nil {
		warnings = append(warnings, floorWarning)
	}

	ortbRequest := openrtb2.BidRequest{
		ID: bid.BidID,
		Imp: []openrtb2.Imp{{
			ID:          impID,
			Video:       buildVideo(videoMediaType, params),
			Secure:      secureFlag(reqInfo),
			BidFloor:    bidFloor,
			BidFloorCur: bidFloorCur,
		}},
		Site: makeSite(reqInfo),
	}

	if err := applyExtensions(&ortbRequest, bid); err != nil {
		return nil, append(warnings, err)
	}

	body, err := json.Marshal(ortbRequest)
	if err != nil {
		return nil, append(warnings, err)
	}

	uri, err := macros.ResolveMacros(a.endpoint, macros.EndpointTemplateParams{PublisherID: publisherID})
	if err != nil {
		return nil, append(warnings, &errortypes.BadInput{
			Message: fmt.Sprintf("unable to resolve endpoint url: %v", err),
		})
	}

	return &adapters.RequestData{
		Method:  http.MethodPost,
		Uri:     uri,
		Body:    body,
		Headers: makeHeaders(),
	}, warnings
}

// MakeBids turns the demand server's response into zero or one normalized
// bids. The endpoint answers with exactly one seat holding exactly one bid;
// any other layout rejects the response wholesale, with no partial
// extraction.
func (a *adapter) MakeBids(bid *adapters.BidRequest, externalRequest *adapters.RequestData, response *adapters.ResponseData) (*adapters.BidderResponse, []error) {
	if response.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if response.StatusCode == http.StatusBadRequest {
		return nil, []error{&errortypes.BadInput{
			Message: fmt.Sprintf("unexpected status code: %d", response.StatusCode),
		}}
	}
	if response.StatusCode != http.StatusOK {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("unexpected status code: %d", response.StatusCode),
		}}
	}

	var ortbResponse openrtb2.BidResponse
	if err := json.Unmarshal(response.Body, &ortbResponse); err != nil {
		return nil, []error{&errortypes.BadServerResponse{
			Message: "unable to parse server response",
		}}
	}

	if len(ortbResponse.SeatBid) != 1 {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("expected exactly one seat, got %d", len(ortbResponse.SeatBid)),
		}}
	}
	seatBid := ortbResponse.SeatBid[0]
	if len(seatBid.Bid) != 1 {
		return nil, []error{&errortypes.BadServerResponse{
			Message: fmt.Sprintf("expected exactly one bid, got %d", len(seatBid.Bid)),
		}}
	}

	serverBid := seatBid.Bid[0]
	normalized := &adapters.NormalizedBid{
		// RequestID carries the top-level auction id, not the bid id.
		RequestID:  ortbResponse.ID,
		CPM:        serverBid.Price,
		Width:      serverBid.W,
		Height:     serverBid.H,
		Ad:         serverBid.AdM,
		TTL:        a.video.TTL,
		CreativeID: serverBid.CrID,
		NetRevenue: a.video.NetRevenue,
		// The response currency is ignored by contract.
		Currency:  a.video.Currency,
		MediaType: openrtb_ext.BidTypeVideo,
		Meta:      adapters.BidMeta{ADomain: serverBid.ADomain},
	}
	if serverBid.AdM != "" {
		normalized.VastXML = serverBid.AdM
	}

	bidderResponse := adapters.NewBidderResponseWithBidsCapacity(1)
	bidderResponse.Bids = append(bidderResponse.Bids, normalized)
	return bidderResponse, nil
}

func parseParams(raw json.RawMessage) (openrtb_ext.ExtImpVidlane, error) {
	var params openrtb_ext.ExtImpVidlane
	if len(raw) == 0 {
		return params, nil
	}
	if err := json.Unmarshal(raw, &params); err != nil {
		return params, &errortypes.BadInput{
			Message: fmt.Sprintf("invalid bidder params: %v", err),
		}
	}
	return params, nil
}

// resolveFloor asks the host's floor resolver for a video floor, falling
// back to the static params floor when the host exposes no resolver. A
// resolver error degrades to "no floor" in the requested currency and is
// reported as a non-fatal warning; the request is still sent.
func resolveFloor(bid *adapters.BidRequest, params openrtb_ext.ExtImpVidlane) (float64, string, error) {
	if bid.GetFloor == nil {
		var bidFloor float64
		if params.Floor != nil {
			bidFloor = *params.Floor
		}
		return bidFloor, params.Currency, nil
	}

	currency := params.Cur
	if currency == "" {
		currency = defaultFloorCurrency
	}
	floor, err := bid.GetFloor(adapters.FloorRequest{
		Currency:  currency,
		MediaType: openrtb_ext.BidTypeVideo,
		Size:      "*",
	})
	if err != nil {
		return 0, currency, &errortypes.Warning{
			Message:     fmt.Sprintf("floor resolution failed for bid request %s: %v", bid.BidID, err),
			WarningCode: errortypes.FloorResolutionWarningCode,
		}
	}
	return floor.Floor, floor.Currency, nil
}

func secureFlag(reqInfo *adapters.ExtraRequestInfo) *int8 {
	if reqInfo != nil && reqInfo.Page != nil && reqInfo.Page.Secure {
		return pointer.Int8(1)
	}
	return pointer.Int8(0)
}

func makeSite(reqInfo *adapters.ExtraRequestInfo) *openrtb2.Site {
	site := &openrtb2.Site{}
	if reqInfo == nil {
		return site
	}
	if reqInfo.Page != nil {
		site.Domain = reqInfo.Page.Hostname
		site.Page = reqInfo.Page.Href
	}
	if reqInfo.Referer != nil {
		site.Ref = reqInfo.Referer.Ref
	}
	return site
}

func makeHeaders() http.Header {
	headers := http.Header{}
	headers.Add("Content-Type", "application/json;charset=utf-8")
	headers.Add("Accept", "application/json")
	headers.Add("X-Openrtb-Version", "2.5")
	return headers
}
