package openrtb_ext

// ExtImpVidlane defines the contract for the bidder params configured by the
// publisher for a vidlane ad slot.
type ExtImpVidlane struct {
	// PublisherID is the vidlane account, and becomes the last path segment
	// of the destination URL.
	PublisherID string `json:"publisherId"`

	// Context selects the delivery environment on the vidlane side. This is
	// a bidder param and is intentionally distinct from the media type
	// context declared on the slot itself.
	Context string `json:"context,omitempty"`

	// Cur is the currency floors are requested in. Defaults to USD.
	Cur string `json:"cur,omitempty"`

	// Floor and Currency are the static floor fallback, used only when the
	// host exposes no floor resolver for the request.
	Floor    *float64 `json:"floor,omitempty"`
	Currency string   `json:"currency,omitempty"`

	Video *ExtImpVidlaneVideo `json:"video,omitempty"`
}

// ExtImpVidlaneVideo carries per-slot video overrides.
type ExtImpVidlaneVideo struct {
	// E2ETest routes the request to the e2etest account with a canned
	// 640x480 instream slot, bypassing validation.
	E2ETest bool `json:"e2etest,omitempty"`
}
