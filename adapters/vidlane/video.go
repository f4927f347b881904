package vidlane

import (
	"github.com/prebid/openrtb/v20/adcom1"
	"github.com/prebid/openrtb/v20/openrtb2"
	"github.com/xorcare/pointer"

	"github.com/vidlane/openrtb-adapter/adapters"
	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

// videoParamCopiers is the fixed, ordered set of optional OpenRTB video
// fields the demand side accepts. A field is copied only when the host
// declared it on the slot. Pointer wire fields keep declared zeros; the
// value-typed ones (minduration, skipafter, minbitrate, maxbitrate) carry
// omitempty, so a declared zero is copied but dropped from the wire JSON.
var videoParamCopiers = []func(src *adapters.VideoMediaType, dst *openrtb2.Video){
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.MIMEs != nil {
			dst.MIMEs = src.MIMEs
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.MinDuration != nil {
			dst.MinDuration = *src.MinDuration
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.MaxDuration != nil {
			dst.MaxDuration = *src.MaxDuration
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.Placement != nil {
			dst.Placement = *src.Placement
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.Protocols != nil {
			dst.Protocols = src.Protocols
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.StartDelay != nil {
			dst.StartDelay = src.StartDelay
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.Skip != nil {
			dst.Skip = src.Skip
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.SkipAfter != nil {
			dst.SkipAfter = *src.SkipAfter
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.MinBitrate != nil {
			dst.MinBitRate = *src.MinBitrate
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.MaxBitrate != nil {
			dst.MaxBitRate = *src.MaxBitrate
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.Delivery != nil {
			dst.Delivery = src.Delivery
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.PlaybackMethod != nil {
			dst.PlaybackMethod = src.PlaybackMethod
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.API != nil {
			dst.API = src.API
		}
	},
	func(src *adapters.VideoMediaType, dst *openrtb2.Video) {
		if src.Linearity != nil {
			dst.Linearity = *src.Linearity
		}
	},
}

// buildVideo maps the slot's video declaration onto the wire video object.
// Width and height come from the first player size pair.
func buildVideo(src *adapters.VideoMediaType, params openrtb_ext.ExtImpVidlane) *openrtb2.Video {
	video := &openrtb2.Video{}
	if len(src.PlayerSize) > 0 {
		video.W = pointer.Int64(src.PlayerSize[0][0])
		video.H = pointer.Int64(src.PlayerSize[0][1])
	}

	for _, copyParam := range videoParamCopiers {
		copyParam(src, video)
	}

	if video.Placement == 0 {
		video.Placement = adcom1.VideoPlacementInBanner
	}
	if params.Context == contextInstream {
		video.Placement = adcom1.VideoPlacementInStream
		if video.StartDelay == nil {
			video.StartDelay = adcom1.StartPreRoll.Ptr()
		}
	}

	return video
}
