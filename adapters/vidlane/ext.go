package vidlane

import (
	"encoding/json"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/prebid/openrtb/v20/openrtb2"

	"github.com/vidlane/openrtb-adapter/adapters"
	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

// applyExtensions writes the optional supply chain and privacy fragments to
// their ORTB 2.5 ext locations. Each fragment is written only when the
// corresponding input is present, and each write merges into whatever ext
// content is already there instead of replacing it.
func applyExtensions(req *openrtb2.BidRequest, bid *adapters.BidRequest) error {
	if bid.SChain != nil {
		if err := setSourceExtSChain(req, bid.SChain); err != nil {
			return err
		}
	}
	if bid.GDPRConsent != nil {
		if bid.GDPRConsent.ConsentString != "" {
			if err := setUserExtConsent(req, bid.GDPRConsent.ConsentString); err != nil {
				return err
			}
		}
		applies := int8(0)
		if bid.GDPRConsent.GDPRApplies {
			applies = 1
		}
		if err := mergeRegsExt(req, openrtb_ext.ExtRegs{GDPR: &applies}); err != nil {
			return err
		}
	}
	if bid.USPConsent != "" {
		if err := mergeRegsExt(req, openrtb_ext.ExtRegs{USPrivacy: bid.USPConsent}); err != nil {
			return err
		}
	}
	return nil
}

func setSourceExtSChain(req *openrtb2.BidRequest, schain *openrtb2.SupplyChain) error {
	if req.Source == nil {
		req.Source = &openrtb2.Source{}
	}
	ext, err := mergeExt(req.Source.Ext, openrtb_ext.ExtSource{SChain: schain})
	if err != nil {
		return err
	}
	req.Source.Ext = ext
	return nil
}

func setUserExtConsent(req *openrtb2.BidRequest, consent string) error {
	if req.User == nil {
		req.User = &openrtb2.User{}
	}
	ext, err := mergeExt(req.User.Ext, openrtb_ext.ExtUser{Consent: consent})
	if err != nil {
		return err
	}
	req.User.Ext = ext
	return nil
}

func mergeRegsExt(req *openrtb2.BidRequest, regsExt openrtb_ext.ExtRegs) error {
	if req.Regs == nil {
		req.Regs = &openrtb2.Regs{}
	}
	ext, err := mergeExt(req.Regs.Ext, regsExt)
	if err != nil {
		return err
	}
	req.Regs.Ext = ext
	return nil
}

// mergeExt marshals the fragment and merges it into ext, preserving sibling
// keys another writer already set.
func mergeExt(ext json.RawMessage, fragment interface{}) (json.RawMessage, error) {
	fragmentJSON, err := json.Marshal(fragment)
	if err != nil {
		return nil, err
	}
	if len(ext) == 0 {
		return fragmentJSON, nil
	}
	return jsonpatch.MergePatch(ext, fragmentJSON)
}
