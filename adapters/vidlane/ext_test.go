package vidlane

import (
	"encoding/json"
	"testing"

	"github.com/prebid/openrtb/v20/openrtb2"
	"github.com/stretchr/testify/assert"

	"github.com/vidlane/openrtb-adapter/adapters"
	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

func TestMergeExtCreatesFragment(t *testing.T) {
	ext, err := mergeExt(nil, openrtb_ext.ExtUser{Consent: "abc"})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"consent":"abc"}`, string(ext))
}

func TestMergeExtPreservesSiblings(t *testing.T) {
	existing := json.RawMessage(`{"gdpr":1,"other":"keep"}`)

	ext, err := mergeExt(existing, openrtb_ext.ExtRegs{USPrivacy: "1YNN"})

	assert.NoError(t, err)
	assert.JSONEq(t, `{"gdpr":1,"other":"keep","us_privacy":"1YNN"}`, string(ext))
}

func TestApplyExtensionsMergesRegsWriters(t *testing.T) {
	wire := openrtb2.BidRequest{}
	bid := &adapters.BidRequest{
		GDPRConsent: &adapters.GDPRConsent{ConsentString: "abc", GDPRApplies: true},
		USPConsent:  "1YNN",
	}

	assert.NoError(t, applyExtensions(&wire, bid))

	// both writers land on regs.ext without clobbering each other
	var regsExt openrtb_ext.ExtRegs
	assert.NoError(t, json.Unmarshal(wire.Regs.Ext, &regsExt))
	assert.Equal(t, int8(1), *regsExt.GDPR)
	assert.Equal(t, "1YNN", regsExt.USPrivacy)

	var userExt openrtb_ext.ExtUser
	assert.NoError(t, json.Unmarshal(wire.User.Ext, &userExt))
	assert.Equal(t, "abc", userExt.Consent)
}

func TestApplyExtensionsLeavesRequestUntouched(t *testing.T) {
	wire := openrtb2.BidRequest{}

	assert.NoError(t, applyExtensions(&wire, &adapters.BidRequest{}))

	assert.Nil(t, wire.Source)
	assert.Nil(t, wire.User)
	assert.Nil(t, wire.Regs)
}
