package vidlane

import (
	"encoding/json"
	"testing"

	"github.com/vidlane/openrtb-adapter/openrtb_ext"
)

func TestValidParams(t *testing.T) {
	validator, err := openrtb_ext.NewBidderParamsValidator("../../static/bidder-params")
	if err != nil {
		t.Fatalf("Failed to fetch the json-schemas. %v", err)
	}

	for _, validParam := range validParams {
		if err := validator.Validate(openrtb_ext.BidderVidlane, json.RawMessage(validParam)); err != nil {
			t.Errorf("Schema rejected vidlane params: %s", validParam)
		}
	}
}

func TestInvalidParams(t *testing.T) {
	validator, err := openrtb_ext.NewBidderParamsValidator("../../static/bidder-params")
	if err != nil {
		t.Fatalf("Failed to fetch the json-schemas. %v", err)
	}

	for _, invalidParam := range invalidParams {
		if err := validator.Validate(openrtb_ext.BidderVidlane, json.RawMessage(invalidParam)); err == nil {
			t.Errorf("Schema allowed unexpected params: %s", invalidParam)
		}
	}
}

var validParams = []string{
	`{}`,
	`{"publisherId":"pub42"}`,
	`{"publisherId":"pub42","context":"instream"}`,
	`{"publisherId":"pub42","cur":"EUR"}`,
	`{"publisherId":"pub42","floor":1.5,"currency":"USD"}`,
	`{"publisherId":"pub42","floor":0}`,
	`{"video":{"e2etest":true}}`,
	`{"publisherId":"pub42","video":{}}`,
}

var invalidParams = []string{
	``,
	`null`,
	`true`,
	`5`,
	`"pub42"`,
	`[]`,
	`{"publisherId":42}`,
	`{"publisherId":""}`,
	`{"floor":"1.5"}`,
	`{"cur":5}`,
	`{"video":{"e2etest":"yes"}}`,
	`{"video":"e2etest"}`,
}
