package indexes

import (
	"encoding/json"
	"time"
)

type ReportKind string

const (
	SingleReport    ReportKind = "single"
	OffspringReport ReportKind = "offspring"
)

// Report is the stored form of one analysis response.
type Report struct {
	Id          string     `json:"id"`
	Kind        ReportKind `json:"kind"`
	Filenames   []string   `json:"filenames"`
	Vendor      string     `json:"vendor"`
	CreatedTime time.Time  `json:"createdTime"`

	// trait name -> outcome, plus condition -> category for single reports
	Summary map[string]string `json:"summary"`

	// full response body as returned to the client
	Payload json.RawMessage `json:"payload"`
}

var MAPPING_FIELDS_KEYWORD_IG256 = map[string]interface{}{
	"keyword": map[string]interface{}{
		"type":         "keyword",
		"ignore_above": 256,
	},
}
var MAPPING_TEXT = map[string]interface{}{"type": "text", "fields": MAPPING_FIELDS_KEYWORD_IG256}
var MAPPING_KEYWORD = map[string]interface{}{"type": "keyword"}
var MAPPING_DATE = map[string]interface{}{"type": "date"}
var MAPPING_FLATTENED = map[string]interface{}{"type": "flattened"}
var MAPPING_OPAQUE = map[string]interface{}{"type": "object", "enabled": false}

var REPORT_INDEX_MAPPING = map[string]interface{}{
	"properties": map[string]interface{}{
		"id":          MAPPING_KEYWORD,
		"kind":        MAPPING_KEYWORD,
		"filenames":   MAPPING_TEXT,
		"vendor":      MAPPING_KEYWORD,
		"createdTime": MAPPING_DATE,
		"summary":     MAPPING_FLATTENED,
		"payload":     MAPPING_OPAQUE,
	},
}
