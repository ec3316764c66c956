package examination

import (
	"encoding/json"
	"testing"
	"time"
)

func TestRecordJSONShape(t *testing.T) {
	rec := Record{
		ID:   "0f3c",
		Date: time.Date(2024, time.June, 15, 10, 30, 0, 0, time.UTC),
		Draft: Draft{
			PatientID:  "PAT-000001",
			PainLevel:  3,
			IsDiabetic: true,
			HbA1c:      "7.1",
			Images:     []Image{{File: "a.png", Type: CategoryIntraoral}},
		},
	}
	b, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]interface{}
	if err := json.Unmarshal(b, &flat); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "date", "patientId", "painLevel", "isDiabetic", "hba1c", "images"} {
		if _, ok := flat[key]; !ok {
			t.Errorf("expected top-level key %q in %s", key, b)
		}
	}
	images := flat["images"].([]interface{})
	first := images[0].(map[string]interface{})
	if first["file"] != "a.png" || first["type"] != "intraoral" {
		t.Errorf("unexpected image encoding %v", first)
	}
}

func TestCategoryCounts_AlwaysBothKeys(t *testing.T) {
	counts := Draft{}.CategoryCounts()
	if len(counts) != 2 || counts[CategoryIntraoral] != 0 || counts[CategoryXRay] != 0 {
		t.Errorf("unexpected counts %v", counts)
	}
	if !CategoryXRay.Valid() || Category("ct").Valid() {
		t.Error("unexpected category validity")
	}
}
