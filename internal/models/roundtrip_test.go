package models

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

// Optional reference ids are plain empty strings in the database, so a
// record written and read back must serialize identically, with unset
// optional keys omitted rather than padded or emptied.

func TestSPPDJSONRoundTrip(t *testing.T) {
	orig := SPPD{
		ID:           "5e3f0c3a-1111-2222-3333-444455556666",
		AssignmentID: "5e3f0c3a-aaaa-bbbb-cccc-ddddeeeeffff",
		StartDate:    time.Date(2024, 8, 5, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 8, 7, 0, 0, 0, 0, time.UTC),
		Status:       SPPDOngoing,
		TransportID:  "5e3f0c3a-9999-8888-7777-666655554444",
		Version:      2,
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back SPPD
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != orig {
		t.Errorf("round trip changed the record:\n got %+v\nwant %+v", back, orig)
	}

	if strings.Contains(string(data), "fundingId") {
		t.Errorf("unset fundingId must be omitted, got %s", data)
	}
	if !strings.Contains(string(data), `"transportId":"5e3f0c3a-9999-8888-7777-666655554444"`) {
		t.Errorf("set transportId must survive as-is, got %s", data)
	}
}

func TestReceiptJSONRoundTrip(t *testing.T) {
	orig := Receipt{
		ID:     "7a1b2c3d-1111-2222-3333-444455556666",
		SPPDID: "7a1b2c3d-aaaa-bbbb-cccc-ddddeeeeffff",
		Date:   time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC),
		Components: CostComponents{
			DailyAllowance: DailyAllowanceItem{Days: 3, AmountPerDay: 150000, Total: 450000, Visible: true},
			Transport:      CostItem{Amount: 300000, Visible: true},
		},
		TotalAmount: 750000,
		Status:      ReceiptDraft,
		TreasurerID: "7a1b2c3d-9999-8888-7777-666655554444",
		Version:     1,
	}

	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var back Receipt
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.TreasurerID != orig.TreasurerID || back.PPTKID != "" || back.KPAID != "" {
		t.Errorf("official ids changed: %+v", back)
	}
	if back.Components != orig.Components {
		t.Errorf("components changed:\n got %+v\nwant %+v", back.Components, orig.Components)
	}
	if back.TotalAmount != orig.TotalAmount || back.Status != orig.Status {
		t.Errorf("totals changed: %+v", back)
	}

	for _, key := range []string{"pptkId", "kpaId", "attachments"} {
		if strings.Contains(string(data), key) {
			t.Errorf("unset %s must be omitted, got %s", key, data)
		}
	}
}

func TestReceiptJSONOmitsAllUnsetOfficials(t *testing.T) {
	data, err := json.Marshal(Receipt{Status: ReceiptDraft})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	for _, key := range []string{"treasurerId", "pptkId", "kpaId"} {
		if strings.Contains(string(data), key) {
			t.Errorf("unset %s must be omitted, got %s", key, data)
		}
	}
}
