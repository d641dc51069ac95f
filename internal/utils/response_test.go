package utils

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestSuccessEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, 200, "Data retrieved", gin.H{"key": "value"})

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !resp.Success || resp.Code != 200 || resp.Message != "Data retrieved" {
		t.Errorf("envelope = %+v", resp)
	}
	if resp.Meta.RequestID == "" || resp.Meta.Timestamp == "" {
		t.Errorf("meta must carry a request id and timestamp: %+v", resp.Meta)
	}
	if resp.Meta.Pagination != nil {
		t.Error("plain success must not carry pagination metadata")
	}
}

func TestSuccessWithPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithPagination(c, 200, "Data retrieved", []int{1, 2}, 3, 50, 120)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	p := resp.Meta.Pagination
	if p == nil {
		t.Fatal("pagination metadata missing")
	}
	if p.Page != 3 || p.Limit != 50 || p.TotalItems != 120 || p.TotalPages != 3 {
		t.Errorf("pagination = %+v", p)
	}
}

func TestSuccessWithPaginationDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	SuccessWithPagination(c, 200, "Data retrieved", nil, 0, 0, 7)

	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	p := resp.Meta.Pagination
	if p == nil {
		t.Fatal("pagination metadata missing")
	}
	if p.Page != 1 || p.Limit != 50 || p.TotalPages != 1 {
		t.Errorf("defaulted pagination = %+v", p)
	}
}

func TestNowWIB(t *testing.T) {
	name, offset := NowWIB().Zone()
	if name != "WIB" || offset != 7*3600 {
		t.Errorf("zone = %s offset = %d, want WIB +25200", name, offset)
	}
	if !strings.HasSuffix(NowWIB().Format(time.RFC3339), "+07:00") {
		t.Errorf("timestamp = %s, want +07:00 suffix", NowWIB().Format(time.RFC3339))
	}
}
