package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/vietmedtour/backend/internal/dqa"
	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

func newDQATestRouter(t *testing.T, hospitals ...model.Hospital) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Hospital{}, &model.Knowledge{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	hospitalRepo := repository.NewHospitalRepository(db)
	knowledgeRepo := repository.NewKnowledgeRepository(db)
	for i := range hospitals {
		if hospitals[i].Status == "" {
			hospitals[i].Status = "active"
		}
		if err := hospitalRepo.Create(&hospitals[i]); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	service := dqa.NewService(hospitalRepo, knowledgeRepo, time.Hour, false)
	h := NewDQAHandler(service)

	r := gin.New()
	r.GET("/api/dqa/hospitals/:id", h.Hospital)
	r.POST("/api/dqa/generate", h.Generate)
	r.GET("/api/dqa/stats", h.Stats)
	r.POST("/api/dqa/scheduler/:action", h.ControlScheduler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal error: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(http.MethodPost, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDQAHospitalDetail(t *testing.T) {
	r := newDQATestRouter(t, model.Hospital{Name: "Bệnh viện JW", City: "TP.HCM"})

	req := httptest.NewRequest(http.MethodGet, "/api/dqa/hospitals/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Name string `json:"name"`
			City string `json:"city"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if resp.Data.Name != "Bệnh viện JW" || resp.Data.City != "TP.HCM" {
		t.Fatalf("unexpected hospital payload: %s", w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/dqa/hospitals/999", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for missing hospital, got %d", w.Code)
	}
}

func TestDQAGenerateCountValidation(t *testing.T) {
	r := newDQATestRouter(t, model.Hospital{Name: "Bệnh viện Test"})

	for _, count := range []int{-1, 0, 101} {
		w := postJSON(t, r, "/api/dqa/generate", gin.H{"count": count})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("count=%d expected 400, got %d: %s", count, w.Code, w.Body.String())
		}
	}
}

func TestDQAGenerateDefaultCount(t *testing.T) {
	r := newDQATestRouter(t, model.Hospital{Name: "Bệnh viện Test"})

	// 空请求体按 count=1 处理
	w := postJSON(t, r, "/api/dqa/generate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Success      bool   `json:"success"`
			KnowledgeID  uint   `json:"knowledge_id"`
			HospitalName string `json:"hospital_name"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !resp.Data.Success || resp.Data.KnowledgeID == 0 {
		t.Fatalf("expected generated knowledge, got %s", w.Body.String())
	}
}

func TestDQAGenerateNoHospitals(t *testing.T) {
	r := newDQATestRouter(t)

	w := postJSON(t, r, "/api/dqa/generate", gin.H{"count": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 with empty pool, got %d: %s", w.Code, w.Body.String())
	}
}

func TestDQASchedulerControl(t *testing.T) {
	r := newDQATestRouter(t)

	w := postJSON(t, r, "/api/dqa/scheduler/start", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Success bool `json:"success"`
		Running bool `json:"running"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if !resp.Running {
		t.Fatalf("expected scheduler running after start")
	}

	w = postJSON(t, r, "/api/dqa/scheduler/stop", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	w = postJSON(t, r, "/api/dqa/scheduler/pause", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown action, got %d", w.Code)
	}
}
