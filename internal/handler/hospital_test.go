package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/vietmedtour/backend/internal/model"
	"github.com/vietmedtour/backend/internal/repository"
)

func newHospitalTestRouter(t *testing.T) (*gin.Engine, repository.HospitalRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(&model.Hospital{}); err != nil {
		t.Fatalf("migrate error: %v", err)
	}

	repo := repository.NewHospitalRepository(db)
	h := NewHospitalHandler(repo)

	r := gin.New()
	r.GET("/api/hospitals/:id", h.Get)
	r.DELETE("/api/hospitals/:id", h.Delete)
	return r, repo
}

func TestHospitalDeleteDeactivates(t *testing.T) {
	r, repo := newHospitalTestRouter(t)

	hospital := &model.Hospital{Name: "Bệnh viện Test", Status: "active"}
	if err := repo.Create(hospital); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/hospitals/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// 行还在，状态变 inactive
	got, err := repo.Get(hospital.ID)
	if err != nil {
		t.Fatalf("get after delete error: %v", err)
	}
	if got.Status != "inactive" {
		t.Fatalf("expected inactive after delete, got %s", got.Status)
	}
}

func TestHospitalDeleteNotFound(t *testing.T) {
	r, _ := newHospitalTestRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/hospitals/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
