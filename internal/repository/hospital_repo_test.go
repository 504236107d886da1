package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/vietmedtour/backend/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db error: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Hospital{},
		&model.Knowledge{},
		&model.Service{},
		&model.UserShare{},
		&model.Contact{},
	); err != nil {
		t.Fatalf("migrate error: %v", err)
	}
	return db
}

func TestHospitalRepositoryListActiveOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)

	names := []string{"Bệnh viện A", "Bệnh viện B", "Bệnh viện C"}
	for _, name := range names {
		h := &model.Hospital{Name: name, Status: "active"}
		if err := repo.Create(h); err != nil {
			t.Fatalf("create %s error: %v", name, err)
		}
	}
	if err := repo.Create(&model.Hospital{Name: "Đã đóng cửa", Status: "inactive"}); err != nil {
		t.Fatalf("create inactive error: %v", err)
	}

	active, err := repo.ListActive()
	if err != nil {
		t.Fatalf("ListActive error: %v", err)
	}
	if len(active) != 3 {
		t.Fatalf("expected 3 active hospitals, got %d", len(active))
	}
	for i, h := range active {
		if h.Name != names[i] {
			t.Fatalf("expected order by id, got %s at index %d", h.Name, i)
		}
	}
}

func TestHospitalRepositoryGetByExternalID(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)

	h := &model.Hospital{Name: "Bệnh viện Test", Status: "active", ExternalID: "ext_001"}
	if err := repo.Create(h); err != nil {
		t.Fatalf("create error: %v", err)
	}

	got, err := repo.GetByExternalID("ext_001")
	if err != nil {
		t.Fatalf("GetByExternalID error: %v", err)
	}
	if got.ID != h.ID {
		t.Fatalf("expected id %d, got %d", h.ID, got.ID)
	}

	if _, err := repo.GetByExternalID("ext_missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHospitalRepositoryDeactivate(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)

	h := &model.Hospital{Name: "Bệnh viện Test", Status: "active"}
	if err := repo.Create(h); err != nil {
		t.Fatalf("create error: %v", err)
	}

	if err := repo.Deactivate(h.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	got, err := repo.Get(h.ID)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got.Status != "inactive" {
		t.Fatalf("expected inactive, got %s", got.Status)
	}

	if err := repo.Deactivate(9999); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for missing id, got %v", err)
	}
}

func TestHospitalRepositoryListFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)

	seed := []model.Hospital{
		{Name: "Thẩm mỹ Sài Gòn", City: "TP.HCM", Type: "private", Level: "A", Status: "active", Rating: 4.8},
		{Name: "Thẩm mỹ Hà Nội", City: "Hà Nội", Type: "private", Level: "B", Status: "active", Rating: 4.2},
		{Name: "Bệnh viện Công", City: "Hà Nội", Type: "public", Level: "A", Status: "pending", Rating: 4.0},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	got, total, err := repo.List(ListQuery{City: "Hà Nội"})
	if err != nil {
		t.Fatalf("List by city error: %v", err)
	}
	if total != 2 || len(got) != 2 {
		t.Fatalf("expected 2 in Hà Nội, got total=%d len=%d", total, len(got))
	}

	got, total, err = repo.List(ListQuery{Search: "Thẩm mỹ", Status: "active"})
	if err != nil {
		t.Fatalf("List by search error: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected 2 search matches, got %d", total)
	}
	// 默认按 rating 倒序
	if got[0].Name != "Thẩm mỹ Sài Gòn" {
		t.Fatalf("expected rating desc order, got %s first", got[0].Name)
	}
}

func TestHospitalRepositorySitemapPage(t *testing.T) {
	db := newTestDB(t)
	repo := NewHospitalRepository(db)

	for _, h := range []model.Hospital{
		{Name: "Bệnh viện 1", Status: "active"},
		{Name: "Bệnh viện 2", Status: "active"},
		{Name: "Ẩn", Status: "inactive"},
	} {
		hh := h
		if err := repo.Create(&hh); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	entries, total, err := repo.SitemapPage(1, 10, "")
	if err != nil {
		t.Fatalf("SitemapPage error: %v", err)
	}
	if total != 2 || len(entries) != 2 {
		t.Fatalf("expected 2 active entries, got total=%d len=%d", total, len(entries))
	}
	if entries[0].Title == "" {
		t.Fatalf("expected title populated from name")
	}
}
