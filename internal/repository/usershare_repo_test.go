package repository

import (
	"testing"

	"github.com/vietmedtour/backend/internal/model"
)

func TestUserShareRepositorySitemapPageDefaultStatus(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserShareRepository(db)

	seed := []model.UserShare{
		{Title: "Hành trình nâng mũi", Content: "Chia sẻ", AuthorName: "Lan", Status: "published"},
		{Title: "Review cắt mí", Content: "Chia sẻ", AuthorName: "Mai", Status: "published"},
		{Title: "Bản nháp", Content: "Chưa đăng", AuthorName: "Hoa", Status: "draft"},
	}
	for i := range seed {
		if err := repo.Create(&seed[i]); err != nil {
			t.Fatalf("seed error: %v", err)
		}
	}

	// status 为空时默认只取 published
	entries, total, err := repo.SitemapPage(1, 10, "")
	if err != nil {
		t.Fatalf("SitemapPage error: %v", err)
	}
	if total != 2 || len(entries) != 2 {
		t.Fatalf("expected 2 published entries, got total=%d len=%d", total, len(entries))
	}
	for _, e := range entries {
		if e.Title == "Bản nháp" {
			t.Fatalf("draft entry should not appear in sitemap")
		}
	}
}
