package usecase

import (
	"context"
	"testing"

	"github.com/citizengeo/sites/internal/domain"
)

type mockSiteTypeRepo struct {
	types []domain.SiteType
	calls int
}

func (m *mockSiteTypeRepo) List(ctx context.Context) ([]domain.SiteType, error) {
	m.calls++
	return m.types, nil
}

func TestSiteTypeListServesFromCache(t *testing.T) {
	repo := &mockSiteTypeRepo{types: []domain.SiteType{
		{IDTypeSite: 1, Category: "zone humide", Type: "mare"},
		{IDTypeSite: 2, Category: "forêt", Type: "arbre remarquable"},
	}}
	uc := NewSiteTypeUsecase(repo)

	first, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	second, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if len(first) != 2 || len(second) != 2 {
		t.Fatalf("expected both calls to return the rows")
	}
	if repo.calls != 1 {
		t.Fatalf("expected one repository call, got %d", repo.calls)
	}
}
