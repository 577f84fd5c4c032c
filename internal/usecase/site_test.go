package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/citizengeo/sites/internal/domain"
)

type mockSiteRepo struct {
	sites  map[int]domain.Site
	nextID int
}

func newMockSiteRepo() *mockSiteRepo {
	return &mockSiteRepo{sites: map[int]domain.Site{}}
}

func (m *mockSiteRepo) List(ctx context.Context) ([]domain.Site, error) {
	sites := make([]domain.Site, 0, len(m.sites))
	for _, s := range m.sites {
		sites = append(sites, s)
	}
	return sites, nil
}

func (m *mockSiteRepo) ListByProgram(ctx context.Context, idProgram int) ([]domain.Site, error) {
	var sites []domain.Site
	for _, s := range m.sites {
		if s.IDProgram == idProgram {
			sites = append(sites, s)
		}
	}
	return sites, nil
}

func (m *mockSiteRepo) Get(ctx context.Context, idSite int) (*domain.Site, error) {
	s, ok := m.sites[idSite]
	if !ok {
		return nil, domain.NotFoundError{Resource: "site"}
	}
	return &s, nil
}

func (m *mockSiteRepo) Create(ctx context.Context, site domain.Site) (int, error) {
	m.nextID++
	site.ID = m.nextID
	m.sites[site.ID] = site
	return site.ID, nil
}

type mockPublisher struct {
	events []domain.SiteEvent
}

func (m *mockPublisher) PublishSiteCreated(ctx context.Context, event domain.SiteEvent) error {
	m.events = append(m.events, event)
	return nil
}

func validInput() CreateSiteInput {
	return CreateSiteInput{
		IDProgram: 1,
		IDType:    2,
		Name:      "mare du bois",
		Geometry:  json.RawMessage(`{"type":"Point","coordinates":[5,45]}`),
	}
}

func TestCreateSiteAnonymousDefaultsObserver(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	site, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if site.ObsTxt != domain.AnonymousObserver {
		t.Fatalf("expected %q observer, got %q", domain.AnonymousObserver, site.ObsTxt)
	}
	if site.IDRole != nil {
		t.Fatalf("anonymous site must not carry a role id")
	}
}

func TestCreateSiteKeepsSuppliedObserver(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	input := validInput()
	input.ObsTxt = "bob"

	site, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if site.ObsTxt != "bob" {
		t.Fatalf("expected supplied observer to be kept, got %q", site.ObsTxt)
	}
}

func TestCreateSiteIdentityOverridesObserver(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	input := validInput()
	input.ObsTxt = "bob"
	input.Email = "bob@example.org"
	input.Identity = &domain.Identity{IDRole: 42, Username: "alice", Email: "alice@example.org"}

	site, err := uc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if site.ObsTxt != "alice" || site.Email != "alice@example.org" {
		t.Fatalf("identity must override client-supplied observer, got %q/%q", site.ObsTxt, site.Email)
	}
	if site.IDRole == nil || *site.IDRole != 42 {
		t.Fatalf("expected role id 42, got %v", site.IDRole)
	}
}

func TestCreateSiteAssignsFreshUUID(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	first, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if first.UUIDSINP == uuid.Nil || second.UUIDSINP == uuid.Nil {
		t.Fatalf("expected non-zero uuids")
	}
	if first.UUIDSINP == second.UUIDSINP {
		t.Fatalf("expected distinct uuids, got %s twice", first.UUIDSINP)
	}
}

func TestCreateSiteMalformedGeometryCreatesNoRow(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	input := validInput()
	input.Geometry = json.RawMessage(`{"type":"Point"}`)

	_, err := uc.Create(context.Background(), input)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, domain.ErrInvalidGeometry) {
		t.Fatalf("expected InvalidGeometryError, got %v", err)
	}
	if len(repo.sites) != 0 {
		t.Fatalf("no row must be created on malformed geometry")
	}
}

func TestCreateSiteMissingProgramFails(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	input := validInput()
	input.IDProgram = 0

	if _, err := uc.Create(context.Background(), input); err == nil {
		t.Fatalf("expected validation error")
	}
	if len(repo.sites) != 0 {
		t.Fatalf("no row must be created on validation failure")
	}
}

func TestCreateSitePublishesEvent(t *testing.T) {
	repo := newMockSiteRepo()
	publisher := &mockPublisher{}
	uc := NewSiteUsecase(repo, publisher)

	site, err := uc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if len(publisher.events) != 1 {
		t.Fatalf("expected one event, got %d", len(publisher.events))
	}
	event := publisher.events[0]
	if event.Type != domain.EventSiteCreated {
		t.Fatalf("unexpected event type %q", event.Type)
	}
	if event.Feature.Properties["uuid_sinp"] != site.UUIDSINP.String() {
		t.Fatalf("event must carry the created feature")
	}
}

func TestListByProgramFiltering(t *testing.T) {
	repo := newMockSiteRepo()
	uc := NewSiteUsecase(repo, nil)

	input := validInput()
	if _, err := uc.Create(context.Background(), input); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sites, err := uc.ListByProgram(context.Background(), 99)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sites) != 0 {
		t.Fatalf("expected zero matches, got %d", len(sites))
	}

	sites, err = uc.ListByProgram(context.Background(), 1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sites) != 1 {
		t.Fatalf("expected one match, got %d", len(sites))
	}
}
