package service

import (
	"context"
	"strconv"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

type stubFarmRepo struct {
	mu    sync.Mutex
	farms map[string]*domain.Farm
	seq   int
}

func newStubFarmRepo() *stubFarmRepo {
	return &stubFarmRepo{farms: make(map[string]*domain.Farm)}
}

func cloneFarm(f *domain.Farm) *domain.Farm {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

func (r *stubFarmRepo) Create(_ context.Context, farm *domain.Farm) (*domain.Farm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := cloneFarm(farm)
	r.seq++
	copy.ID = "farm_" + strconv.Itoa(r.seq)
	r.farms[copy.ID] = cloneFarm(copy)
	return cloneFarm(copy), nil
}

func (r *stubFarmRepo) FindByID(_ context.Context, id string) (*domain.Farm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.farms[id]; ok {
		return cloneFarm(f), nil
	}
	return nil, domain.ErrFarmNotFound
}

func (r *stubFarmRepo) List(_ context.Context, ownerID string) ([]*domain.Farm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Farm
	for _, f := range r.farms {
		if ownerID == "" || f.OwnerID == ownerID {
			out = append(out, cloneFarm(f))
		}
	}
	return out, nil
}

func (r *stubFarmRepo) Update(_ context.Context, farm *domain.Farm) (*domain.Farm, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.farms[farm.ID]; !ok {
		return nil, domain.ErrFarmNotFound
	}
	r.farms[farm.ID] = cloneFarm(farm)
	return cloneFarm(farm), nil
}

func (r *stubFarmRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.farms[id]; !ok {
		return domain.ErrFarmNotFound
	}
	delete(r.farms, id)
	return nil
}

func (r *stubFarmRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.farms)), nil
}

type stubCropRepo struct {
	mu            sync.Mutex
	crops         map[string]*domain.Crop
	deletedByFarm []string
	seq           int
}

func newStubCropRepo() *stubCropRepo {
	return &stubCropRepo{crops: make(map[string]*domain.Crop)}
}

func (r *stubCropRepo) Create(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *crop
	r.seq++
	copy.ID = "crop_" + strconv.Itoa(r.seq)
	r.crops[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubCropRepo) FindByID(_ context.Context, id string) (*domain.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.crops[id]; ok {
		copy := *c
		return &copy, nil
	}
	return nil, domain.ErrCropNotFound
}

func (r *stubCropRepo) ListByFarm(_ context.Context, farmID string) ([]*domain.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Crop
	for _, c := range r.crops {
		if c.FarmID == farmID {
			copy := *c
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubCropRepo) Update(_ context.Context, crop *domain.Crop) (*domain.Crop, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.crops[crop.ID]; !ok {
		return nil, domain.ErrCropNotFound
	}
	copy := *crop
	r.crops[copy.ID] = &copy
	out := copy
	return &out, nil
}

func (r *stubCropRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.crops[id]; !ok {
		return domain.ErrCropNotFound
	}
	delete(r.crops, id)
	return nil
}

func (r *stubCropRepo) DeleteByFarm(_ context.Context, farmID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletedByFarm = append(r.deletedByFarm, farmID)
	for id, c := range r.crops {
		if c.FarmID == farmID {
			delete(r.crops, id)
		}
	}
	return nil
}

func (r *stubCropRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.crops)), nil
}

type stubDashboardRepo struct {
	mu            sync.Mutex
	dashboards    map[string]*domain.Dashboard // keyed by farm ID
	deletedByFarm []string
}

func newStubDashboardRepo() *stubDashboardRepo {
	return &stubDashboardRepo{dashboards: make(map[string]*domain.Dashboard)}
}

func (r *stubDashboardRepo) Upsert(_ context.Context, dashboard *domain.Dashboard) (*domain.Dashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *dashboard
	if copy.ID == "" {
		copy.ID = "dash_" + copy.FarmID
	}
	r.dashboards[copy.FarmID] = &copy
	out := copy
	return &out, nil
}

func (r *stubDashboardRepo) FindByFarm(_ context.Context, farmID string) (*domain.Dashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.dashboards[farmID]; ok {
		copy := *d
		return &copy, nil
	}
	return nil, domain.ErrDashboardNotFound
}

func (r *stubDashboardRepo) ListByOwner(_ context.Context, ownerID string) ([]*domain.Dashboard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Dashboard
	for _, d := range r.dashboards {
		if d.OwnerID == ownerID {
			copy := *d
			out = append(out, &copy)
		}
	}
	return out, nil
}

func (r *stubDashboardRepo) DeleteByFarm(_ context.Context, farmID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletedByFarm = append(r.deletedByFarm, farmID)
	delete(r.dashboards, farmID)
	return nil
}

type stubHealthRepo struct {
	mu            sync.Mutex
	records       map[string]*domain.FarmHealth // keyed by farm ID
	deletedByFarm []string
}

func newStubHealthRepo() *stubHealthRepo {
	return &stubHealthRepo{records: make(map[string]*domain.FarmHealth)}
}

func (r *stubHealthRepo) Upsert(_ context.Context, health *domain.FarmHealth) (*domain.FarmHealth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copy := *health
	if copy.ID == "" {
		copy.ID = "health_" + copy.FarmID
	}
	r.records[copy.FarmID] = &copy
	out := copy
	return &out, nil
}

func (r *stubHealthRepo) FindByFarm(_ context.Context, farmID string) (*domain.FarmHealth, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if h, ok := r.records[farmID]; ok {
		copy := *h
		return &copy, nil
	}
	return nil, domain.ErrHealthNotFound
}

func (r *stubHealthRepo) DeleteByFarm(_ context.Context, farmID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deletedByFarm = append(r.deletedByFarm, farmID)
	delete(r.records, farmID)
	return nil
}

func newTestFarmService() (*FarmService, *stubFarmRepo, *stubCropRepo, *stubDashboardRepo, *stubHealthRepo) {
	farms := newStubFarmRepo()
	crops := newStubCropRepo()
	dashboards := newStubDashboardRepo()
	health := newStubHealthRepo()
	svc := NewFarmService(farms, crops, dashboards, health, zerolog.Nop())
	return svc, farms, crops, dashboards, health
}

func clientSession(userID string) domain.Session {
	return domain.Session{UserID: userID, Email: userID + "@x.com", Role: domain.RoleClient}
}

func adminSession() domain.Session {
	return domain.Session{UserID: "admin_1", Email: "admin@x.com", Role: domain.RoleAdmin}
}

func TestFarmService_CreateAssignsOwner(t *testing.T) {
	svc, _, _, _, _ := newTestFarmService()

	farm, err := svc.CreateFarm(context.Background(), clientSession("u1"), ports.CreateFarmInput{
		Name: "North Field", Location: "Valley", SizeHa: 12.5,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if farm.OwnerID != "u1" {
		t.Fatalf("expected owner u1, got %q", farm.OwnerID)
	}
}

func TestFarmService_ClientCannotReadOthersFarm(t *testing.T) {
	svc, _, _, _, _ := newTestFarmService()

	farm, err := svc.CreateFarm(context.Background(), clientSession("u1"), ports.CreateFarmInput{Name: "North Field"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetFarm(context.Background(), clientSession("u2"), farm.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetFarm(context.Background(), adminSession(), farm.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestFarmService_ListScopedByRole(t *testing.T) {
	svc, _, _, _, _ := newTestFarmService()
	ctx := context.Background()

	if _, err := svc.CreateFarm(ctx, clientSession("u1"), ports.CreateFarmInput{Name: "A"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateFarm(ctx, clientSession("u2"), ports.CreateFarmInput{Name: "B"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	own, err := svc.ListFarms(ctx, clientSession("u1"))
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(own) != 1 || own[0].OwnerID != "u1" {
		t.Fatalf("expected only u1's farm, got %d farms", len(own))
	}

	all, err := svc.ListFarms(ctx, adminSession())
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 farms for admin, got %d", len(all))
	}
}

func TestFarmService_UpdateForbiddenForNonOwner(t *testing.T) {
	svc, _, _, _, _ := newTestFarmService()
	ctx := context.Background()

	farm, err := svc.CreateFarm(ctx, clientSession("u1"), ports.CreateFarmInput{Name: "Old", SizeHa: 5})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.UpdateFarm(ctx, clientSession("u2"), ports.UpdateFarmInput{FarmID: farm.ID, Name: "Hijack"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	updated, err := svc.UpdateFarm(ctx, clientSession("u1"), ports.UpdateFarmInput{FarmID: farm.ID, Name: "New"})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Name != "New" || updated.SizeHa != 5 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
}

func TestFarmService_DeleteCascades(t *testing.T) {
	svc, farms, crops, dashboards, health := newTestFarmService()
	ctx := context.Background()

	farm, err := svc.CreateFarm(ctx, clientSession("u1"), ports.CreateFarmInput{Name: "Doomed"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteFarm(ctx, clientSession("u1"), farm.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := farms.FindByID(ctx, farm.ID); err != domain.ErrFarmNotFound {
		t.Fatalf("farm still present after delete")
	}
	if len(crops.deletedByFarm) != 1 || crops.deletedByFarm[0] != farm.ID {
		t.Fatalf("crops were not cascade-deleted: %v", crops.deletedByFarm)
	}
	if len(dashboards.deletedByFarm) != 1 || dashboards.deletedByFarm[0] != farm.ID {
		t.Fatalf("dashboard was not cascade-deleted: %v", dashboards.deletedByFarm)
	}
	if len(health.deletedByFarm) != 1 || health.deletedByFarm[0] != farm.ID {
		t.Fatalf("health record was not cascade-deleted: %v", health.deletedByFarm)
	}
}

func TestFarmService_DeleteForbiddenForNonOwner(t *testing.T) {
	svc, _, _, _, _ := newTestFarmService()
	ctx := context.Background()

	farm, err := svc.CreateFarm(ctx, clientSession("u1"), ports.CreateFarmInput{Name: "Safe"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.DeleteFarm(ctx, clientSession("u2"), farm.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetFarm(ctx, clientSession("u1"), farm.ID); err != nil {
		t.Fatalf("farm should still exist: %v", err)
	}
}
