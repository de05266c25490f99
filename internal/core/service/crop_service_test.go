package service

import (
	"context"
	"testing"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

func newTestCropService(t *testing.T) (*CropService, *domain.Farm) {
	t.Helper()
	farms := newStubFarmRepo()
	crops := newStubCropRepo()
	svc := NewCropService(crops, farms)

	farm, err := farms.Create(context.Background(), &domain.Farm{Name: "North Field", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("seed farm failed: %v", err)
	}
	return svc, farm
}

func TestCropService_AccessFollowsFarmOwnership(t *testing.T) {
	svc, farm := newTestCropService(t)
	ctx := context.Background()

	if _, err := svc.CreateCrop(ctx, clientSession("u2"), farm.ID, ports.CropInput{Name: "Wheat"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	crop, err := svc.CreateCrop(ctx, clientSession("u1"), farm.ID, ports.CropInput{Name: "Wheat", AreaHa: 3})
	if err != nil {
		t.Fatalf("owner create failed: %v", err)
	}
	if crop.FarmID != farm.ID {
		t.Fatalf("expected crop on farm %s, got %s", farm.ID, crop.FarmID)
	}

	if _, err := svc.ListCrops(ctx, clientSession("u2"), farm.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on list, got %v", err)
	}
	if _, err := svc.UpdateCrop(ctx, clientSession("u2"), crop.ID, ports.CropInput{Name: "Hijack"}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on update, got %v", err)
	}
	if err := svc.DeleteCrop(ctx, clientSession("u2"), crop.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden on delete, got %v", err)
	}

	// Admins can act on any farm's crops.
	if _, err := svc.ListCrops(ctx, adminSession(), farm.ID); err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
}

func TestCropService_UpdatePartialFields(t *testing.T) {
	svc, farm := newTestCropService(t)
	ctx := context.Background()
	sess := clientSession("u1")

	crop, err := svc.CreateCrop(ctx, sess, farm.ID, ports.CropInput{Name: "Wheat", AreaHa: 3, Stage: "seeding"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateCrop(ctx, sess, crop.ID, ports.CropInput{Stage: "vegetative"})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Stage != "vegetative" {
		t.Fatalf("stage not updated: %+v", updated)
	}
	if updated.Name != "Wheat" || updated.AreaHa != 3 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestCropService_DeleteUnknownCrop(t *testing.T) {
	svc, _ := newTestCropService(t)

	if err := svc.DeleteCrop(context.Background(), clientSession("u1"), "missing"); err != domain.ErrCropNotFound {
		t.Fatalf("expected ErrCropNotFound, got %v", err)
	}
}
