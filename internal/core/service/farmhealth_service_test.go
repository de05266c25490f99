package service

import (
	"context"
	"testing"

	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
)

func healthInput(level domain.RiskLevel) ports.FarmHealthInput {
	return ports.FarmHealthInput{
		PestPressure:   domain.PestPressure{GaugeValue: 40, Pests: []domain.MeterReading{{Name: "aphids", Level: 40}}},
		NutrientStatus: domain.NutrientStatus{GaugeValue: 70, Nutrients: []domain.MeterReading{{Name: "nitrogen", Level: 70}}},
		DiseaseRisk:    domain.DiseaseRisk{GaugeValue: 25, Level: level, PotentialDiseases: []string{"rust"}},
	}
}

func TestFarmHealthService_PutIsAdminOnly(t *testing.T) {
	farms := newStubFarmRepo()
	health := newStubHealthRepo()
	svc := NewFarmHealthService(health, farms)
	ctx := context.Background()

	farm, err := farms.Create(ctx, &domain.Farm{Name: "North Field", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("seed farm failed: %v", err)
	}

	// Even the farm's owner cannot write the health record.
	if _, err := svc.PutFarmHealth(ctx, clientSession("u1"), farm.ID, healthInput(domain.RiskLow)); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden for owner, got %v", err)
	}

	record, err := svc.PutFarmHealth(ctx, adminSession(), farm.ID, healthInput(domain.RiskModerate))
	if err != nil {
		t.Fatalf("admin put failed: %v", err)
	}
	if record.FarmID != farm.ID || record.DiseaseRisk.Level != domain.RiskModerate {
		t.Fatalf("unexpected record: %+v", record)
	}
}

func TestFarmHealthService_PutRejectsUnknownRiskLevel(t *testing.T) {
	farms := newStubFarmRepo()
	svc := NewFarmHealthService(newStubHealthRepo(), farms)
	ctx := context.Background()

	farm, err := farms.Create(ctx, &domain.Farm{Name: "North Field", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("seed farm failed: %v", err)
	}

	if _, err := svc.PutFarmHealth(ctx, adminSession(), farm.ID, healthInput("Extreme")); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestFarmHealthService_GetScopedToOwnerOrAdmin(t *testing.T) {
	farms := newStubFarmRepo()
	health := newStubHealthRepo()
	svc := NewFarmHealthService(health, farms)
	ctx := context.Background()

	farm, err := farms.Create(ctx, &domain.Farm{Name: "North Field", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("seed farm failed: %v", err)
	}
	if _, err := svc.PutFarmHealth(ctx, adminSession(), farm.ID, healthInput(domain.RiskHigh)); err != nil {
		t.Fatalf("seed health failed: %v", err)
	}

	if _, err := svc.GetFarmHealth(ctx, clientSession("u1"), farm.ID); err != nil {
		t.Fatalf("owner read failed: %v", err)
	}
	if _, err := svc.GetFarmHealth(ctx, clientSession("u2"), farm.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, err := svc.GetFarmHealth(ctx, adminSession(), farm.ID); err != nil {
		t.Fatalf("admin read failed: %v", err)
	}
}

func TestFarmHealthService_GetMissingRecord(t *testing.T) {
	farms := newStubFarmRepo()
	svc := NewFarmHealthService(newStubHealthRepo(), farms)
	ctx := context.Background()

	farm, err := farms.Create(ctx, &domain.Farm{Name: "Bare Field", OwnerID: "u1"})
	if err != nil {
		t.Fatalf("seed farm failed: %v", err)
	}

	if _, err := svc.GetFarmHealth(ctx, clientSession("u1"), farm.ID); err != domain.ErrHealthNotFound {
		t.Fatalf("expected ErrHealthNotFound, got %v", err)
	}
}
