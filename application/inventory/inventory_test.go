package inventory_test

import (
	"context"
	"testing"
	"time"

	appinventory "github.com/satriawidya/bloodlink/application/inventory"
	facilitymocks "github.com/satriawidya/bloodlink/mocks/repository/facility"
	inventorymocks "github.com/satriawidya/bloodlink/mocks/repository/inventory"
	"github.com/satriawidya/bloodlink/model"
	"github.com/stretchr/testify/mock"
)

func TestInventoryApp_AddLot(t *testing.T) {
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	facilityRepo := facilitymocks.NewFacilityRepository(t)

	facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
		Return(&model.BloodBank{ID: "bank-1", FacilityID: "fac-1"}, nil).Once()
	inventoryRepo.On("InsertLot", mock.Anything, mock.MatchedBy(func(lot *model.InventoryLot) bool {
		return lot.BloodBankID == "bank-1" && lot.Quantity == 10 &&
			lot.ExpiryDate.Format("2006-01-02") == "2026-09-30"
	})).Return(nil).Once()

	app := appinventory.NewInventoryApp(inventoryRepo, facilityRepo)
	lot, err := app.AddLot(context.Background(), "bank-1", &model.AddLotRequest{
		BloodProduct: "platelets",
		BloodType:    "O-",
		Quantity:     10,
		ExpiryDate:   "2026-09-30",
	})
	if err != nil {
		t.Fatalf("AddLot() error = %v", err)
	}
	if lot.ID == "" {
		t.Fatal("AddLot() lot ID should not be empty")
	}
}

func TestInventoryApp_AddLot_defaultExpiryFromShelfLife(t *testing.T) {
	inventoryRepo := inventorymocks.NewInventoryRepository(t)
	facilityRepo := facilitymocks.NewFacilityRepository(t)

	facilityRepo.On("GetBloodBank", mock.Anything, "bank-1").
		Return(&model.BloodBank{ID: "bank-1"}, nil).Once()

	// Platelets keep for 5 days
	wantExpiry := time.Now().AddDate(0, 0, 5).Format("2006-01-02")
	inventoryRepo.On("InsertLot", mock.Anything, mock.MatchedBy(func(lot *model.InventoryLot) bool {
		return lot.ExpiryDate.Format("2006-01-02") == wantExpiry
	})).Return(nil).Once()

	app := appinventory.NewInventoryApp(inventoryRepo, facilityRepo)
	if _, err := app.AddLot(context.Background(), "bank-1", &model.AddLotRequest{
		BloodProduct: "Platelets",
		BloodType:    "O-",
		Quantity:     10,
	}); err != nil {
		t.Fatalf("AddLot() error = %v", err)
	}
}
