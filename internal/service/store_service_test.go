package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/Towaiji/InventoryPro/internal/model"
)

func TestCreateStore_StampsOwner(t *testing.T) {
	repo := newMockStoreRepo()
	svc := NewStoreService(repo)
	owner := uuid.New()

	created, err := svc.CreateStore(owner, &model.Store{Name: "Main St", Location: "Austin"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.UserID != owner {
		t.Errorf("store not stamped with the caller's id")
	}

	stores, err := svc.ListStores(owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stores) != 1 || stores[0].Name != "Main St" {
		t.Errorf("unexpected store list: %+v", stores)
	}
}

func TestCreateStore_RequiresName(t *testing.T) {
	svc := NewStoreService(newMockStoreRepo())

	_, err := svc.CreateStore(uuid.New(), &model.Store{Location: "Austin"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got: %v", err)
	}
}

func TestListStores_ScopedToCaller(t *testing.T) {
	repo := newMockStoreRepo()
	svc := NewStoreService(repo)
	alice := uuid.New()
	bob := uuid.New()
	repo.addStore(alice, "Alice's")
	repo.addStore(bob, "Bob's")

	stores, err := svc.ListStores(alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(stores) != 1 || stores[0].Name != "Alice's" {
		t.Errorf("expected only the caller's stores, got %+v", stores)
	}
}

func TestUpdateStore_NotOwned(t *testing.T) {
	repo := newMockStoreRepo()
	svc := NewStoreService(repo)
	owner := uuid.New()
	intruder := uuid.New()
	storeID := repo.addStore(owner, "Main St")

	_, err := svc.UpdateStore(intruder, storeID, &model.Store{Name: "Hijacked"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got: %v", err)
	}
	if repo.stores[storeID].Name != "Main St" {
		t.Errorf("store mutated by unauthorized update")
	}
}

func TestDeleteStore(t *testing.T) {
	repo := newMockStoreRepo()
	svc := NewStoreService(repo)
	owner := uuid.New()
	intruder := uuid.New()
	storeID := repo.addStore(owner, "Main St")

	if err := svc.DeleteStore(intruder, storeID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for foreign delete, got: %v", err)
	}
	if err := svc.DeleteStore(owner, storeID); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
	if err := svc.DeleteStore(owner, storeID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got: %v", err)
	}
}

func TestStores_NotAuthenticated(t *testing.T) {
	svc := NewStoreService(newMockStoreRepo())

	if _, err := svc.ListStores(uuid.Nil); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("ListStores: expected ErrNotAuthenticated, got: %v", err)
	}
	if _, err := svc.CreateStore(uuid.Nil, &model.Store{Name: "X"}); !errors.Is(err, ErrNotAuthenticated) {
		t.Errorf("CreateStore: expected ErrNotAuthenticated, got: %v", err)
	}
}
