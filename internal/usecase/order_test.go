package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/errors"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/domain/model"
	"github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/test"
	. "github.com/Cucholambr3ta/App-Ajicolor-sub001/internal/usecase"
)

func TestNewOrderNumber(t *testing.T) {
	first := NewOrderNumber()
	second := NewOrderNumber()
	if !strings.HasPrefix(first, "P-") || len(first) != 10 {
		t.Fatalf("unexpected order number format %q", first)
	}
	if first == second {
		t.Fatalf("expected distinct numbers, got %q twice", first)
	}
	if first != strings.ToUpper(first) {
		t.Fatalf("expected uppercase number, got %q", first)
	}
}

func TestOrderPlace(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)

	items := []model.OrderItem{
		{ProductID: "aji-rojo", ProductName: "Aji rojo", Quantity: 2, UnitPrice: 3.5},
		{ProductID: "aji-verde", ProductName: "Aji verde", Quantity: 1, UnitPrice: 2.75},
	}
	order, err := uc.Place(context.Background(), 7, items)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.UserID != 7 || order.Status != model.OrderStatusCreated {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}

	stored, err := repo.ListItems(context.Background(), order.Number)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stored) != 2 {
		t.Fatalf("expected 2 items, got %d", len(stored))
	}
	for _, item := range stored {
		if item.OrderNumber != order.Number {
			t.Fatalf("expected item stamped with %q, got %q", order.Number, item.OrderNumber)
		}
	}
}

func TestOrderPlaceEmpty(t *testing.T) {
	uc := NewOrderUseCase(test.NewOrderRepositoryStub())
	if _, err := uc.Place(context.Background(), 7, nil); !errors.Is(err, domainErrors.ErrEmptyOrder) {
		t.Fatalf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestOrderPlaceInsertFailure(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	repo.InsertFn = func(context.Context, *model.Order) error { return errors.New("boom") }
	uc := NewOrderUseCase(repo)
	if _, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}}); err == nil {
		t.Fatal("expected insert failure to propagate")
	}
}

func TestOrderUpdateStatusStampsMilestoneOnce(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	order, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	uc.SetNow(func() time.Time { return first })
	if err := uc.UpdateStatus(context.Background(), order.Number, model.OrderStatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stored, _ := repo.GetByNumber(context.Background(), order.Number)
	if stored.Status != model.OrderStatusConfirmed {
		t.Fatalf("unexpected status %q", stored.Status)
	}
	if stored.ConfirmedAt == nil || !stored.ConfirmedAt.Equal(first) {
		t.Fatalf("expected confirmation stamp %v, got %v", first, stored.ConfirmedAt)
	}

	// A later transition back through the same status keeps the original stamp.
	uc.SetNow(func() time.Time { return first.Add(time.Hour) })
	if err := uc.UpdateStatus(context.Background(), order.Number, model.OrderStatusConfirmed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ = repo.GetByNumber(context.Background(), order.Number)
	if !stored.ConfirmedAt.Equal(first) {
		t.Fatalf("expected stamp to stay %v, got %v", first, stored.ConfirmedAt)
	}
}

func TestOrderUpdateStatusUnknownOrder(t *testing.T) {
	uc := NewOrderUseCase(test.NewOrderRepositoryStub())
	if err := uc.UpdateStatus(context.Background(), "P-MISSING", model.OrderStatusShipped); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderAssignDispatch(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	order, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := uc.AssignDispatch(context.Background(), order.Number, "D-778899"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	stored, _ := repo.GetByNumber(context.Background(), order.Number)
	if stored.DispatchNumber == nil || *stored.DispatchNumber != "D-778899" {
		t.Fatalf("unexpected dispatch %v", stored.DispatchNumber)
	}
}

func TestOrderCountAndDelete(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	order, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	count, err := uc.Count(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 order, got %d", count)
	}

	if err := uc.Delete(context.Background(), order.Number); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.GetByNumber(context.Background(), order.Number); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected order to be gone, got %v", err)
	}
	items, _ := uc.Items(context.Background(), order.Number)
	if len(items) != 0 {
		t.Fatalf("expected items to be gone, got %d", len(items))
	}
	if err := uc.Delete(context.Background(), order.Number); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestOrderObserveByUserSeesPlacement(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream, err := uc.ObserveByUser(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot := <-stream; len(snapshot) != 0 {
		t.Fatalf("expected empty initial snapshot, got %d orders", len(snapshot))
	}

	order, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case snapshot := <-stream:
		if len(snapshot) != 1 || snapshot[0].Number != order.Number {
			t.Fatalf("unexpected snapshot %+v", snapshot)
		}
	case <-time.After(time.Second):
		t.Fatal("expected a refreshed snapshot after placement")
	}
}

func TestOrderObserveByStatusFilters(t *testing.T) {
	repo := test.NewOrderRepositoryStub()
	uc := NewOrderUseCase(repo)
	order, err := uc.Place(context.Background(), 7, []model.OrderItem{{ProductID: "a", Quantity: 1}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stream, err := uc.ObserveByStatus(ctx, 7, model.OrderStatusShipped)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if snapshot := <-stream; len(snapshot) != 0 {
		t.Fatalf("expected no shipped orders yet, got %d", len(snapshot))
	}

	if err := uc.UpdateStatus(context.Background(), order.Number, model.OrderStatusShipped); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	select {
	case snapshot := <-stream:
		if len(snapshot) != 1 || snapshot[0].Status != model.OrderStatusShipped {
			t.Fatalf("unexpected snapshot %+v", snapshot)
		}
	case <-time.After(time.Second):
		t.Fatal("expected the shipped order to appear in the filtered stream")
	}
}
