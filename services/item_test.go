package services

import (
	"sync"
	"testing"

	"github.com/harborline/catalog_api/dto"
	"github.com/harborline/catalog_api/shared"
)

func newTestItemService() *ItemService {
	return &ItemService{nextID: 1}
}

func mustCreate(t *testing.T, svc *ItemService, name string, price float64) int {
	t.Helper()
	item, err := svc.Create(dto.ItemRequest{Name: name, Price: price})
	if err != nil {
		t.Fatalf("unexpected create error: %v", err)
	}
	return item.ID
}

func TestItemService_CreateAssignsSequentialIDs(t *testing.T) {
	svc := newTestItemService()

	for i := 1; i <= 3; i++ {
		id := mustCreate(t, svc, "Widget", 1.5)
		if id != i {
			t.Fatalf("expected id %d, got %d", i, id)
		}
	}
}

func TestItemService_CreateRejectsInvalidDraft(t *testing.T) {
	svc := newTestItemService()

	_, err := svc.Create(dto.ItemRequest{Name: " ", Price: 0})
	appErr, ok := shared.GetAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %v", err)
	}
	if appErr.StatusCode != 400 {
		t.Fatalf("expected status 400, got %d", appErr.StatusCode)
	}

	problems, ok := appErr.Data.(map[string][]string)
	if !ok {
		t.Fatalf("expected problem map, got %T", appErr.Data)
	}
	if len(problems["name"]) == 0 || len(problems["price"]) == 0 {
		t.Fatalf("expected both fields reported, got %v", problems)
	}
}

func TestItemService_IDsNeverReusedAfterDelete(t *testing.T) {
	svc := newTestItemService()

	mustCreate(t, svc, "First", 1)
	second := mustCreate(t, svc, "Second", 2)

	if err := svc.Delete(second); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	third := mustCreate(t, svc, "Third", 3)
	if third <= second {
		t.Fatalf("expected id above %d after delete, got %d", second, third)
	}
}

func TestItemService_ConcurrentCreatesAssignUniqueIDs(t *testing.T) {
	svc := newTestItemService()

	const workers = 100
	ids := make(chan int, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- mustCreate(t, svc, "Widget", 1)
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("id %d assigned twice", id)
		}
		seen[id] = true
	}
	if len(seen) != workers {
		t.Fatalf("expected %d unique ids, got %d", workers, len(seen))
	}
}

func TestItemService_GetAndUpdateAndDelete(t *testing.T) {
	svc := newTestItemService()
	id := mustCreate(t, svc, "Widget", 9.99)

	item, err := svc.Get(id)
	if err != nil {
		t.Fatalf("unexpected get error: %v", err)
	}
	if item.Name != "Widget" || item.Price != 9.99 {
		t.Fatalf("unexpected item: %+v", item)
	}

	updated, err := svc.Update(id, dto.ItemRequest{Name: "Widget2", Price: 5})
	if err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}
	if updated.ID != id || updated.Name != "Widget2" || updated.Price != 5 {
		t.Fatalf("unexpected updated item: %+v", updated)
	}

	if err := svc.Delete(id); err != nil {
		t.Fatalf("unexpected delete error: %v", err)
	}

	_, err = svc.Get(id)
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404 after delete, got %v", err)
	}
}

func TestItemService_UpdateUnknownIDIsNotFound(t *testing.T) {
	svc := newTestItemService()

	_, err := svc.Update(42, dto.ItemRequest{Name: "Widget", Price: 1})
	appErr, ok := shared.GetAppError(err)
	if !ok || appErr.StatusCode != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
}

func TestItemService_UpdatePreservesPosition(t *testing.T) {
	svc := newTestItemService()

	first := mustCreate(t, svc, "First", 1)
	mustCreate(t, svc, "Second", 2)

	if _, err := svc.Update(first, dto.ItemRequest{Name: "First2", Price: 3}); err != nil {
		t.Fatalf("unexpected update error: %v", err)
	}

	page, err := svc.List(1, 10)
	if err != nil {
		t.Fatalf("unexpected list error: %v", err)
	}
	if page.Items[0].ID != first || page.Items[0].Name != "First2" {
		t.Fatalf("expected updated item to keep position 0, got %+v", page.Items)
	}
}

func TestItemService_ListPagination(t *testing.T) {
	svc := newTestItemService()
	for i := 0; i < 5; i++ {
		mustCreate(t, svc, "Widget", 1)
	}

	tests := []struct {
		name      string
		page      int
		pageSize  int
		wantErr   bool
		wantIDs   []int
		wantTotal int
	}{
		{name: "first page", page: 1, pageSize: 2, wantIDs: []int{1, 2}, wantTotal: 5},
		{name: "middle page", page: 2, pageSize: 2, wantIDs: []int{3, 4}, wantTotal: 5},
		{name: "short last page", page: 3, pageSize: 2, wantIDs: []int{5}, wantTotal: 5},
		{name: "past the end", page: 4, pageSize: 2, wantIDs: []int{}, wantTotal: 5},
		{name: "zero page", page: 0, pageSize: 2, wantErr: true},
		{name: "zero page size", page: 1, pageSize: 0, wantErr: true},
		{name: "negative page", page: -1, pageSize: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.List(tt.page, tt.pageSize)
			if tt.wantErr {
				appErr, ok := shared.GetAppError(err)
				if !ok || appErr.StatusCode != 400 {
					t.Fatalf("expected 400, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected list error: %v", err)
			}
			if result.Total != tt.wantTotal {
				t.Fatalf("expected total %d, got %d", tt.wantTotal, result.Total)
			}
			if len(result.Items) != len(tt.wantIDs) {
				t.Fatalf("expected %d items, got %d", len(tt.wantIDs), len(result.Items))
			}
			for i, id := range tt.wantIDs {
				if result.Items[i].ID != id {
					t.Fatalf("expected item %d at index %d, got %d", id, i, result.Items[i].ID)
				}
			}
		})
	}
}
