package pkg

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/storalia/bodega/internal/domain"
)

// setupTestDB creates an in-memory SQLite database with the domain tables.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Client{}, &domain.Warehouse{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedClients(t *testing.T, db *gorm.DB, clients ...domain.Client) {
	t.Helper()
	for i := range clients {
		clients[i].MarkActive()
		if err := db.Create(&clients[i]).Error; err != nil {
			t.Fatalf("seed client: %v", err)
		}
	}
}

func TestList_ActiveSelector(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	active := domain.Client{Name: "Active Co", Identification: "A-1"}
	active.MarkActive()
	inactive := domain.Client{Name: "Gone Co", Identification: "G-1"}
	inactive.MarkInactive(domain.AuditStamp{By: "System"})
	if err := db.Create(&active).Error; err != nil {
		t.Fatal(err)
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		sel      domain.ActiveSelector
		wantLen  int
		wantName string
	}{
		{domain.ActiveOnly, 1, "Active Co"},
		{domain.InactiveOnly, 1, "Gone Co"},
		{domain.IgnoreActiveFlag, 2, ""},
	}
	for _, tt := range tests {
		result, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{}, tt.sel)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(result.Items) != tt.wantLen {
			t.Errorf("selector %v: got %d items; want %d", tt.sel, len(result.Items), tt.wantLen)
		}
		if tt.wantName != "" && result.Items[0].Name != tt.wantName {
			t.Errorf("selector %v: got %q; want %q", tt.sel, result.Items[0].Name, tt.wantName)
		}
	}
}

func TestList_SearchAcrossColumns(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seedClients(t, db,
		domain.Client{Name: "Acme Logistics", Identification: "301"},
		domain.Client{Name: "Beta Corp", Identification: "302", Email: "billing@acme-holdings.com"},
		domain.Client{Name: "Gamma SA", Identification: "303", LegalRepresentative: "Maria Acmeson"},
		domain.Client{Name: "Delta Ltd", Identification: "304", Phone: "555-0101"},
	)

	// The term matches name, email, and legal representative rows but not the
	// phone-only one.
	result, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{Search: "ACME"}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 3 {
		t.Errorf("TotalItems = %d; want 3", result.TotalItems)
	}

	// Secondary column only.
	result, err = ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{Search: "555-0101"}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 1 || result.Items[0].Name != "Delta Ltd" {
		t.Errorf("phone search: got %+v", result.Items)
	}

	// Whitespace-only search is treated as absent.
	result, err = ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{Search: "   "}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 4 {
		t.Errorf("blank search: TotalItems = %d; want 4", result.TotalItems)
	}
}

func TestList_FilterExactAndLike(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	w1 := domain.Warehouse{Name: "North 1", Location: "Industrial Park", Status: domain.WarehouseAvailable}
	w1.MarkActive()
	w2 := domain.Warehouse{Name: "North 2", Location: "Harbor Zone", Status: domain.WarehouseOccupied}
	w2.MarkActive()
	w3 := domain.Warehouse{Name: "South 1", Location: "Industrial Park", Status: domain.WarehouseAvailable}
	w3.MarkActive()
	for _, w := range []*domain.Warehouse{&w1, &w2, &w3} {
		if err := db.Create(w).Error; err != nil {
			t.Fatal(err)
		}
	}

	// Exact filter on status.
	result, err := ListQuery[domain.Warehouse](ctx, db, domain.WarehouseListConfig,
		domain.QuerySpec{Filters: map[string]string{"status": domain.WarehouseAvailable}}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 2 {
		t.Errorf("status filter: TotalItems = %d; want 2", result.TotalItems)
	}

	// Unknown filter keys are ignored, not rejected.
	result, err = ListQuery[domain.Warehouse](ctx, db, domain.WarehouseListConfig,
		domain.QuerySpec{Filters: map[string]string{"bogus_column": "x"}}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 3 {
		t.Errorf("unknown filter: TotalItems = %d; want 3", result.TotalItems)
	}

	// Empty filter values are ignored.
	result, err = ListQuery[domain.Warehouse](ctx, db, domain.WarehouseListConfig,
		domain.QuerySpec{Filters: map[string]string{"status": "  "}}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 3 {
		t.Errorf("empty filter: TotalItems = %d; want 3", result.TotalItems)
	}
}

func TestList_SortWithTieBreak(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Same location so the name tie-breaker decides ordering.
	seedClients(t, db,
		domain.Client{Name: "Charlie", Identification: "3"},
		domain.Client{Name: "Alice", Identification: "1"},
		domain.Client{Name: "Bob", Identification: "2"},
	)

	result, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{SortKey: "name"}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	names := []string{}
	for _, c := range result.Items {
		names = append(names, c.Name)
	}
	want := []string{"Alice", "Bob", "Charlie"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ascending sort = %v; want %v", names, want)
		}
	}

	result, err = ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{SortKey: "name", SortDesc: true}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Items[0].Name != "Charlie" {
		t.Errorf("descending sort starts with %q; want Charlie", result.Items[0].Name)
	}

	// Unknown sort key falls back to the default instead of failing.
	if _, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, domain.QuerySpec{SortKey: "evil;drop"}, domain.ActiveOnly); err != nil {
		t.Errorf("unknown sort key should not fail: %v", err)
	}
}

func TestList_PaginationAndClamping(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	var clients []domain.Client
	for i := 1; i <= 12; i++ {
		clients = append(clients, domain.Client{
			Name:           fmt.Sprintf("Client %02d", i),
			Identification: fmt.Sprintf("%d", i),
		})
	}
	seedClients(t, db, clients...)

	// Page 2 of size 5 holds items 6-10.
	result, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig,
		domain.QuerySpec{SortKey: "name", Page: 2, PageSize: 5}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.TotalItems != 12 || result.TotalPages != 3 {
		t.Errorf("TotalItems=%d TotalPages=%d; want 12/3", result.TotalItems, result.TotalPages)
	}
	if len(result.Items) != 5 || result.Items[0].Name != "Client 06" {
		t.Errorf("page 2 starts with %q (%d items); want Client 06 (5 items)", result.Items[0].Name, len(result.Items))
	}
	if !result.HasPrevious || !result.HasNext {
		t.Error("page 2 of 3 should have both previous and next")
	}

	// A page past the end clamps to the last page, not an empty one.
	result, err = ListQuery[domain.Client](ctx, db, domain.ClientListConfig,
		domain.QuerySpec{SortKey: "name", Page: 99, PageSize: 5}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Page != 3 {
		t.Errorf("clamped page = %d; want 3", result.Page)
	}
	if len(result.Items) != 2 {
		t.Errorf("last page has %d items; want 2", len(result.Items))
	}

	// A disallowed page size snaps to the default.
	result, err = ListQuery[domain.Client](ctx, db, domain.ClientListConfig,
		domain.QuerySpec{PageSize: 7}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.PageSize != domain.DefaultPageSize {
		t.Errorf("PageSize = %d; want %d", result.PageSize, domain.DefaultPageSize)
	}
}

func TestList_EmptyResult(t *testing.T) {
	db := setupTestDB(t)

	result, err := ListQuery[domain.Client](context.Background(), db, domain.ClientListConfig, domain.QuerySpec{Page: 5}, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if result.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
	if result.TotalItems != 0 || result.TotalPages != 0 {
		t.Errorf("empty set: TotalItems=%d TotalPages=%d", result.TotalItems, result.TotalPages)
	}
	if result.Page != 1 {
		t.Errorf("Page = %d; want 1 on an empty set", result.Page)
	}
	if result.HasNext || result.HasPrevious {
		t.Error("empty set should have no previous/next")
	}
}

func TestList_Repeatable(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	seedClients(t, db,
		domain.Client{Name: "One", Identification: "1"},
		domain.Client{Name: "Two", Identification: "2"},
	)

	spec := domain.QuerySpec{Search: "o", SortKey: "name", Page: 1, PageSize: 10}
	first, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, spec, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	second, err := ListQuery[domain.Client](ctx, db, domain.ClientListConfig, spec, domain.ActiveOnly)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if first.TotalItems != second.TotalItems || len(first.Items) != len(second.Items) {
		t.Errorf("repeat listing differed: %d/%d vs %d/%d",
			first.TotalItems, len(first.Items), second.TotalItems, len(second.Items))
	}
}
