package cart

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func newFileStore(t *testing.T) (*Store, *FileStorage) {
	t.Helper()
	storage, err := NewFileStorage(t.TempDir())
	if err != nil {
		t.Fatalf("create file storage failed: %v", err)
	}
	return NewStore(storage), storage
}

func mustProduct(t *testing.T, raw string) Product {
	t.Helper()
	var p Product
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal product failed: %v", err)
	}
	return p
}

func TestAddMergesDuplicateIDs(t *testing.T) {
	store, _ := newFileStore(t)

	store.Add(mustProduct(t, `{"id":1,"name":"Signature Logo Tee","price":"₹1,499.00","image_url":"/images/tshirts.png","category":"T-Shirts"}`))
	store.Add(mustProduct(t, `{"id":1,"name":"Signature Logo Tee","price":99,"image_url":"/images/tshirts.png"}`))

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after duplicate add, got %d", len(items))
	}
	if items[0].ID != "1" {
		t.Fatalf("expected id 1, got %q", items[0].ID)
	}
	if items[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", items[0].Quantity)
	}
	// 首次归一化的单价是权威值，后续传入的 99 不生效
	if !items[0].Price.Equal(decimal.NewFromInt(1499)) {
		t.Fatalf("expected price 1499, got %s", items[0].Price.String())
	}
}

func TestAddNormalizesFormattedPrice(t *testing.T) {
	store, _ := newFileStore(t)

	store.Add(mustProduct(t, `{"id":"sku-9","name":"Premium Urban Hoodie","price":"₹2,499.00","image_url":"/images/hoodies.png"}`))

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].Price.Equal(decimal.NewFromInt(2499)) {
		t.Fatalf("expected normalized price 2499, got %s", items[0].Price.String())
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity 1 on first insert, got %d", items[0].Quantity)
	}
}

func TestSetQuantityRejectsBelowOne(t *testing.T) {
	store, _ := newFileStore(t)
	store.Add(mustProduct(t, `{"id":3,"name":"Cargo Relaxed Trousers","price":2199}`))

	store.SetQuantity("3", 0)
	store.SetQuantity("3", -1)

	items := store.Items()
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity guard to keep 1, got %d", items[0].Quantity)
	}

	store.SetQuantity("3", 4)
	if got := store.Items()[0].Quantity; got != 4 {
		t.Fatalf("expected quantity 4, got %d", got)
	}
}

func TestSetQuantityOnEmptyCartIsNoop(t *testing.T) {
	store, _ := newFileStore(t)

	store.SetQuantity("5", 0)

	if count := store.Count(); count != 0 {
		t.Fatalf("expected empty cart, got count %d", count)
	}
}

func TestRemoveMissingIDKeepsCollection(t *testing.T) {
	store, _ := newFileStore(t)
	for _, raw := range []string{
		`{"id":1,"name":"A","price":100}`,
		`{"id":2,"name":"B","price":200}`,
		`{"id":3,"name":"C","price":300}`,
	} {
		store.Add(mustProduct(t, raw))
	}

	store.Remove("7")

	items := store.Items()
	if len(items) != 3 {
		t.Fatalf("expected 3 items after removing missing id, got %d", len(items))
	}

	store.Remove("2")
	items = store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, item := range items {
		if item.ID == "2" {
			t.Fatalf("item 2 should have been removed")
		}
	}
}

func TestDerivedValuesStayConsistent(t *testing.T) {
	store, _ := newFileStore(t)
	store.Add(mustProduct(t, `{"id":1,"name":"A","price":"₹1,899.00"}`))
	store.Add(mustProduct(t, `{"id":2,"name":"B","price":1299}`))
	store.Add(mustProduct(t, `{"id":1,"name":"A","price":1}`))
	store.SetQuantity("2", 3)

	items := store.Items()
	wantCount := 0
	wantTotal := decimal.Zero
	for _, item := range items {
		wantCount += item.Quantity
		wantTotal = wantTotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	if got := store.Count(); got != wantCount {
		t.Fatalf("count mismatch: got %d want %d", got, wantCount)
	}
	if !store.Total().Equal(wantTotal) {
		t.Fatalf("total mismatch: got %s want %s", store.Total().String(), wantTotal.StringFixed(2))
	}
	// 1899*2 + 1299*3 = 7695
	if !store.Total().Equal(decimal.NewFromInt(7695)) {
		t.Fatalf("expected total 7695, got %s", store.Total().String())
	}
}

func TestClearEmptiesCartAndPersists(t *testing.T) {
	store, storage := newFileStore(t)
	store.Add(mustProduct(t, `{"id":1,"name":"A","price":100}`))
	store.Add(mustProduct(t, `{"id":2,"name":"B","price":200}`))
	store.Add(mustProduct(t, `{"id":3,"name":"C","price":300}`))

	store.Clear()

	if store.Count() != 0 {
		t.Fatalf("expected count 0 after clear, got %d", store.Count())
	}
	if !store.Total().Equal(decimal.Zero) {
		t.Fatalf("expected total 0 after clear, got %s", store.Total().String())
	}
	persisted, err := storage.Load()
	if err != nil {
		t.Fatalf("load after clear failed: %v", err)
	}
	if len(persisted) != 0 {
		t.Fatalf("expected empty persisted array, got %d items", len(persisted))
	}
}

func TestRoundTripPersistence(t *testing.T) {
	dir := t.TempDir()
	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("create file storage failed: %v", err)
	}
	store := NewStore(storage)
	store.Add(mustProduct(t, `{"id":1,"name":"Essential White Linen Shirt","price":"₹1,899.00","image_url":"/images/shirt.png","category":"Shirts"}`))
	store.Add(mustProduct(t, `{"id":1,"name":"Essential White Linen Shirt","price":"₹1,899.00"}`))
	store.Add(mustProduct(t, `{"id":2,"name":"Classic Street Tee","price":1299,"category":"T-Shirts"}`))

	reloaded := NewStore(storage)

	want := store.Items()
	got := reloaded.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %d items after reload, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID {
			t.Fatalf("item %d id mismatch: got %q want %q", i, got[i].ID, want[i].ID)
		}
		if got[i].Quantity != want[i].Quantity {
			t.Fatalf("item %d quantity mismatch: got %d want %d", i, got[i].Quantity, want[i].Quantity)
		}
		if !got[i].Price.Equal(want[i].Price.Decimal) {
			t.Fatalf("item %d price mismatch: got %s want %s", i, got[i].Price.String(), want[i].Price.String())
		}
	}
	if reloaded.Count() != store.Count() {
		t.Fatalf("count mismatch after reload: got %d want %d", reloaded.Count(), store.Count())
	}
}

func TestRestoreFromCorruptedFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupted file failed: %v", err)
	}
	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("create file storage failed: %v", err)
	}

	store := NewStore(storage)

	if store.Count() != 0 {
		t.Fatalf("expected empty cart from corrupted storage, got count %d", store.Count())
	}
	// 恢复失败后购物车仍可正常使用
	store.Add(mustProduct(t, `{"id":1,"name":"A","price":100}`))
	if store.Count() != 1 {
		t.Fatalf("expected cart usable after corrupted restore, got count %d", store.Count())
	}
}

func TestRestoreSanitizesInvalidRows(t *testing.T) {
	dir := t.TempDir()
	raw := `[{"id":"1","name":"A","price":"100.00","quantity":0},{"id":"1","name":"A dup","price":"100.00","quantity":2},{"id":"","name":"no id","price":"5.00","quantity":1}]`
	if err := os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write cart file failed: %v", err)
	}
	storage, err := NewFileStorage(dir)
	if err != nil {
		t.Fatalf("create file storage failed: %v", err)
	}

	store := NewStore(storage)

	items := store.Items()
	if len(items) != 1 {
		t.Fatalf("expected 1 item after sanitize, got %d", len(items))
	}
	if items[0].Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", items[0].Quantity)
	}
}

func TestSubscribersObservePostMutationState(t *testing.T) {
	store, _ := newFileStore(t)

	var badgeCount int
	var checkoutTotal string
	store.Subscribe(func(s Snapshot) {
		badgeCount = s.Count
	})
	store.Subscribe(func(s Snapshot) {
		checkoutTotal = s.Total.String()
	})

	store.Add(mustProduct(t, `{"id":1,"name":"A","price":"₹1,499.00"}`))
	if badgeCount != 1 {
		t.Fatalf("expected badge subscriber to see count 1, got %d", badgeCount)
	}
	if checkoutTotal != "1499.00" {
		t.Fatalf("expected checkout subscriber to see total 1499.00, got %s", checkoutTotal)
	}

	store.Add(mustProduct(t, `{"id":1,"name":"A","price":"₹1,499.00"}`))
	if badgeCount != 2 {
		t.Fatalf("expected badge subscriber to see count 2, got %d", badgeCount)
	}

	store.Clear()
	if badgeCount != 0 || checkoutTotal != "0.00" {
		t.Fatalf("expected subscribers to see cleared cart, got count=%d total=%s", badgeCount, checkoutTotal)
	}
}

func TestStoreWithoutStorageStillWorks(t *testing.T) {
	store := NewStore(nil)
	store.Add(mustProduct(t, `{"id":1,"name":"A","price":100}`))
	if store.Count() != 1 {
		t.Fatalf("expected in-memory cart to work without storage, got count %d", store.Count())
	}
}
