package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ikay-store/api/internal/models"
	"github.com/ikay-store/api/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupProductServiceTest(t *testing.T) *ProductService {
	t.Helper()

	dsn := fmt.Sprintf("file:product_service_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewProductService(repository.NewProductRepository(db))
}

func TestCreateProductValidatesInput(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ProductInput{Name: "  ", PriceAmount: decimal.NewFromInt(100)}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid for empty name, got %v", err)
	}
	if _, err := svc.Create(ctx, ProductInput{Name: "Tee", PriceAmount: decimal.NewFromInt(-1)}); !errors.Is(err, ErrProductInvalid) {
		t.Fatalf("expected ErrProductInvalid for negative price, got %v", err)
	}

	product, err := svc.Create(ctx, ProductInput{
		Name:        " Classic Black Tee ",
		Category:    "T-Shirts",
		PriceAmount: decimal.NewFromInt(799),
		ImageURL:    "/images/tshirts.png",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Name != "Classic Black Tee" {
		t.Fatalf("expected trimmed name, got %q", product.Name)
	}
	if !product.IsActive {
		t.Fatalf("expected product active by default")
	}
	if product.PriceAmount.String() != "799.00" {
		t.Fatalf("expected price 799.00, got %s", product.PriceAmount.String())
	}
}

func TestCreateInactiveProductStaysInactive(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	inactive := false
	created, err := svc.Create(ctx, ProductInput{
		Name:        "Draft Overshirt",
		Category:    "Shirts",
		PriceAmount: decimal.NewFromInt(2099),
		IsActive:    &inactive,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// 从数据库回读，确认 false 真实落库而不是被列默认值改写
	stored, err := svc.GetAdminByID(created.ID)
	if err != nil {
		t.Fatalf("reload product failed: %v", err)
	}
	if stored.IsActive {
		t.Fatalf("expected inactive product to persist as inactive")
	}
}

func TestListPublicOnlyReturnsActiveProducts(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	inactive := false
	if _, err := svc.Create(ctx, ProductInput{Name: "Hidden Hoodie", Category: "Hoodies", PriceAmount: decimal.NewFromInt(1799), IsActive: &inactive}); err != nil {
		t.Fatalf("create inactive failed: %v", err)
	}
	if _, err := svc.Create(ctx, ProductInput{Name: "Visible Shirt", Category: "Shirts", PriceAmount: decimal.NewFromInt(1899)}); err != nil {
		t.Fatalf("create active failed: %v", err)
	}

	products, total, err := svc.ListPublic(ctx, "", "", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected 1 public product, got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Visible Shirt" {
		t.Fatalf("expected Visible Shirt, got %q", products[0].Name)
	}

	adminProducts, adminTotal, err := svc.ListAdmin("", "", 1, 20)
	if err != nil {
		t.Fatalf("admin list failed: %v", err)
	}
	if adminTotal != 2 || len(adminProducts) != 2 {
		t.Fatalf("expected 2 admin products, got total=%d len=%d", adminTotal, len(adminProducts))
	}
}

func TestListPublicFiltersByCategory(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, ProductInput{Name: "Indigo Selvedge Jeans", Category: "Jeans", PriceAmount: decimal.NewFromInt(2499)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(ctx, ProductInput{Name: "Relaxed Linen Trousers", Category: "Trousers", PriceAmount: decimal.NewFromInt(1599)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	products, total, err := svc.ListPublic(ctx, "Jeans", "", 1, 20)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Category != "Jeans" {
		t.Fatalf("expected only jeans, got total=%d products=%+v", total, products)
	}
}

func TestGetPublicByIDHidesInactiveProduct(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	inactive := false
	product, err := svc.Create(ctx, ProductInput{Name: "Retired Tee", Category: "T-Shirts", PriceAmount: decimal.NewFromInt(699), IsActive: &inactive})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := svc.GetPublicByID(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound for inactive product, got %v", err)
	}
	if _, err := svc.GetAdminByID(product.ID); err != nil {
		t.Fatalf("admin must still see inactive product: %v", err)
	}
}

// fakeListCache 内存缓存，走与 Redis 相同的 JSON 编解码路径
type fakeListCache struct {
	data map[string][]byte
	dels int
}

func newFakeListCache() *fakeListCache {
	return &fakeListCache{data: make(map[string][]byte)}
}

func (f *fakeListCache) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (f *fakeListCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeListCache) Del(_ context.Context, key string) error {
	delete(f.data, key)
	f.dels++
	return nil
}

func TestListPublicCacheHitKeepsRealTotal(t *testing.T) {
	svc := setupProductServiceTest(t)
	fake := newFakeListCache()
	svc.cache = fake
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, ProductInput{
			Name:        fmt.Sprintf("Catalog Tee %d", i+1),
			Category:    "T-Shirts",
			PriceAmount: decimal.NewFromInt(999),
		}); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	// 第一次走库并回填缓存
	products, total, err := svc.ListPublic(ctx, "", "", 1, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 3 || len(products) != 2 {
		t.Fatalf("expected total=3 len=2 on miss, got total=%d len=%d", total, len(products))
	}
	if len(fake.data) != 1 {
		t.Fatalf("expected list cached after miss")
	}

	// 命中缓存后总数仍须是真实目录总数，而不是缓存页长度
	products, total, err = svc.ListPublic(ctx, "", "", 1, 2)
	if err != nil {
		t.Fatalf("cached list failed: %v", err)
	}
	if total != 3 || len(products) != 2 {
		t.Fatalf("expected total=3 len=2 on hit, got total=%d len=%d", total, len(products))
	}
}

func TestAdminWritesInvalidateListCache(t *testing.T) {
	svc := setupProductServiceTest(t)
	fake := newFakeListCache()
	svc.cache = fake
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{Name: "Seed Tee", Category: "T-Shirts", PriceAmount: decimal.NewFromInt(799)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, _, err := svc.ListPublic(ctx, "", "", 1, 20); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(fake.data) != 1 {
		t.Fatalf("expected list cached")
	}

	if _, err := svc.Update(ctx, product.ID, ProductInput{Name: "Seed Tee v2", Category: "T-Shirts", PriceAmount: decimal.NewFromInt(899)}); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if len(fake.data) != 0 {
		t.Fatalf("expected cache invalidated after update")
	}

	if _, total, err := svc.ListPublic(ctx, "", "", 1, 20); err != nil || total != 1 {
		t.Fatalf("expected refreshed list, total=%d err=%v", total, err)
	}
	if err := svc.Delete(ctx, product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(fake.data) != 0 || fake.dels < 2 {
		t.Fatalf("expected cache invalidated after delete, dels=%d", fake.dels)
	}
}

func TestUpdateAndDeleteProduct(t *testing.T) {
	svc := setupProductServiceTest(t)
	ctx := context.Background()

	product, err := svc.Create(ctx, ProductInput{Name: "Soft Beige Hoodie", Category: "Hoodies", PriceAmount: decimal.NewFromInt(1699)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Update(ctx, product.ID, ProductInput{
		Name:        "Soft Beige Hoodie v2",
		Category:    "Hoodies",
		PriceAmount: decimal.NewFromInt(1899),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PriceAmount.String() != "1899.00" {
		t.Fatalf("expected updated price 1899.00, got %s", updated.PriceAmount.String())
	}

	if err := svc.Delete(ctx, product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := svc.GetAdminByID(product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, product.ID); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on double delete, got %v", err)
	}
}
