package cart

import (
	"sync"

	"github.com/ikay-store/api/internal/logger"
	"github.com/ikay-store/api/internal/models"

	"github.com/shopspring/decimal"
)

// Snapshot 购物车当前状态快照
// Count 与 Total 为派生值，每次基于行项目重新计算，绝不落盘。
type Snapshot struct {
	Items []Item       `json:"items"`
	Count int          `json:"count"`
	Total models.Money `json:"total"`
}

// Subscriber 购物车变更订阅者
// 每次成功变更后在调用方 goroutine 内同步回调，
// 保证所有读者（角标、购物车页、结算页）看到同一份状态。
type Subscriber func(Snapshot)

// Store 购物车状态的唯一持有者
// 所有读写都经过 Store；每次成功变更后整体写穿到持久化后端。
type Store struct {
	mu      sync.Mutex
	items   []Item
	storage Storage
	subs    []Subscriber
}

// NewStore 创建购物车并从持久化后端恢复历史状态
// 读取失败或内容不可解析一律按「无历史购物车」处理（空状态起步），不致命。
func NewStore(storage Storage) *Store {
	s := &Store{storage: storage}
	if storage == nil {
		return s
	}
	items, err := storage.Load()
	if err != nil {
		logger.Warnw("cart_restore_failed", "error", err)
		return s
	}
	s.items = sanitizeItems(items)
	return s
}

// Subscribe 注册变更订阅者
func (s *Store) Subscribe(fn Subscriber) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add 把商品加入购物车
// 已存在同 ID 行项目时数量 +1，保留首次归一化的单价（后续传入的价格不生效）；
// 不存在时归一化价格后以数量 1 插入。
func (s *Store) Add(product Product) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == product.ID.String() {
			s.items[i].Quantity++
			s.persistLocked()
			snapshot := s.snapshotLocked()
			s.mu.Unlock()
			s.notify(snapshot)
			return
		}
	}
	s.items = append(s.items, Item{
		ID:       product.ID.String(),
		Name:     product.Name,
		Price:    product.Price.Money,
		ImageURL: product.ImageURL,
		Quantity: 1,
		Category: product.Category,
	})
	s.persistLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snapshot)
}

// Remove 删除指定商品的行项目
// ID 不存在时为静默空操作。
func (s *Store) Remove(id string) {
	s.mu.Lock()
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ID == id {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if !removed {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snapshot)
}

// SetQuantity 设置指定商品的数量
// 目标数量小于 1 时整体拒绝（行项目保持原样）；ID 不存在时为静默空操作。
func (s *Store) SetQuantity(id string, quantity int) {
	if !validQuantity(quantity) {
		return
	}
	s.mu.Lock()
	updated := false
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			updated = true
			break
		}
	}
	if !updated {
		s.mu.Unlock()
		return
	}
	s.persistLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snapshot)
}

// Clear 无条件清空购物车
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.persistLocked()
	snapshot := s.snapshotLocked()
	s.mu.Unlock()
	s.notify(snapshot)
}

// Items 返回行项目副本
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// Count 派生值：所有行项目数量之和
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return countOf(s.items)
}

// Total 派生值：所有行项目（单价 × 数量）之和
func (s *Store) Total() models.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return totalOf(s.items)
}

// Snapshot 返回行项目与派生值的一致快照
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Items: copyItems(s.items),
		Count: countOf(s.items),
		Total: totalOf(s.items),
	}
}

// persistLocked 整体写穿当前集合
// 写入失败只告警：购物车的持久化是尽力而为，内存状态仍然一致。
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(copyItems(s.items)); err != nil {
		logger.Warnw("cart_persist_failed", "error", err, "items", len(s.items))
	}
}

func (s *Store) notify(snapshot Snapshot) {
	s.mu.Lock()
	subs := make([]Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snapshot)
	}
}

func copyItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

func countOf(items []Item) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func totalOf(items []Item) models.Money {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal().Decimal)
	}
	return models.NewMoneyFromDecimal(total)
}

// sanitizeItems 清洗恢复出的历史数据
// 去掉重复 ID 与非法数量，保证集合不变量（唯一 ID、数量 ≥ 1）。
func sanitizeItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(items))
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID == "" {
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		if item.Price.IsNegative() {
			item.Price = models.Money{}
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
