package cart

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// StorageKey 购物车持久化固定键
// 沿用前端时代的 localStorage 键名，整个应用只有这一份购物车存档。
const StorageKey = "ikay_cart"

// Storage 购物车持久化后端
// Load 在启动时读取一次；Save 在每次变更后整体覆写（无增量、无版本号）。
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStorage 基于单个 JSON 文件的持久化后端
type FileStorage struct {
	path string
}

// NewFileStorage 创建文件持久化后端
// 数据落在 <dir>/ikay_cart.json。
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart data dir failed: %w", err)
	}
	return &FileStorage{path: filepath.Join(dir, StorageKey+".json")}, nil
}

// Load 读取存档
// 文件不存在视为无历史购物车；内容不可解析返回错误，由调用方按空状态处理。
func (f *FileStorage) Load() ([]Item, error) {
	raw, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode cart file failed: %w", err)
	}
	return items, nil
}

// Save 整体覆写存档
// 空购物车写入空数组而不是删除文件，保持「读到什么就是什么」的语义。
func (f *FileStorage) Save(items []Item) error {
	if items == nil {
		items = []Item{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.path, raw, 0o644)
}
