package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const tableCacheTTL = 30 * time.Minute

// TableCache menyimpan hasil pembacaan tabel penuh di Redis supaya
// dashboard tidak membaca ulang seluruh tabel pada setiap render.
// Cache dikosongkan setiap kali ingest berhasil.
type TableCache struct {
	rdb *redis.Client
}

func NewTableCache(rdb *redis.Client) *TableCache {
	return &TableCache{rdb: rdb}
}

func tableCacheKey(tabel string) string {
	return "tabel:" + tabel
}

// Get mengambil isi tabel dari cache, (nil, nil) jika tidak ada
func (tc *TableCache) Get(ctx context.Context, tabel string) ([]map[string]interface{}, error) {
	if tc == nil || tc.rdb == nil {
		return nil, nil
	}
	val, err := tc.rdb.Get(ctx, tableCacheKey(tabel)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rows []map[string]interface{}
	if err := json.Unmarshal([]byte(val), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Set menyimpan isi tabel ke cache
func (tc *TableCache) Set(ctx context.Context, tabel string, rows []map[string]interface{}) error {
	if tc == nil || tc.rdb == nil {
		return nil
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return tc.rdb.Set(ctx, tableCacheKey(tabel), b, tableCacheTTL).Err()
}

// Invalidate menghapus entry cache sebuah tabel
func (tc *TableCache) Invalidate(ctx context.Context, tabel string) error {
	if tc == nil || tc.rdb == nil {
		return nil
	}
	return tc.rdb.Del(ctx, tableCacheKey(tabel)).Err()
}
