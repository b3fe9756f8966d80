package config

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

// ConnectRedis menghubungkan client Redis untuk cache tabel.
// Redis bersifat opsional: kalau tidak dikonfigurasi, dashboard tetap
// berjalan tanpa cache.
func ConnectRedis() (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR kosong, cache tabel dinonaktifkan")
		return nil, nil
	}

	RDB := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: os.Getenv("REDIS_USER"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	res, err := RDB.Ping(Ctx).Result()
	if err != nil {
		return nil, err
	}

	log.Println("Berhasil terhubung ke Redis:", res)
	return RDB, nil
}
