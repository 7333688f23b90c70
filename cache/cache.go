// Package cache stores encoded renders in a bolt database keyed by a
// digest of the full render request. The generators are deterministic, so
// a cached PNG is always byte identical to what a fresh render would
// produce.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"
	"time"

	"github.com/boltdb/bolt"
	"github.com/randomfusion/sdk/visuals"
)

var rendersBucket = []byte("renders")

type Cache struct {
	db     *bolt.DB
	logger *log.Logger
}

func New(path string, logger *log.Logger) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening cache at %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(rendersBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Println("render cache open at ", path)
	return &Cache{db: db, logger: logger}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) Get(key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(rendersBucket).Get([]byte(key)); v != nil {
			data = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		c.logger.Println("cache miss for ", key)
		return nil, false, nil
	}
	return data, true, nil
}

func (c *Cache) Put(key string, data []byte) error {
	c.logger.Println("caching ", len(data), " bytes for ", key)
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(rendersBucket).Put([]byte(key), data)
	})
}

// Key derives the cache key for one render request.
func Key(seedHex string, style visuals.Style, opts visuals.Options) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d|%d|%d|%d|%d",
		seedHex, style, opts.Width, opts.Height, opts.GridSize, opts.NumCircles, opts.BaseStroke)))
	return hex.EncodeToString(sum[:])
}
