package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"dataagent/models"

	"github.com/dgraph-io/badger/v4"
)

const (
	sessionKey   = "session:state"
	resultPrefix = "result:"

	// fixed width so timestamps sort as strings
	createdAtLayout = "2006-01-02T15:04:05.000000000Z"
)

var ErrNotFound = errors.New("not found")

// DB keeps the live session snapshot and recent results. It runs badger in memory only,
// so nothing outlives the process.
type DB struct {
	badgerDB  *badger.DB
	resultTTL time.Duration
}

// StoredResult is a result kept for later lookup by ID.
type StoredResult struct {
	ID        string             `json:"id"`
	CreatedAt string             `json:"created_at"`
	Result    models.QueryResult `json:"result"`
}

func New(resultTTL time.Duration) (*DB, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil // Disable badger logging for cleaner output

	badgerDB, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return &DB{badgerDB: badgerDB, resultTTL: resultTTL}, nil
}

func (d *DB) Close() error {
	return d.badgerDB.Close()
}

// SaveSession replaces the session snapshot in one transaction.
func (d *DB) SaveSession(data []byte) error {
	return d.badgerDB.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(sessionKey), data)
	})
}

func (d *DB) LoadSession() ([]byte, error) {
	var data []byte
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(sessionKey))
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	return data, err
}

func (d *DB) StoreResult(id string, result models.QueryResult) error {
	stored := StoredResult{
		ID:        id,
		CreatedAt: time.Now().UTC().Format(createdAtLayout),
		Result:    result,
	}
	data, err := json.Marshal(stored)
	if err != nil {
		return err
	}

	return d.badgerDB.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(resultPrefix+id), data)
		if d.resultTTL > 0 {
			entry = entry.WithTTL(d.resultTTL)
		}
		return txn.SetEntry(entry)
	})
}

func (d *DB) GetResult(id string) (*StoredResult, error) {
	var stored StoredResult
	err := d.badgerDB.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(resultPrefix + id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &stored)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// ListResults returns stored results, newest first.
func (d *DB) ListResults() ([]StoredResult, error) {
	results := []StoredResult{}

	err := d.badgerDB.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(resultPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), resultPrefix)

			err := item.Value(func(val []byte) error {
				var stored StoredResult
				if err := json.Unmarshal(val, &stored); err != nil {
					return fmt.Errorf("result %s: %w", id, err)
				}
				results = append(results, stored)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt > results[j].CreatedAt
	})
	return results, err
}
