package persistence

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	badger "github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/pb"
)

// BadgerStore keeps the serialized state under a single key in a local
// BadgerDB. With no data directory configured it runs fully in memory,
// which is what the tests use.
type BadgerStore struct {
	db      *badger.DB
	key     []byte
	dataDir string
	logger  *slog.Logger
}

// BadgerStoreOptionFunc configures a BadgerStore before it opens.
type BadgerStoreOptionFunc func(*BadgerStore)

// WithDataDir sets the on-disk location. Empty means in-memory.
func WithDataDir(dataDir string) BadgerStoreOptionFunc {
	return func(b *BadgerStore) {
		b.dataDir = dataDir
	}
}

// WithLogger sets the logger badger and the store itself log through.
func WithLogger(logger *slog.Logger) BadgerStoreOptionFunc {
	return func(b *BadgerStore) {
		b.logger = logger
	}
}

// WithKey overrides the key the state is stored under.
func WithKey(key string) BadgerStoreOptionFunc {
	return func(b *BadgerStore) {
		b.key = []byte(key)
	}
}

// NewBadgerStore opens the store, creating the data directory if needed.
func NewBadgerStore(opts ...BadgerStoreOptionFunc) (*BadgerStore, error) {
	b := &BadgerStore{
		key: []byte(StateKey),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.logger == nil {
		// Throw-away logger so we don't need guards around every log call
		b.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	var badgerOpts badger.Options
	if b.dataDir == "" {
		badgerOpts = badger.DefaultOptions("").
			WithInMemory(true)
	} else {
		if _, err := os.Stat(b.dataDir); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read data dir: %w", err)
			}
			if err := os.MkdirAll(b.dataDir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create data dir: %w", err)
			}
		}
		badgerOpts = badger.DefaultOptions(filepath.Join(b.dataDir, "store"))
	}
	badgerOpts = badgerOpts.
		WithLogger(newBadgerLogger(b.logger)).
		// The default INFO logging is a bit verbose
		WithLoggingLevel(badger.WARNING)
	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, err
	}
	b.db = db
	return b, nil
}

// Load returns the persisted payload, or ErrNotFound.
func (b *BadgerStore) Load() ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Save overwrites the persisted payload.
func (b *BadgerStore) Save(data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.key, data)
	})
}

// Watch subscribes to writes on the state key and delivers each new
// payload to fn until ctx is cancelled. Writes from this process are
// reported too; the store's full-replacement merge makes that harmless.
func (b *BadgerStore) Watch(ctx context.Context, fn func(data []byte)) error {
	go func() {
		err := b.db.Subscribe(ctx, func(kv *badger.KVList) error {
			for _, item := range kv.Kv {
				if bytes.Equal(item.Key, b.key) && len(item.Value) > 0 {
					fn(append([]byte(nil), item.Value...))
				}
			}
			return nil
		}, []pb.Match{{Prefix: b.key}})
		if err != nil && !errors.Is(err, context.Canceled) {
			b.logger.Warn("state watch ended", "error", err)
		}
	}()
	return nil
}

// Close releases the underlying database.
func (b *BadgerStore) Close() error {
	return b.db.Close()
}

// badgerLogger adapts slog to badger's printf-style logger.
type badgerLogger struct {
	logger *slog.Logger
}

func newBadgerLogger(logger *slog.Logger) *badgerLogger {
	return &badgerLogger{logger: logger}
}

func (l *badgerLogger) Errorf(format string, args ...any) {
	l.logger.Error(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Warningf(format string, args ...any) {
	l.logger.Warn(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Infof(format string, args ...any) {
	l.logger.Info(fmt.Sprintf(format, args...), "component", "badger")
}

func (l *badgerLogger) Debugf(format string, args ...any) {
	l.logger.Debug(fmt.Sprintf(format, args...), "component", "badger")
}
