package connstore

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/anyproto/any-sync/app"
	"github.com/anyproto/any-sync/app/logger"
	"github.com/dgraph-io/badger/v4"
	"github.com/dgraph-io/badger/v4/options"
	"go.uber.org/zap"
	"gopkg.in/mgo.v2/bson"

	"github.com/dimspell/gladiator-launcher/model"
)

const (
	CName = "launcher.connstore"

	keyPrefix = "conn/"

	defaultGCInterval    = 7 * time.Hour
	defaultMaxGCDuration = time.Minute
	defaultGCThreshold   = 0.5
)

var (
	_ app.ComponentRunnable = (*Store)(nil)

	log = logger.NewNamed(CName)

	ErrNotFound = errors.New("connection not found")
	ErrNotOpen  = errors.New("store is not open")
)

type gcConfig struct {
	interval    time.Duration
	maxDuration time.Duration
	threshold   float64
}

// Store keeps the saved connections of the Home screen in a badger database.
type Store struct {
	dir string
	cfg gcConfig
	db  *badger.DB
}

func New(dir string) *Store {
	return &Store{
		dir: dir,
		cfg: gcConfig{
			interval:    defaultGCInterval,
			maxDuration: defaultMaxGCDuration,
			threshold:   defaultGCThreshold,
		},
	}
}

func (s *Store) Init(_ *app.App) error {
	log.Info("initializing connection store")
	return nil
}

func (s *Store) Name() string {
	return CName
}

// Run opens the database and starts value log GC until ctx is done.
func (s *Store) Run(ctx context.Context) error {
	log.Info("call Run", zap.String("dir", s.dir))

	opts := badger.DefaultOptions(s.dir).
		WithLogger(badgerLogger{}).
		WithCompression(options.None).
		WithZSTDCompressionLevel(0)

	db, err := badger.Open(opts)
	if err != nil {
		return fmt.Errorf("failed to open badger db: %w", err)
	}
	s.db = db

	go startRunGC(ctx, s.cfg, s.db)
	return nil
}

func (s *Store) Close(_ context.Context) error {
	log.Info("call Close")
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put inserts or replaces the connection under its ID.
func (s *Store) Put(c model.SavedConnection) error {
	if s.db == nil {
		return ErrNotOpen
	}
	if c.Addr == "" {
		return errors.New("connection address is empty")
	}

	data, err := bson.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode connection: %w", err)
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(connKey(c.ID()), data)
	})
}

func (s *Store) Get(id string) (model.SavedConnection, error) {
	var c model.SavedConnection
	if s.db == nil {
		return c, ErrNotOpen
	}

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(connKey(id))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return bson.Unmarshal(val, &c)
		})
	})
	return c, err
}

// List returns all connections, most recently used first.
func (s *Store) List() ([]model.SavedConnection, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	var conns []model.SavedConnection
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var c model.SavedConnection
			err := it.Item().Value(func(val []byte) error {
				return bson.Unmarshal(val, &c)
			})
			if err != nil {
				log.Warn("skipping undecodable connection", zap.ByteString("key", it.Item().Key()), zap.Error(err))
				continue
			}
			conns = append(conns, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(conns, func(i, j int) bool {
		return conns[i].LastUsed.After(conns[j].LastUsed)
	})
	return conns, nil
}

func (s *Store) Delete(id string) error {
	if s.db == nil {
		return ErrNotOpen
	}

	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(connKey(id)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %s", ErrNotFound, id)
			}
			return err
		}
		return txn.Delete(connKey(id))
	})
}

func connKey(id string) []byte {
	return []byte(keyPrefix + id)
}

type dbGC interface {
	RunValueLogGC(float64) error
}

func startRunGC(ctx context.Context, cfg gcConfig, db dbGC) {
	log.Debug("starting badger garbage collection routine")
	ticker := time.NewTicker(cfg.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("stopping badger garbage collection routine")
			return
		case <-ticker.C:
			start := time.Now()
			rounds := 0

			for time.Since(start) < cfg.maxDuration {
				rounds++
				if err := db.RunValueLogGC(cfg.threshold); err != nil {
					if !errors.Is(err, badger.ErrNoRewrite) {
						log.Warn("badger gc failed", zap.Error(err))
					}
					break
				}
			}

			log.Debug("badger garbage collection completed",
				zap.Duration("duration", time.Since(start)),
				zap.Int("rounds", rounds))
		}
	}
}
