package file_system

import (
	"errors"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/livedirtree/treerelay/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BadgerStore keeps the snapshot under a single key in a badger database.
type BadgerStore struct {
	db *badger.DB
}

func NewBadgerStore(dataDir string) (*BadgerStore, error) {
	db, err := OpenBadger(dataDir)
	if err != nil {
		return nil, err
	}
	return &BadgerStore{db: db}, nil
}

// OpenBadger opens a badger database in dataDir, logging through zerolog at
// the global level.
func OpenBadger(dataDir string) (*badger.DB, error) {
	if err := os.MkdirAll(dataDir, os.ModePerm); err != nil {
		return nil, err
	}

	options := badger.DefaultOptions(dataDir)
	options.Logger = &logger.RelayLogger{}

	badgerLogLevel := badger.INFO
	switch log.Logger.GetLevel() {
	case zerolog.DebugLevel, zerolog.TraceLevel:
		badgerLogLevel = badger.DEBUG
	case zerolog.WarnLevel:
		badgerLogLevel = badger.WARNING
	case zerolog.ErrorLevel, zerolog.FatalLevel, zerolog.PanicLevel:
		badgerLogLevel = badger.ERROR
	}
	options = options.WithLoggingLevel(badgerLogLevel)

	db, err := badger.Open(options)
	if err != nil {
		log.Error().Err(err).Str("dir", dataDir).Msg("Error opening database")
		return nil, err
	}
	log.Debug().Str("dir", dataDir).Msg("Opened database")

	return db, nil
}

func (b *BadgerStore) Load() ([]byte, error) {
	var data []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey())
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNoSnapshot
	}
	return data, err
}

func (b *BadgerStore) Save(data []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey(), data)
	})
}

func (b *BadgerStore) Close() error {
	return b.db.Close()
}
