package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/dkovacs/chesscore-backend/internal/model"
)

const gameKeyPrefix = "game:"

var ErrNotFound = errors.New("game record not found")

// GameRecord is the persisted shape for one game: the running move list and,
// once the game ends, its result.
type GameRecord struct {
	ID        string           `json:"id"`
	Moves     []model.Move     `json:"moves"`
	Status    model.GameStatus `json:"status"`
	Winner    model.Color      `json:"winner,omitempty"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// GameStore wraps BadgerDB for persistent game records.
type GameStore struct {
	db *badger.DB
}

func Open(dir string) (*GameStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open game store: %w", err)
	}
	return &GameStore{db: db}, nil
}

func (s *GameStore) Close() error {
	return s.db.Close()
}

func (s *GameStore) SaveRecord(record GameRecord) error {
	record.UpdatedAt = time.Now()
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal game record: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(gameKeyPrefix+record.ID), value)
	})
}

func (s *GameStore) LoadRecord(gameID string) (GameRecord, error) {
	var record GameRecord
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(gameKeyPrefix + gameID))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &record)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return GameRecord{}, ErrNotFound
	}
	if err != nil {
		return GameRecord{}, fmt.Errorf("load game record: %w", err)
	}
	return record, nil
}

// Recorder returns the persistence collaborator for one game: a listener
// that rewrites the game's record after every commit.
func (s *GameStore) Recorder(gameID string) model.Listener {
	return &recorder{store: s, gameID: gameID}
}

type recorder struct {
	store  *GameStore
	gameID string
}

func (r *recorder) MoveApplied(move model.Move, state model.GameState) {
	record := GameRecord{
		ID:     r.gameID,
		Moves:  state.MoveHistory,
		Status: state.Status,
	}
	if state.Status == model.StatusCheckmate {
		record.Winner = move.Color
	}
	if err := r.store.SaveRecord(record); err != nil {
		log.Printf("failed to record game %s: %v", r.gameID, err)
	}
}
