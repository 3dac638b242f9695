//go:generate go run go.uber.org/mock/mockgen -source=alert.go -destination=../mocks/mock_alert_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/ramyaaaa4/sign-language-recognition/domain"
	"github.com/ramyaaaa4/sign-language-recognition/errors"
)

type IAlertRepository interface {
	StoreAlert(alert domain.Alert) error
	ListUnhandled(limit int) ([]StoredAlert, error)
	ListByPatient(patientID string, limit int) ([]StoredAlert, error)
	MarkHandled(alertID uuid.UUID, handledBy, notes string, at time.Time) (StoredAlert, error)
}

// StoredAlert is the durable shape of an alert, including the triage fields
// a doctor fills in afterwards.
type StoredAlert struct {
	ID         uuid.UUID        `json:"id"`
	PatientID  string           `json:"patientId"`
	Kind       domain.AlertKind `json:"type"`
	Emotion    string           `json:"emotion,omitempty"`
	Confidence float64          `json:"confidence,omitempty"`
	Message    string           `json:"message,omitempty"`
	Severity   domain.Severity  `json:"severity"`
	At         time.Time        `json:"at"`
	Handled    bool             `json:"handled"`
	HandledBy  string           `json:"handledBy,omitempty"`
	HandledAt  time.Time        `json:"handledAt,omitzero"`
	Notes      string           `json:"notes,omitempty"`
}

type AlertRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewAlertRepository(db *badger.DB, log *slog.Logger) AlertRepository {
	return AlertRepository{db: db, log: log}
}

// StoreAlert persists an alert in BadgerDB.
// The primary key is formatted as "alert:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     alerts arrive at the same nanosecond.
//
// A secondary index "idx:alert:{uuid}" points back to the primary key so the
// handle route can reach an alert by id alone.
func (r AlertRepository) StoreAlert(alert domain.Alert) error {
	stored := StoredAlert{
		ID:         alert.ID,
		PatientID:  alert.PatientID,
		Kind:       alert.Kind,
		Emotion:    alert.Emotion,
		Confidence: alert.Confidence,
		Message:    alert.Message,
		Severity:   alert.Severity,
		At:         alert.At,
	}
	key := primaryKey(alert.At, alert.ID)
	bytes, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, bytes); err != nil {
			return err
		}
		return txn.Set(indexKey(alert.ID), key)
	})
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return nil
}

// ListUnhandled retrieves the most recent unhandled alerts, newest first.
// Thanks to the padded timestamp in the key, a reverse prefix scan is enough.
func (r AlertRepository) ListUnhandled(limit int) ([]StoredAlert, error) {
	var alerts []StoredAlert
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("alert:")
		// Seek past the newest possible timestamp, then walk backwards.
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(alerts) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var stored StoredAlert
				if err := json.Unmarshal(value, &stored); err != nil {
					return err
				}
				if !stored.Handled {
					alerts = append(alerts, stored)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return alerts, nil
}

// ListByPatient retrieves a patient's alert history, newest first, handled
// ones included. Same reverse scan as ListUnhandled with a different filter.
func (r AlertRepository) ListByPatient(patientID string, limit int) ([]StoredAlert, error) {
	var alerts []StoredAlert
	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		it := txn.NewIterator(options)
		defer it.Close()

		prefix := []byte("alert:")
		seekKey := append(append([]byte{}, prefix...), []byte("9999999999999999999")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if len(alerts) == limit {
				break
			}
			err := it.Item().Value(func(value []byte) error {
				var stored StoredAlert
				if err := json.Unmarshal(value, &stored); err != nil {
					return err
				}
				if stored.PatientID == patientID {
					alerts = append(alerts, stored)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return alerts, nil
}

// MarkHandled flags an alert as taken care of by a doctor. The alert is
// located through the secondary index and rewritten in place.
func (r AlertRepository) MarkHandled(alertID uuid.UUID, handledBy, notes string, at time.Time) (StoredAlert, error) {
	var stored StoredAlert
	err := r.db.Update(func(txn *badger.Txn) error {
		idx, err := txn.Get(indexKey(alertID))
		if err != nil {
			return err
		}
		key, err := idx.ValueCopy(nil)
		if err != nil {
			return err
		}
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		if err := item.Value(func(value []byte) error {
			return json.Unmarshal(value, &stored)
		}); err != nil {
			return err
		}

		stored.Handled = true
		stored.HandledBy = handledBy
		stored.HandledAt = at
		stored.Notes = notes

		bytes, err := json.Marshal(stored)
		if err != nil {
			return err
		}
		return txn.Set(key, bytes)
	})
	if err != nil {
		return StoredAlert{}, fmt.Errorf("%w: %v", errors.ErrPersistence, err)
	}
	return stored, nil
}

func primaryKey(at time.Time, id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("alert:%019d:%s", at.UnixNano(), id))
}

func indexKey(id uuid.UUID) []byte {
	return []byte(fmt.Sprintf("idx:alert:%s", id))
}
