package models

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// DescriptionNamespace keys the saved-descriptions store. All records live
// under this one namespace, there is no per-user partitioning.
const DescriptionNamespace = "shopshop_descriptions"

// MaxSavedDescriptions caps the store, oldest records are evicted silently.
const MaxSavedDescriptions = 50

// GeneratedDescription is a saved composition result. Immutable after
// creation except for the description text, which the edit path replaces.
type GeneratedDescription struct {
	JsonModel
	RecordID    string   `gorm:"uniqueIndex" json:"record_id"`
	Namespace   string   `gorm:"index" json:"-"`
	Description string   `gorm:"type:text" json:"description"`
	ItemJSON    string   `gorm:"type:text" json:"-"`
	Language    Language `json:"language"`
}

var (
	recordIDMu   sync.Mutex
	lastRecordID int64
)

// NewRecordID derives a record id from the wall clock, bumped past the
// previous one so two saves inside the same millisecond stay unique. The
// column carries a unique index, a duplicate id would fail the insert.
func NewRecordID(now time.Time) string {
	recordIDMu.Lock()
	defer recordIDMu.Unlock()
	id := now.UnixMilli()
	if id <= lastRecordID {
		id = lastRecordID + 1
	}
	lastRecordID = id
	return fmt.Sprintf("%d", id)
}

func (d *GeneratedDescription) SetItem(item ClothingItem) error {
	data, err := json.Marshal(item)
	if err != nil {
		return err
	}
	d.ItemJSON = string(data)
	return nil
}

// Item decodes the snapshot taken at generation time. A decode failure marks
// the record as corrupted, callers are expected to fail closed.
func (d *GeneratedDescription) Item() (ClothingItem, error) {
	var item ClothingItem
	if err := json.Unmarshal([]byte(d.ItemJSON), &item); err != nil {
		return ClothingItem{}, fmt.Errorf("corrupted description record %s: %w", d.RecordID, err)
	}
	return item, nil
}
