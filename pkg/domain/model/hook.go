package model

import (
	"encoding/json"
	"maps"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/vcshook/pkg/domain/types"
)

// HookRecord is the last known state of a webhook registered for a repository.
type HookRecord struct {
	ID      int64
	URL     string
	Correct bool
	// LastUsed is nil until the first delivery arrives.
	LastUsed            *time.Time
	LastBranchRevisions map[string]string
}

// NewHookRecord returns a record with default values: correct, never used and no known branches.
func NewHookRecord(id int64, url string) *HookRecord {
	return &HookRecord{
		ID:                  id,
		URL:                 url,
		Correct:             true,
		LastBranchRevisions: map[string]string{},
	}
}

// Touch sets LastUsed. The stored time is UTC without monotonic clock reading.
func (x *HookRecord) Touch(t time.Time) {
	ts := t.UTC()
	x.LastUsed = &ts
}

// MergeBranchRevisions overwrites revisions of the given refs and keeps the others.
func (x *HookRecord) MergeBranchRevisions(revisions map[string]string) {
	if x.LastBranchRevisions == nil {
		x.LastBranchRevisions = make(map[string]string, len(revisions))
	}
	maps.Copy(x.LastBranchRevisions, revisions)
}

// IsOutdated reports whether the hook is marked incorrect, has never been used or was not used since deadline.
func (x *HookRecord) IsOutdated(deadline time.Time) bool {
	if !x.Correct || x.LastUsed == nil {
		return true
	}
	return x.LastUsed.Before(deadline)
}

func (x *HookRecord) Equal(other *HookRecord) bool {
	if x == nil || other == nil {
		return x == other
	}
	if x.ID != other.ID || x.URL != other.URL || x.Correct != other.Correct {
		return false
	}
	switch {
	case x.LastUsed == nil && other.LastUsed == nil:
	case x.LastUsed == nil || other.LastUsed == nil:
		return false
	case !x.LastUsed.Equal(*other.LastUsed):
		return false
	}
	return maps.Equal(x.LastBranchRevisions, other.LastBranchRevisions)
}

type hookRecordJSON struct {
	ID                  int64             `json:"id"`
	URL                 string            `json:"url"`
	Correct             *bool             `json:"correct,omitempty"`
	LastUsed            *time.Time        `json:"lastUsed,omitempty"`
	LastBranchRevisions map[string]string `json:"lastBranchRevisions,omitempty"`
}

// EncodeHookRecord serializes the record into its stored JSON form.
func EncodeHookRecord(record *HookRecord) (string, error) {
	if record == nil {
		return "", goerr.Wrap(types.ErrInvalidHookRecord, "record is nil")
	}

	correct := record.Correct
	v := hookRecordJSON{
		ID:                  record.ID,
		URL:                 record.URL,
		Correct:             &correct,
		LastBranchRevisions: record.LastBranchRevisions,
	}
	if record.LastUsed != nil {
		ts := record.LastUsed.UTC()
		v.LastUsed = &ts
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal hook record", goerr.V("id", record.ID))
	}
	return string(raw), nil
}

// DecodeHookRecord parses a record produced by EncodeHookRecord. Omitted
// fields get the defaults of NewHookRecord.
func DecodeHookRecord(data string) (*HookRecord, error) {
	if data == "" {
		return nil, goerr.Wrap(types.ErrInvalidHookRecord, "empty data")
	}

	var v hookRecordJSON
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidHookRecord, "failed to unmarshal hook record",
			goerr.V("data", data),
			goerr.V("error", err.Error()),
		)
	}

	record := NewHookRecord(v.ID, v.URL)
	if v.Correct != nil {
		record.Correct = *v.Correct
	}
	if v.LastUsed != nil {
		record.Touch(*v.LastUsed)
	}
	record.MergeBranchRevisions(v.LastBranchRevisions)

	return record, nil
}
