/*
 * irrigatord
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(":memory:")
	assert.NoError(t, err)

	t.Cleanup(func() { db.Close() })

	return db
}

func TestRecordCycleAndRecent(t *testing.T) {
	db := newTestDB(t)

	first := CycleEntry{
		At:           time.Date(2026, 8, 30, 13, 20, 0, 0, time.UTC),
		Moisture:     4000,
		PumpSeconds:  12,
		Pushed:       true,
		SleepSeconds: 3600,
	}
	second := CycleEntry{
		At:           time.Date(2026, 8, 30, 14, 20, 0, 0, time.UTC),
		Moisture:     3900,
		Pushed:       false,
		SleepSeconds: 60,
	}

	assert.NoError(t, db.RecordCycle(first))
	assert.NoError(t, db.RecordCycle(second))

	entries, err := db.Recent(10)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, 3900, entries[0].Moisture)
	assert.False(t, entries[0].Pushed)
	assert.Equal(t, 12, entries[1].PumpSeconds)
	assert.True(t, entries[1].Pushed)
}

func TestRecentHonorsLimit(t *testing.T) {
	db := newTestDB(t)

	for i := 0; i < 5; i++ {
		err := db.RecordCycle(CycleEntry{
			At:       time.Date(2026, 8, 30, 10+i, 0, 0, 0, time.UTC),
			Moisture: 4000 + i,
		})
		assert.NoError(t, err)
	}

	entries, err := db.Recent(2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 4004, entries[0].Moisture)
}

func TestRecentOnEmptyJournal(t *testing.T) {
	db := newTestDB(t)

	entries, err := db.Recent(10)
	assert.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordCycleKeepsTimedOutFlag(t *testing.T) {
	db := newTestDB(t)

	err := db.RecordCycle(CycleEntry{
		At:          time.Date(2026, 8, 30, 13, 20, 0, 0, time.UTC),
		Moisture:    5600,
		PumpSeconds: 120,
		TimedOut:    true,
	})
	assert.NoError(t, err)

	entries, err := db.Recent(1)
	assert.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.True(t, entries[0].TimedOut)
	assert.Equal(t, 120, entries[0].PumpSeconds)
}
