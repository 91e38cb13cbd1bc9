package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMarkDeletedAndRestore(t *testing.T) {
	hotel := Hotel{Name: "Grand Plaza"}

	at := time.Date(2024, time.April, 1, 12, 0, 0, 0, time.UTC)
	hotel.MarkDeleted(at)
	assert.True(t, hotel.Deleted)
	if assert.NotNil(t, hotel.DeletedAt) {
		assert.Equal(t, at, *hotel.DeletedAt)
	}

	hotel.Restore()
	assert.False(t, hotel.Deleted)
	assert.Nil(t, hotel.DeletedAt)
}

func TestBeforeSaveNormalizesDeletedPair(t *testing.T) {
	// Flag set without a timestamp: one is filled in.
	hotel := Hotel{Deleted: true}
	assert.NoError(t, hotel.BeforeSave(nil))
	assert.NotNil(t, hotel.DeletedAt)

	// Flag cleared: any leftover timestamp goes away.
	ts := time.Now().UTC()
	hotel = Hotel{Deleted: false, DeletedAt: &ts}
	assert.NoError(t, hotel.BeforeSave(nil))
	assert.Nil(t, hotel.DeletedAt)
}

func TestBeforeSaveKeepsExistingTimestamp(t *testing.T) {
	ts := time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC)
	hotel := Hotel{Deleted: true, DeletedAt: &ts}

	// An unrelated re-save must not move the deletion time.
	assert.NoError(t, hotel.BeforeSave(nil))
	if assert.NotNil(t, hotel.DeletedAt) {
		assert.Equal(t, ts, *hotel.DeletedAt)
	}
}
