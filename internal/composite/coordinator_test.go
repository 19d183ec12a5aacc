package composite

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepLog struct {
	headerCalls int
	itemsCalls  int
	deleteCalls int
	deletedID   string
}

func (l *stepLog) writes(headerErr, itemsErr, deleteErr error) Writes {
	return Writes{
		InsertHeader: func(ctx context.Context) (string, error) {
			l.headerCalls++
			if headerErr != nil {
				return "", headerErr
			}
			return "hdr-1", nil
		},
		InsertItems: func(ctx context.Context, headerID string) error {
			l.itemsCalls++
			return itemsErr
		},
		DeleteHeader: func(ctx context.Context, headerID string) error {
			l.deleteCalls++
			l.deletedID = headerID
			return deleteErr
		},
	}
}

func TestCreateSuccess(t *testing.T) {
	log := &stepLog{}

	id, err := Create(context.Background(), log.writes(nil, nil, nil))

	require.NoError(t, err)
	assert.Equal(t, "hdr-1", id)
	assert.Equal(t, 1, log.headerCalls)
	assert.Equal(t, 1, log.itemsCalls)
	assert.Equal(t, 0, log.deleteCalls, "no compensation on success")
}

func TestCreateHeaderFailure(t *testing.T) {
	cause := errors.New("unique constraint violated")
	log := &stepLog{}

	_, err := Create(context.Background(), log.writes(cause, nil, nil))

	var headerErr *HeaderError
	require.ErrorAs(t, err, &headerErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 0, log.itemsCalls, "no item insert after header failure")
	assert.Equal(t, 0, log.deleteCalls, "nothing to compensate")
}

func TestCreateItemsFailureCompensates(t *testing.T) {
	cause := errors.New("foreign key violated on second item")
	log := &stepLog{}

	_, err := Create(context.Background(), log.writes(nil, cause, nil))

	var itemsErr *ItemsError
	require.ErrorAs(t, err, &itemsErr)
	assert.Equal(t, "hdr-1", itemsErr.HeaderID)
	assert.ErrorIs(t, err, cause, "caller sees the original item-write failure")
	assert.Equal(t, 1, log.deleteCalls)
	assert.Equal(t, "hdr-1", log.deletedID)
}

func TestCreateCompensationFailure(t *testing.T) {
	itemsCause := errors.New("item insert rejected")
	deleteCause := errors.New("connection reset")
	log := &stepLog{}

	_, err := Create(context.Background(), log.writes(nil, itemsCause, deleteCause))

	var compErr *CompensationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "hdr-1", compErr.HeaderID)
	assert.Equal(t, deleteCause, compErr.DeleteErr)
	assert.ErrorIs(t, err, itemsCause, "original failure still dominates")
	assert.NotErrorIs(t, err, deleteCause, "delete outcome is carried, not propagated")
}
