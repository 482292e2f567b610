package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil ask service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Ingest: &mockIngestService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingAskService)
	})

	t.Run("nil ingest service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{Ask: &mockAskService{}})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingIngestService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{
			Ask:    &mockAskService{},
			Ingest: &mockIngestService{},
		})
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	assert.ErrorIs(t, (&Ports{}).Validate(), ErrMissingAskService)
	assert.ErrorIs(t, (&Ports{Ask: &mockAskService{}}).Validate(), ErrMissingIngestService)
	assert.NoError(t, (&Ports{
		Ask:    &mockAskService{},
		Ingest: &mockIngestService{},
	}).Validate())
}
