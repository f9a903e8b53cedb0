package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdminIDs(t *testing.T) {
	ids, err := ParseAdminIDs("1, 7,42")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7, 42}, ids)
}

func TestParseAdminIDsSingle(t *testing.T) {
	ids, err := ParseAdminIDs("123456789")
	require.NoError(t, err)
	assert.Equal(t, []int64{123456789}, ids)
}

func TestParseAdminIDsInvalid(t *testing.T) {
	_, err := ParseAdminIDs("1,abc")
	assert.Error(t, err)

	_, err = ParseAdminIDs("")
	assert.Error(t, err)

	_, err = ParseAdminIDs(" , ")
	assert.Error(t, err)
}
