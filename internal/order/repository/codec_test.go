package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestSerializeProductIDsKeepsOrderAndDuplicates(t *testing.T) {
	raw := serializeProductIDs([]int64{5, 7, 5})
	assert.JSONEq(t, "[5,7,5]", string(raw))

	ids, err := deserializeProductIDs(raw)
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 7, 5}, ids)
}

func TestSerializeEmptyProductIDs(t *testing.T) {
	assert.Equal(t, "[]", string(serializeProductIDs(nil)))
	assert.Equal(t, "[]", string(serializeProductIDs([]int64{})))
}

func TestDeserializeTreatsMissingAsEmpty(t *testing.T) {
	for _, raw := range []string{"", "null", "  []  "} {
		ids, err := deserializeProductIDs(datatypes.JSON(raw))
		require.NoError(t, err, raw)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	}
}

func TestDeserializeLargeSnowflakeIDs(t *testing.T) {
	ids, err := deserializeProductIDs(datatypes.JSON("[1790000000000000001, 1790000000000000002]"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1790000000000000001, 1790000000000000002}, ids)
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	_, err := deserializeProductIDs(datatypes.JSON(`{"ids": [1]}`))
	require.Error(t, err)

	_, err = deserializeProductIDs(datatypes.JSON(`["a"]`))
	require.Error(t, err)
}
