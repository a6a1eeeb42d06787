package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestAiMetricSchemaParsesTags(t *testing.T) {
	s, err := schema.Parse(&AiMetric{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("Tags")
	require.NotNil(t, field)
	assert.Equal(t, schema.DataType("text"), field.DataType)
	assert.Empty(t, s.Relationships.Relations)
}

func TestTagsValueAndScan(t *testing.T) {
	v, err := Tags{"work", "family"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"work","family"}`, v)

	var tags Tags
	require.NoError(t, tags.Scan(`{"work","family"}`))
	assert.Equal(t, Tags{"work", "family"}, tags)

	var empty Tags
	require.NoError(t, empty.Scan(nil))
	assert.Nil(t, empty)
}
