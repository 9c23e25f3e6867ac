package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTechnologiesDedupesPreservingOrder(t *testing.T) {
	techs := NewTechnologies([]string{"AWS", "Cloud", "AWS", "Go", "Cloud"})
	assert.Equal(t, Technologies{"AWS", "Cloud", "Go"}, techs)
}

func TestNewTechnologiesDropsEmptyLabels(t *testing.T) {
	techs := NewTechnologies([]string{"", "Go", ""})
	assert.Equal(t, Technologies{"Go"}, techs)
}

func TestNewTechnologiesIsCaseSensitive(t *testing.T) {
	// "go" and "Go" are distinct labels, only exact duplicates collapse.
	techs := NewTechnologies([]string{"Go", "go"})
	assert.Equal(t, Technologies{"Go", "go"}, techs)
}

func TestTechnologiesAdd(t *testing.T) {
	techs := Technologies{"Go"}

	techs = techs.Add("Docker")
	assert.Equal(t, Technologies{"Go", "Docker"}, techs)

	techs = techs.Add("Go")
	assert.Equal(t, Technologies{"Go", "Docker"}, techs)

	techs = techs.Add("")
	assert.Equal(t, Technologies{"Go", "Docker"}, techs)
}

func TestTechnologiesValue(t *testing.T) {
	v, err := Technologies{"Go", "SQL"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["Go","SQL"]`, v)

	v, err = Technologies(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, `[]`, v)
}

func TestTechnologiesScanNormalizesDuplicates(t *testing.T) {
	var techs Technologies
	err := techs.Scan(`["AWS","Cloud","AWS"]`)
	require.NoError(t, err)
	assert.Equal(t, Technologies{"AWS", "Cloud"}, techs)
}

func TestTechnologiesScanNil(t *testing.T) {
	var techs Technologies
	err := techs.Scan(nil)
	require.NoError(t, err)
	assert.Equal(t, Technologies{}, techs)
}

func TestTechnologiesScanRejectsUnknownType(t *testing.T) {
	var techs Technologies
	err := techs.Scan(42)
	assert.Error(t, err)
}
