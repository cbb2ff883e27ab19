// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func TestNewFileSummaryCounts(t *testing.T) {
	f := NewFile(sampleMatched(), sampleUnmatched())

	assert.Equal(t, 2, f.Summary.Total)
	assert.Equal(t, 1, f.Summary.Matched)
	assert.False(t, f.Summary.Timestamp.IsZero())
	assert.Len(t, f.Matched, 1)
	assert.Len(t, f.Other, 1)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, NewFile(sampleMatched(), sampleUnmatched())))

	var parsed File
	require.NoError(t, json.Unmarshal(buf.Bytes(), &parsed))

	require.Len(t, parsed.Matched, 1)
	assert.Equal(t, "Deep Learning Survey", parsed.Matched[0].Title)
	assert.Equal(t, []string{"title"}, parsed.Matched[0].MatchTags)
	require.Len(t, parsed.Other, 1)
	assert.Equal(t, "https://arxiv.org/abs/2401.22222", parsed.Other[0].Link)
	assert.Empty(t, parsed.Other[0].MatchTags)
	assert.Equal(t, 2, parsed.Summary.Total)
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, NewFile(sampleMatched(), sampleUnmatched())))

	var parsed File
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &parsed))

	require.Len(t, parsed.Matched, 1)
	assert.Equal(t, []string{"Jane Doe", "Bo Li"}, parsed.Matched[0].ShortAuthors)
	require.Len(t, parsed.Other, 1)
	assert.Equal(t, "Sparse Kernels", parsed.Other[0].Title)
	assert.Equal(t, 1, parsed.Summary.Matched)
}
