package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanJSONBlock_StripsJSONFence(t *testing.T) {
	input := "```json\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_StripsGenericFence(t *testing.T) {
	input := "```\n{\"a\": 1}\n```"
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(input))
}

func TestCleanJSONBlock_PassesPlainTextThrough(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(`{"a": 1}`))
}

func TestExtractJSONObject_StrictObject(t *testing.T) {
	got, err := ExtractJSONObject(`{"mentor_id": "1"}`)
	require.NoError(t, err)
	assert.Equal(t, `{"mentor_id": "1"}`, got)
}

func TestExtractJSONObject_FencedObject(t *testing.T) {
	got, err := ExtractJSONObject("```json\n{\"mentor_id\": \"1\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, `{"mentor_id": "1"}`, got)
}

func TestExtractJSONObject_ProseWrappedObject(t *testing.T) {
	got, err := ExtractJSONObject(`Sure! Here you go: {"mentor_id": "1", "note": "ok"} Anything else?`)
	require.NoError(t, err)
	assert.Equal(t, `{"mentor_id": "1", "note": "ok"}`, got)
}

func TestExtractJSONObject_BracesInsideStrings(t *testing.T) {
	got, err := ExtractJSONObject(`prefix {"reason": "uses {braces} and \"quotes\""} suffix`)
	require.NoError(t, err)
	assert.Equal(t, `{"reason": "uses {braces} and \"quotes\""}`, got)
}

func TestExtractJSONObject_NestedObject(t *testing.T) {
	got, err := ExtractJSONObject(`text {"outer": {"inner": 1}} trailing`)
	require.NoError(t, err)
	assert.Equal(t, `{"outer": {"inner": 1}}`, got)
}

func TestExtractJSONObject_NoObject(t *testing.T) {
	_, err := ExtractJSONObject("no json here")
	assert.Error(t, err)
}

func TestExtractJSONObject_UnbalancedBraces(t *testing.T) {
	_, err := ExtractJSONObject(`{"broken": `)
	assert.Error(t, err)
}

func TestExtractJSONObject_ArrayIsNotAnObject(t *testing.T) {
	_, err := ExtractJSONObject(`[1, 2, 3]`)
	assert.Error(t, err)
}
