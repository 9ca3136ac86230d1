package chat

import (
	"testing"

	"buddyai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayload_RoundTrip(t *testing.T) {
	original := SynthesizeRoadmap(Params{
		Goal: "JavaScript", Timeline: "3 months", Level: "Beginner", DailyTime: "2 hours",
	})

	block, err := EncodePayload(original)
	require.NoError(t, err)

	message := "🎯 **Roadmap Created!**\n\n" + block + "\n\nNext steps below."
	decoded, found, err := DecodePayload(message)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, original, decoded)
}

func TestDecodePayload_NoBlock(t *testing.T) {
	decoded, found, err := DecodePayload("just a chat reply with no data")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, decoded)
}

func TestDecodePayload_MissingEndMarker(t *testing.T) {
	_, found, err := DecodePayload("**ROADMAP_DATA_START**\n{\"title\":\"x\"}")
	assert.True(t, found)
	assert.Error(t, err)
}

func TestDecodePayload_MalformedJSON(t *testing.T) {
	_, found, err := DecodePayload("**ROADMAP_DATA_START**\nnot json\n**ROADMAP_DATA_END**")
	assert.True(t, found)
	assert.Error(t, err)
}

func TestStripPayload(t *testing.T) {
	block, err := EncodePayload(&domain.Roadmap{Title: "T", Difficulty: domain.DifficultyBeginner})
	require.NoError(t, err)

	message := "before\n" + block + "\nafter"
	assert.Equal(t, "before\n\nafter", StripPayload(message))

	// Messages without a block pass through untouched.
	assert.Equal(t, "plain", StripPayload("plain"))
}
