package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDUnmarshal(t *testing.T) {
	var payload struct {
		TourID     FlexID `json:"tourId"`
		TravelerID FlexID `json:"travelerId"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"tourId": 7, "travelerId": "10"}`), &payload))
	assert.Equal(t, "7", payload.TourID.String())
	assert.Equal(t, "10", payload.TravelerID.String())

	assert.Error(t, json.Unmarshal([]byte(`{"tourId": true}`), &payload))
}
