package kafka

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cartUpdatedPayload struct {
	SessionID string `json:"session_id"`
	ItemCount int    `json:"item_count"`
}

func TestNewEvent(t *testing.T) {
	payload := cartUpdatedPayload{SessionID: "abc", ItemCount: 3}

	event, err := NewEvent("storefront.cart.updated", "abc", "cart", "storefront", payload)
	require.NoError(t, err)

	_, err = uuid.Parse(event.EventID)
	assert.NoError(t, err, "event id should be a valid uuid")
	assert.Equal(t, "storefront.cart.updated", event.EventType)
	assert.Equal(t, "abc", event.AggregateID)
	assert.Equal(t, "cart", event.AggregateType)
	assert.Equal(t, "storefront", event.Source)
	assert.Equal(t, 1, event.Version)
	assert.WithinDuration(t, time.Now().UTC(), event.Timestamp, time.Minute)
}

func TestNewEvent_UnmarshalableData(t *testing.T) {
	_, err := NewEvent("storefront.cart.updated", "abc", "cart", "storefront", make(chan int))
	assert.Error(t, err)
}

func TestEvent_RoundTrip(t *testing.T) {
	original, err := NewEvent("storefront.cart.cleared", "abc", "cart", "storefront",
		cartUpdatedPayload{SessionID: "abc"})
	require.NoError(t, err)
	original.WithCorrelationID("corr-1")

	raw, err := original.Marshal()
	require.NoError(t, err)

	decoded, err := UnmarshalEvent(raw)
	require.NoError(t, err)
	assert.Equal(t, original.EventID, decoded.EventID)
	assert.Equal(t, "corr-1", decoded.CorrelationID)

	var payload cartUpdatedPayload
	require.NoError(t, decoded.UnmarshalData(&payload))
	assert.Equal(t, "abc", payload.SessionID)
}

func TestUnmarshalEvent_Malformed(t *testing.T) {
	_, err := UnmarshalEvent([]byte("{"))
	assert.Error(t, err)
}
