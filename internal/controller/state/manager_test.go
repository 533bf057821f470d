package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sashakmakeup/booking_bot/internal/model"
)

func TestManagerRoundTrip(t *testing.T) {
	m := NewManager()

	_, ok := m.Get(1)
	assert.False(t, ok)

	st := model.AgentState{Step: model.StepAskDate, Pending: model.PendingBooking{ServiceID: "bridal"}}
	m.Set(1, st)

	got, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, st, got)

	m.Clear(1)
	_, ok = m.Get(1)
	assert.False(t, ok)
}

func TestManagerKeepsChatsSeparate(t *testing.T) {
	m := NewManager()

	m.Set(1, model.AgentState{Step: model.StepAskDate})
	m.Set(2, model.AgentState{Step: model.StepConfirm})

	first, _ := m.Get(1)
	second, _ := m.Get(2)
	assert.Equal(t, model.StepAskDate, first.Step)
	assert.Equal(t, model.StepConfirm, second.Step)
}
