package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sashakmakeup/booking_bot/internal/model"
	"github.com/sashakmakeup/booking_bot/internal/repository/base"
)

// StateRepository round-trips per-chat conversation state as JSONB.
type StateRepository struct {
	*base.Repository
}

func NewStateRepository(pool *pgxpool.Pool) *StateRepository {
	return &StateRepository{Repository: base.NewRepository(pool)}
}

// Get loads the agent state for a chat. A missing row or a row that no longer
// unmarshals yields a fresh initial state instead of an error, so a corrupted
// conversation simply starts over.
func (r *StateRepository) Get(ctx context.Context, chatID int64) (model.AgentState, error) {
	query := `SELECT state FROM agent_states WHERE chat_id = $1`

	var raw []byte
	err := r.QueryRow(ctx, query, chatID).Scan(&raw)
	if base.IsNotFound(err) {
		return model.NewAgentState(), nil
	}
	if err != nil {
		return model.NewAgentState(), fmt.Errorf("get agent state: %w", err)
	}

	var st model.AgentState
	if err := json.Unmarshal(raw, &st); err != nil {
		return model.NewAgentState(), nil
	}
	if st.Step == "" {
		st.Step = model.StepIdle
	}

	return st, nil
}

// Save upserts the agent state for a chat.
func (r *StateRepository) Save(ctx context.Context, chatID int64, st model.AgentState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("marshal agent state: %w", err)
	}

	query := `
		INSERT INTO agent_states (chat_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()
	`

	if _, err := r.Pool().Exec(ctx, query, chatID, raw); err != nil {
		return fmt.Errorf("save agent state: %w", err)
	}

	return nil
}
