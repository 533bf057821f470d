package model

// Step is the dialogue's position in the fixed question sequence.
type Step string

const (
	StepIdle       Step = "idle"
	StepAskService Step = "ask_service"
	StepAskDate    Step = "ask_date"
	StepAskTime    Step = "ask_time"
	StepAskName    Step = "ask_name"
	StepAskEmail   Step = "ask_email"
	StepAskPhone   Step = "ask_phone"
	StepConfirm    Step = "confirm"
	StepCompleted  Step = "completed"
)

// PendingBooking accumulates booking fields across steps. Fields fill in step
// order and are all present by the time the confirm step is reached.
type PendingBooking struct {
	ServiceID       string `json:"service_id,omitempty"`
	ServiceName     string `json:"service_name,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	DateISO         string `json:"date_iso,omitempty"`
	StartTime       string `json:"start_time,omitempty"`
	EndTime         string `json:"end_time,omitempty"`
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
}

// AgentState is the full conversation state for one chat. The engine never
// holds it internally; the shell round-trips it between turns.
type AgentState struct {
	Step       Step           `json:"step"`
	Pending    PendingBooking `json:"pending"`
	LastPrompt string         `json:"last_prompt,omitempty"`
}

// NewAgentState returns the initial state for a fresh conversation.
func NewAgentState() AgentState {
	return AgentState{Step: StepIdle}
}
