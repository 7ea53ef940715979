package model

// ================ Config ================
type ConversationConfig struct {
	TTL     string `envconfig:"CONVERSATION_TTL" default:"15m"`
	History struct {
		MaxTurns int `envconfig:"CONVERSATION_HISTORY_MAX_TURNS" default:"20"`
	}
	Tools struct {
		MaxCalls int `envconfig:"CONVERSATION_TOOL_MAX_CALLS" default:"10"`
	}
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
}

type ResponsePromptConfig struct {
	DealershipName string `envconfig:"PROMPT_DEALERSHIP_NAME" default:"Premium Motors"`
	AgentName      string `envconfig:"PROMPT_AGENT_NAME" default:"Carlos"`
}

type InventoryConfig struct {
	CSVPath string `envconfig:"INVENTORY_CSV_PATH" default:"data/vehicle_inventory.csv"`
}
