package prompts

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/schema"

	"github.com/carbot-pro/server/internal/agent/graph/tools"
	"github.com/carbot-pro/server/internal/agent/model"
)

//go:embed template/response_prompt.txt
var coreSystemPrompt string

// RenderResponseSystem renders the sales persona system prompt and triggers
// prompt callbacks. The customer profile summary is injected so the persona
// remembers what it has already learned in this conversation.
func RenderResponseSystem(ctx context.Context, config model.ResponsePromptConfig, profileSummary string) (string, error) {
	// Render via Eino prompt component (Go template) to both format and emit callbacks
	tpl := prompt.FromMessages(
		schema.GoTemplate,
		schema.SystemMessage(coreSystemPrompt),
	)
	vars := map[string]any{
		"DealershipName":  config.DealershipName,
		"AgentName":       config.AgentName,
		"ProfileSummary":  profileSummary,
		"SearchTool":      tools.ToolSearchInventory,
		"DetailsTool":     tools.ToolVehicleDetails,
		"ReserveTool":     tools.ToolReserveVehicle,
		"StatsTool":       tools.ToolInventoryStats,
		"CompareTool":     tools.ToolCompareBrands,
		"AnalyzeTool":     tools.ToolAnalyzeCustomer,
		"StageTool":       tools.ToolUpdateSalesStage,
	}
	msgs, err := tpl.Format(ctx, vars)
	if err != nil {
		return "", fmt.Errorf("response prompt render: %w", err)
	}
	if len(msgs) == 0 || msgs[0] == nil {
		return "", fmt.Errorf("response prompt render: empty result")
	}
	return msgs[0].Content, nil
}
