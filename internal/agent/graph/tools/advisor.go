package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/carbot-pro/server/internal/customer"
	"github.com/carbot-pro/server/internal/expertise"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// ===================================
// Compare Brands Tool
// ===================================

type CompareBrandsInput struct {
	Brand1 string `json:"brand1"`
	Brand2 string `json:"brand2"`
	Focus  string `json:"focus,omitempty"`
}

type CompareBrandsOutput struct {
	Comparison string `json:"comparison"`
}

func (t *Toolset) createCompareBrandsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolCompareBrands,
			Desc: fmt.Sprintf("Compare two automotive brands with expert data on reliability, fuel economy and maintenance costs. Known brands: %s. Use when the customer asks which brand is better or mentions two brands.", strings.Join(expertise.Brands(), ", ")),
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"brand1": {
					Type:     "string",
					Desc:     "First brand name (e.g., toyota).",
					Required: true,
				},
				"brand2": {
					Type:     "string",
					Desc:     "Second brand name (e.g., honda).",
					Required: true,
				},
				"focus": {
					Type: "string",
					Desc: "Comparison focus: reliability, fuel_economy or overall (default overall).",
				},
			}),
		},
		func(ctx context.Context, in *CompareBrandsInput) (*CompareBrandsOutput, error) {
			if in.Brand1 == "" || in.Brand2 == "" {
				return nil, fmt.Errorf("both brand1 and brand2 are required")
			}
			if in.Focus == "" {
				in.Focus = "overall"
			}
			return &CompareBrandsOutput{
				Comparison: expertise.CompareBrands(in.Brand1, in.Brand2, in.Focus),
			}, nil
		},
	)
}

// ===================================
// Analyze Customer Tool
// ===================================

type AnalyzeCustomerInput struct {
	Message string `json:"message"`
}

type AnalyzeCustomerOutput struct {
	Analysis customer.Analysis `json:"analysis"`
	Profile  string            `json:"profile"`
}

func (t *Toolset) createAnalyzeCustomerTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolAnalyzeCustomer,
			Desc: "Extract budget, vehicle preferences and needs from a customer message and fold them into the session profile. Understands Spanish shorthand like '40 mil' and '50k'. Call this with the customer's own words whenever they reveal new requirements.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"message": {
					Type:     "string",
					Desc:     "The customer's message verbatim.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *AnalyzeCustomerInput) (*AnalyzeCustomerOutput, error) {
			if in.Message == "" {
				return nil, fmt.Errorf("message is required")
			}

			analysis := customer.AnalyzeInput(in.Message)

			t.mu.Lock()
			t.profile.Apply(analysis)
			summary := t.profile.Summary()
			t.mu.Unlock()

			return &AnalyzeCustomerOutput{Analysis: analysis, Profile: summary}, nil
		},
	)
}

// ===================================
// Update Sales Stage Tool
// ===================================

type UpdateSalesStageInput struct {
	Stage string `json:"stage"`
}

type UpdateSalesStageOutput struct {
	PreviousStage string `json:"previous_stage"`
	CurrentStage  string `json:"current_stage"`
	Description   string `json:"description"`
	Progress      int    `json:"progress"`
	NextSteps     string `json:"next_steps"`
}

func (t *Toolset) createUpdateSalesStageTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolUpdateSalesStage,
			Desc: "Advance the sales process to a new stage and get guidance for it. Valid stages: greeting, discovery, presentation, negotiation, closing, follow_up. Call when the conversation clearly moves to a new phase.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"stage": {
					Type:     "string",
					Desc:     "Target stage name.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *UpdateSalesStageInput) (*UpdateSalesStageOutput, error) {
			stage, ok := customer.ParseStage(in.Stage)
			if !ok {
				return nil, fmt.Errorf("unknown sales stage: %s", in.Stage)
			}

			t.mu.Lock()
			previous := t.profile.UpdateStage(stage)
			t.mu.Unlock()

			return &UpdateSalesStageOutput{
				PreviousStage: string(previous),
				CurrentStage:  string(stage),
				Description:   stage.Description(),
				Progress:      stage.Progress(),
				NextSteps:     stage.NextSteps(),
			}, nil
		},
	)
}
