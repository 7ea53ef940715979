package tools

import (
	"context"
	"fmt"

	"github.com/carbot-pro/server/internal/inventory"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

// ===================================
// Search Inventory Tool
// ===================================

type SearchInventoryInput struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type SearchInventoryOutput struct {
	Vehicles []inventory.Vehicle `json:"vehicles"`
	Total    int                 `json:"total"`
	Display  string              `json:"display"`
}

func (t *Toolset) createSearchInventoryTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolSearchInventory,
			Desc: "Search the dealership inventory with natural language in Spanish or English. Understands budget phrases (bajo 30000, menos de 25000, hasta 40000, máximo 50000, presupuesto 35000), body styles (SUV, camioneta, sedan, auto, hatchback, compacto, pickup, convertible, deportivo), colors (rojo, azul, negro, blanco, gris, plata) and intent keywords (familia, económico, lujo). Always use this tool when the customer describes what vehicle they want.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"query": {
					Type:     "string",
					Desc:     "Customer search request in natural language. Examples: 'SUV para familia hasta 30000', 'sedan económico rojo', 'camioneta bajo 45000'.",
					Required: true,
				},
				"max_results": {
					Type: "number",
					Desc: "Maximum number of vehicles to return (default: 8, max: 20)",
				},
			}),
		},
		func(ctx context.Context, in *SearchInventoryInput) (*SearchInventoryOutput, error) {
			if in.Query == "" {
				return nil, fmt.Errorf("query is required")
			}
			if in.MaxResults == 0 {
				in.MaxResults = inventory.DefaultMaxResults
			}

			matches := t.store.Search(in.Query, in.MaxResults)
			return &SearchInventoryOutput{
				Vehicles: matches,
				Total:    len(matches),
				Display:  inventory.FormatForAgent(matches, in.MaxResults),
			}, nil
		},
	)
}

// ===================================
// Vehicle Details Tool
// ===================================

type VehicleDetailsInput struct {
	VIN string `json:"vin"`
}

func (t *Toolset) createVehicleDetailsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolVehicleDetails,
			Desc: "Get the full record of one vehicle by VIN: price, mileage, color, body style, fuel type, transmission, availability, safety rating and features. Use when the customer asks about a specific vehicle from search results.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"vin": {
					Type:     "string",
					Desc:     "Exact VIN from search_inventory results (e.g., VIN001).",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *VehicleDetailsInput) (*inventory.Vehicle, error) {
			if in.VIN == "" {
				return nil, fmt.Errorf("vin is required")
			}
			v, ok := t.store.FindByVIN(in.VIN)
			if !ok {
				return nil, fmt.Errorf("vehicle not found: %s", in.VIN)
			}
			return &v, nil
		},
	)
}

// ===================================
// Reserve Vehicle Tool
// ===================================

type ReserveVehicleInput struct {
	VIN          string `json:"vin"`
	CustomerName string `json:"customer_name,omitempty"`
}

type ReserveVehicleOutput struct {
	Reserved bool   `json:"reserved"`
	Message  string `json:"message"`
}

func (t *Toolset) createReserveVehicleTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolReserveVehicle,
			Desc: "Reserve an available vehicle for the customer by VIN. The reservation persists across the session. Only call this after the customer explicitly confirms they want the vehicle.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"vin": {
					Type:     "string",
					Desc:     "Exact VIN of the vehicle to reserve.",
					Required: true,
				},
				"customer_name": {
					Type: "string",
					Desc: "Customer name for the reservation record.",
				},
			}),
		},
		func(ctx context.Context, in *ReserveVehicleInput) (*ReserveVehicleOutput, error) {
			if in.VIN == "" {
				return nil, fmt.Errorf("vin is required")
			}
			if !t.store.Reserve(in.VIN) {
				return &ReserveVehicleOutput{
					Reserved: false,
					Message:  fmt.Sprintf("El vehículo %s no está disponible para reserva", in.VIN),
				}, nil
			}
			return &ReserveVehicleOutput{
				Reserved: true,
				Message:  fmt.Sprintf("Vehículo %s reservado exitosamente", in.VIN),
			}, nil
		},
	)
}

// ===================================
// Inventory Stats Tool
// ===================================

type InventoryStatsInput struct{}

func (t *Toolset) createInventoryStatsTool() tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolInventoryStats,
			Desc: "Get aggregate statistics over the whole inventory: totals by availability, average price, most popular make, price range, distinct body styles, hybrid/electric count and premium segment size. Use for questions about the dealership's overall selection.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{}),
		},
		func(ctx context.Context, in *InventoryStatsInput) (*inventory.InventoryStats, error) {
			stats := t.store.Stats()
			return &stats, nil
		},
	)
}
