package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/carbot-pro/server/internal/customer"
	"github.com/carbot-pro/server/internal/inventory"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
)

// Tool names exposed to the model.
const (
	ToolSearchInventory  = "search_inventory"
	ToolVehicleDetails   = "get_vehicle_details"
	ToolReserveVehicle   = "reserve_vehicle"
	ToolInventoryStats   = "get_inventory_stats"
	ToolCompareBrands    = "compare_brands"
	ToolAnalyzeCustomer  = "analyze_customer"
	ToolUpdateSalesStage = "update_sales_stage"
)

// Toolset binds the dealership tools to one conversation's state: the shared
// inventory store plus the per-conversation customer profile.
type Toolset struct {
	store *inventory.Store

	mu      sync.Mutex
	profile *customer.Profile
}

func NewToolset(store *inventory.Store) *Toolset {
	return &Toolset{
		store:   store,
		profile: customer.NewProfile(),
	}
}

// Profile returns a snapshot copy of the current customer profile.
func (t *Toolset) Profile() customer.Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return *t.profile
}

// GetQueryTools returns every tool the sales persona can call.
func (t *Toolset) GetQueryTools() []tool.BaseTool {
	return []tool.BaseTool{
		t.createSearchInventoryTool(),
		t.createVehicleDetailsTool(),
		t.createReserveVehicleTool(),
		t.createInventoryStatsTool(),
		t.createCompareBrandsTool(),
		t.createAnalyzeCustomerTool(),
		t.createUpdateSalesStageTool(),
	}
}

// GetToolInfos resolves ToolInfo for each tool, for binding to the chat model.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, tl := range tools {
		info, err := tl.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("get tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
