package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/carbot-pro/server/internal/inventory"
	"github.com/cloudwego/eino/components/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureCSV = `vin,make,model,year,price,mileage,color,body_styles,fuel_type,transmission,status,safety_rating,features
VIN001,Toyota,RAV4,2026,28000,12000,Blanco,SUV,Hybrid,Automatic,Available,5,safety sensors
VIN002,Honda,Civic,2025,24000,8000,Rojo,Sedan,Gasoline,Automatic,Available,5,lane assist
VIN003,Ford,F-150,2024,45000,30000,Negro,Truck,Gasoline,Automatic,Reserved,4,towing package
`

func newTestToolset(t *testing.T) *Toolset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	store := inventory.NewStore(path)
	require.True(t, store.Load())
	return NewToolset(store)
}

func findTool(t *testing.T, ts *Toolset, name string) tool.InvokableTool {
	t.Helper()
	for _, bt := range ts.GetQueryTools() {
		info, err := bt.Info(context.Background())
		require.NoError(t, err)
		if info.Name == name {
			inv, ok := bt.(tool.InvokableTool)
			require.True(t, ok, "tool %s is not invokable", name)
			return inv
		}
	}
	t.Fatalf("tool %s not registered", name)
	return nil
}

func invoke(t *testing.T, ts *Toolset, name, args string) string {
	t.Helper()
	out, err := findTool(t, ts, name).InvokableRun(context.Background(), args)
	require.NoError(t, err)
	return out
}

func TestToolsetRegistersAllTools(t *testing.T) {
	ts := newTestToolset(t)

	infos, err := GetToolInfos(context.Background(), ts.GetQueryTools())
	require.NoError(t, err)

	names := make([]string, 0, len(infos))
	for _, info := range infos {
		names = append(names, info.Name)
	}
	assert.ElementsMatch(t, []string{
		ToolSearchInventory, ToolVehicleDetails, ToolReserveVehicle,
		ToolInventoryStats, ToolCompareBrands, ToolAnalyzeCustomer, ToolUpdateSalesStage,
	}, names)
}

func TestSearchInventoryTool(t *testing.T) {
	ts := newTestToolset(t)

	out := invoke(t, ts, ToolSearchInventory, `{"query":"SUV hasta 30000"}`)

	var res SearchInventoryOutput
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, 1, res.Total)
	assert.Equal(t, "VIN001", res.Vehicles[0].VIN)
	assert.Contains(t, res.Display, "RAV4")
}

func TestSearchInventoryToolRequiresQuery(t *testing.T) {
	ts := newTestToolset(t)
	_, err := findTool(t, ts, ToolSearchInventory).InvokableRun(context.Background(), `{"query":""}`)
	assert.Error(t, err)
}

func TestVehicleDetailsTool(t *testing.T) {
	ts := newTestToolset(t)

	out := invoke(t, ts, ToolVehicleDetails, `{"vin":"VIN002"}`)

	var v inventory.Vehicle
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "Civic", v.Model)
	assert.Equal(t, "Rojo", v.Color)

	_, err := findTool(t, ts, ToolVehicleDetails).InvokableRun(context.Background(), `{"vin":"VIN999"}`)
	assert.Error(t, err)
}

func TestReserveVehicleTool(t *testing.T) {
	ts := newTestToolset(t)

	var res ReserveVehicleOutput
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolReserveVehicle, `{"vin":"VIN002"}`)), &res))
	assert.True(t, res.Reserved)

	// second attempt on the same vin fails without error
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolReserveVehicle, `{"vin":"VIN002"}`)), &res))
	assert.False(t, res.Reserved)

	// already reserved in the fixture
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolReserveVehicle, `{"vin":"VIN003"}`)), &res))
	assert.False(t, res.Reserved)
}

func TestInventoryStatsTool(t *testing.T) {
	ts := newTestToolset(t)

	var stats inventory.InventoryStats
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolInventoryStats, `{}`)), &stats))
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 1, stats.Reserved)
}

func TestCompareBrandsTool(t *testing.T) {
	ts := newTestToolset(t)

	var res CompareBrandsOutput
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolCompareBrands, `{"brand1":"toyota","brand2":"bmw"}`)), &res))
	assert.Contains(t, res.Comparison, "GANADOR: Toyota")
}

func TestAnalyzeCustomerToolUpdatesProfile(t *testing.T) {
	ts := newTestToolset(t)

	var res AnalyzeCustomerOutput
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolAnalyzeCustomer, `{"message":"busco un suv para la familia, máximo 30 mil"}`)), &res))
	assert.Equal(t, "hasta $30,000", res.Analysis.BudgetRange)
	assert.Contains(t, res.Profile, "suv")

	p := ts.Profile()
	assert.Equal(t, []string{"suv"}, p.Interests)
}

func TestUpdateSalesStageTool(t *testing.T) {
	ts := newTestToolset(t)

	var res UpdateSalesStageOutput
	require.NoError(t, json.Unmarshal([]byte(invoke(t, ts, ToolUpdateSalesStage, `{"stage":"discovery"}`)), &res))
	assert.Equal(t, "greeting", res.PreviousStage)
	assert.Equal(t, "discovery", res.CurrentStage)
	assert.Equal(t, 30, res.Progress)

	_, err := findTool(t, ts, ToolUpdateSalesStage).InvokableRun(context.Background(), `{"stage":"bargaining"}`)
	assert.Error(t, err)
}
