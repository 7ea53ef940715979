package inventory

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatForAgent renders a ranked result list as the Spanish text block the
// chat persona presents to the customer.
func FormatForAgent(vehicles []Vehicle, maxDisplay int) string {
	if len(vehicles) == 0 {
		return "No se encontraron vehículos que coincidan con los criterios."
	}
	if maxDisplay <= 0 {
		maxDisplay = len(vehicles)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "**Vehículos Encontrados (%d coincidencias):**\n\n", len(vehicles))

	shown := vehicles
	if len(shown) > maxDisplay {
		shown = shown[:maxDisplay]
	}
	for i, v := range shown {
		fmt.Fprintf(&b, "**%d. %d %s %s**\n", i+1, v.Year, v.Make, v.Model)
		fmt.Fprintf(&b, "• **VIN:** %s\n", v.VIN)
		fmt.Fprintf(&b, "• **Precio:** $%s\n", humanize.Commaf(v.Price))
		fmt.Fprintf(&b, "• **Kilometraje:** %s km\n", humanize.Comma(int64(v.Mileage)))
		fmt.Fprintf(&b, "• **Color:** %s\n", v.Color)
		fmt.Fprintf(&b, "• **Tipo:** %s\n", v.BodyStyle)
		fmt.Fprintf(&b, "• **Combustible:** %s\n", v.FuelType)
		fmt.Fprintf(&b, "• **Estado:** %s\n\n", v.Status)
	}

	if len(vehicles) > maxDisplay {
		fmt.Fprintf(&b, "... y %d vehículos más disponibles.\n", len(vehicles)-maxDisplay)
	}

	return b.String()
}
