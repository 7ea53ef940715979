package customer

// Stage is one step of the sales process. Stages always move through Parse /
// UpdateStage; there is no implicit progression.
type Stage string

const (
	StageGreeting     Stage = "greeting"
	StageDiscovery    Stage = "discovery"
	StagePresentation Stage = "presentation"
	StageNegotiation  Stage = "negotiation"
	StageClosing      Stage = "closing"
	StageFollowUp     Stage = "follow_up"
)

// Stages lists every valid stage in process order.
var Stages = []Stage{
	StageGreeting,
	StageDiscovery,
	StagePresentation,
	StageNegotiation,
	StageClosing,
	StageFollowUp,
}

// ParseStage validates a raw stage name.
func ParseStage(raw string) (Stage, bool) {
	for _, s := range Stages {
		if string(s) == raw {
			return s, true
		}
	}
	return "", false
}

var stageDescriptions = map[Stage]string{
	StageGreeting:     "Saludo inicial y construcción de rapport",
	StageDiscovery:    "Descubrimiento de necesidades del cliente",
	StagePresentation: "Presentación de vehículos relevantes",
	StageNegotiation:  "Negociación y manejo de objeciones",
	StageClosing:      "Cierre de la venta",
	StageFollowUp:     "Seguimiento post-venta",
}

var stageProgress = map[Stage]int{
	StageGreeting:     15,
	StageDiscovery:    30,
	StagePresentation: 50,
	StageNegotiation:  75,
	StageClosing:      90,
	StageFollowUp:     100,
}

var stageNextSteps = map[Stage]string{
	StageGreeting:     "• Establecer rapport y confianza\n• Identificar motivación principal de compra\n• Hacer transición suave a descubrimiento",
	StageDiscovery:    "• Hacer preguntas abiertas sobre necesidades\n• Identificar presupuesto y timeline\n• Consultar el inventario disponible",
	StagePresentation: "• Mostrar vehículos que coincidan con necesidades\n• Responder preguntas técnicas con datos de marca\n• Permitir al cliente hacer preguntas",
	StageNegotiation:  "• Escuchar y entender objeciones\n• Proporcionar soluciones específicas\n• Buscar puntos de acuerdo",
	StageClosing:      "• Confirmar decisión de compra\n• Verificar el VIN elegido en inventario\n• Proceder con reserva del vehículo",
	StageFollowUp:     "• Confirmar satisfacción del cliente\n• Coordinar entrega y papeleo\n• Programar seguimientos futuros",
}

// Description is the short Spanish label shown to the persona.
func (s Stage) Description() string {
	if d, ok := stageDescriptions[s]; ok {
		return d
	}
	return string(s)
}

// Progress returns the sales progress percentage for the stage.
func (s Stage) Progress() int {
	return stageProgress[s]
}

// NextSteps suggests the persona's next actions for the stage.
func (s Stage) NextSteps() string {
	if steps, ok := stageNextSteps[s]; ok {
		return steps
	}
	return "Continuar con el proceso según necesidades del cliente"
}
