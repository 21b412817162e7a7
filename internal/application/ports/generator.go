package ports

import "context"

// DiagramGenerator define el puerto de salida para la generación de
// contenido de diagramas. Cualquier adaptador (Anthropic, Gemini, mock) debe
// implementar esta interfaz; la aplicación solo conoce este contrato (DIP).
// El contenido devuelto es opaco para el control de acceso.
type DiagramGenerator interface {
	// GenerateDiagram produce la fuente mermaid de un diagrama a partir de
	// una descripción en lenguaje natural. El contexto debe llevar timeout
	// para no bloquear en la llamada externa.
	GenerateDiagram(ctx context.Context, diagramType, prompt string) (string, error)
}
