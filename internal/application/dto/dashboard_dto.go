package dto

// ChartSeries una barra de la gráfica de balance (Entradas vs Salidas).
type ChartSeries struct {
	Name     string `json:"name"`     // "Entradas" | "Salidas"
	Quantity int64  `json:"quantity"` // suma de cantidades del ledger
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// TotalUsers solo se calcula (y se incluye) cuando el solicitante es ADMIN;
// para USER la consulta se omite por completo, no se filtra.
type DashboardSummaryDTO struct {
	TotalProducts int  `json:"total_products"`
	LowStock      int  `json:"low_stock"`
	TotalUsers    *int `json:"total_users,omitempty"`

	// Exactamente dos series: Entradas y Salidas, para la gráfica de barras.
	Movements []ChartSeries `json:"movements"`
}
