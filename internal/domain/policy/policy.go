// Package policy define la política de acceso por rol: una función pura
// (rol, acción) → permitido. Todos los casos de uso mutadores la consultan
// antes de actuar; ocultar un botón en la UI nunca sustituye este chequeo.
package policy

import "github.com/invorya/inventario/internal/domain/entity"

// Action es una operación gobernada por la política de acceso.
type Action string

const (
	ActionViewDashboard  Action = "view_dashboard"
	ActionViewCatalog    Action = "view_catalog"
	ActionViewMovements  Action = "view_movements"
	ActionCreateMovement Action = "create_movement"
	ActionCreateProduct  Action = "create_product"
	ActionManageUsers    Action = "manage_users" // listar, crear, editar y eliminar cuentas
)

// Allowed decide si el rol puede ejecutar la acción. Tabla autoritativa:
// ADMIN puede todo; USER puede ver y registrar movimientos, pero no crear
// productos ni administrar cuentas.
func Allowed(role string, action Action) bool {
	switch role {
	case entity.RoleAdmin:
		switch action {
		case ActionViewDashboard, ActionViewCatalog, ActionViewMovements,
			ActionCreateMovement, ActionCreateProduct, ActionManageUsers:
			return true
		}
		return false
	case entity.RoleUser:
		switch action {
		case ActionViewDashboard, ActionViewCatalog, ActionViewMovements,
			ActionCreateMovement:
			return true
		}
		return false
	}
	return false
}
