package auth

// Actor es la identidad autenticada que ejecuta una operación. Sustituye a la
// sesión ambiental del cliente: cada caso de uso la recibe explícita, de modo
// que la autorización se prueba sin simular almacenamiento del navegador.
type Actor struct {
	ID    string
	Email string
	Role  string
}
