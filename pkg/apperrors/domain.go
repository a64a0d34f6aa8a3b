package apperrors

import (
	"net/http"
)

// Predefined domain errors. Services return these; handlers pass them
// through HandleError unchanged.

// ErrNotFound converts a repository not-found error into a 404.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrAlreadyExists converts a repository duplicate error into a 409.
func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

// --- Auth ---

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"La contraseña debe tener al menos 6 caracteres",
	http.StatusBadRequest,
)

var ErrFullNameRequired = New(
	CodeValidationFailed,
	"validation",
	"Por favor ingresa tu nombre completo",
	http.StatusBadRequest,
)

var ErrInvalidEmail = New(
	CodeValidationFailed,
	"validation",
	"El correo electrónico no es válido",
	http.StatusBadRequest,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"El correo electrónico ya está registrado",
	http.StatusConflict,
)

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Credenciales incorrectas o usuario no existe",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Sesión inválida o expirada",
	http.StatusUnauthorized,
)

// --- Profiles ---

var ErrProfileNotFound = New(
	CodeNotFound,
	"profile",
	"Perfil no encontrado",
	http.StatusNotFound,
)
