package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Errores del recálculo de fletes por área.
var (
	// ErrFreightUpdateTargetNotFound no hay filas pendientes (sin versión) para la empresa.
	ErrFreightUpdateTargetNotFound = errors.New("no existen fletes pendientes por publicar")
	// ErrFreightUpdateFailed hubo filas estampadas pero la expansión no produjo ningún flete.
	ErrFreightUpdateFailed = errors.New("la actualización de fletes no produjo registros")
	// ErrPersistenceFailure falló una escritura (estampado, lote o versión); la transacción se revierte.
	ErrPersistenceFailure = errors.New("fallo de persistencia")
)
