package repository

import "errors"

var (
	// ErrPermissionDenied: as regras de segurança do banco remoto negaram a leitura.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound: não existe config para o id de empresa consultado.
	ErrNotFound = errors.New("empresa not found")
)
