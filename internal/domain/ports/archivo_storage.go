package ports

import (
	"context"
	"io"
)

// ArchivoStorage define a interface para o armazenamento de binários de
// instaladores em disco
type ArchivoStorage interface {
	// Guardar valida a extensão do nome original (.exe ou .msi) antes de
	// qualquer escrita e retorna o caminho relativo armazenado
	Guardar(ctx context.Context, nombreOriginal string, contenido io.Reader) (string, error)

	// Eliminar remove o arquivo; a ausência do arquivo não é erro
	Eliminar(ruta string) error

	// RutaAbsoluta resolve o caminho físico; falha se o arquivo não existe
	// em disco no momento da chamada
	RutaAbsoluta(ruta string) (string, error)
}
