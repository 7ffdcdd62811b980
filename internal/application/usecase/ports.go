package usecase

import "io"

// FileStore es el colaborador externo que guarda el contenido de los
// comprobantes. La capa de aplicación solo conoce la URL resultante; la
// disposición interna del almacenamiento no es asunto de este servicio.
type FileStore interface {
	// Save persiste el contenido y devuelve la URL pública del archivo.
	Save(filename string, r io.Reader) (string, error)
}
