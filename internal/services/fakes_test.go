package services_test

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
)

type noopLogger struct{}

func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}
func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (l noopLogger) With(args ...any) ports.Logger {
	return l
}

// fakeAplicativoRepo é um repositório em memória indexado por id
type fakeAplicativoRepo struct {
	seq   int
	datos map[string]*entities.Aplicativo

	fallarEliminar bool
}

func newFakeAplicativoRepo() *fakeAplicativoRepo {
	return &fakeAplicativoRepo{datos: make(map[string]*entities.Aplicativo)}
}

func (r *fakeAplicativoRepo) Crear(ctx context.Context, aplicativo *entities.Aplicativo) error {
	r.seq++
	aplicativo.ID = fmt.Sprintf("aplicativo-%d", r.seq)
	copia := *aplicativo
	r.datos[aplicativo.ID] = &copia
	return nil
}

func (r *fakeAplicativoRepo) BuscarPorID(ctx context.Context, id string) (*entities.Aplicativo, error) {
	aplicativo, ok := r.datos[id]
	if !ok {
		return nil, nil
	}
	copia := *aplicativo
	return &copia, nil
}

func (r *fakeAplicativoRepo) BuscarPorNombre(ctx context.Context, nombre string) (*entities.Aplicativo, error) {
	for _, aplicativo := range r.datos {
		if aplicativo.Nombre == nombre {
			copia := *aplicativo
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeAplicativoRepo) Listar(ctx context.Context) ([]*entities.Aplicativo, error) {
	aplicativos := make([]*entities.Aplicativo, 0, len(r.datos))
	for _, aplicativo := range r.datos {
		copia := *aplicativo
		aplicativos = append(aplicativos, &copia)
	}
	sort.Slice(aplicativos, func(i, j int) bool {
		return aplicativos[i].ID > aplicativos[j].ID
	})
	return aplicativos, nil
}

func (r *fakeAplicativoRepo) Actualizar(ctx context.Context, aplicativo *entities.Aplicativo) error {
	if _, ok := r.datos[aplicativo.ID]; !ok {
		return domainerrors.ErrAplicativoNoEncontrado
	}
	copia := *aplicativo
	r.datos[aplicativo.ID] = &copia
	return nil
}

func (r *fakeAplicativoRepo) Eliminar(ctx context.Context, id string) error {
	if r.fallarEliminar {
		return fmt.Errorf("fallo simulado")
	}
	delete(r.datos, id)
	return nil
}

func (r *fakeAplicativoRepo) ActualizarVersionActual(ctx context.Context, id, version string) error {
	aplicativo, ok := r.datos[id]
	if !ok {
		return domainerrors.ErrAplicativoNoEncontrado
	}
	aplicativo.VersionActual = &version
	return nil
}

// fakeInstaladorRepo é um repositório em memória indexado por id
type fakeInstaladorRepo struct {
	seq   int
	datos map[string]*entities.Instalador
}

func newFakeInstaladorRepo() *fakeInstaladorRepo {
	return &fakeInstaladorRepo{datos: make(map[string]*entities.Instalador)}
}

func (r *fakeInstaladorRepo) Crear(ctx context.Context, instalador *entities.Instalador) error {
	r.seq++
	instalador.ID = fmt.Sprintf("instalador-%d", r.seq)
	copia := *instalador
	r.datos[instalador.ID] = &copia
	return nil
}

func (r *fakeInstaladorRepo) BuscarPorID(ctx context.Context, id string) (*entities.Instalador, error) {
	instalador, ok := r.datos[id]
	if !ok {
		return nil, nil
	}
	copia := *instalador
	return &copia, nil
}

func (r *fakeInstaladorRepo) Listar(ctx context.Context) ([]*entities.Instalador, error) {
	instaladores := make([]*entities.Instalador, 0, len(r.datos))
	for _, instalador := range r.datos {
		copia := *instalador
		instaladores = append(instaladores, &copia)
	}
	sort.Slice(instaladores, func(i, j int) bool {
		return instaladores[i].ID > instaladores[j].ID
	})
	return instaladores, nil
}

func (r *fakeInstaladorRepo) Actualizar(ctx context.Context, instalador *entities.Instalador) error {
	if _, ok := r.datos[instalador.ID]; !ok {
		return domainerrors.ErrInstaladorNoEncontrado
	}
	copia := *instalador
	r.datos[instalador.ID] = &copia
	return nil
}

func (r *fakeInstaladorRepo) Eliminar(ctx context.Context, id string) error {
	delete(r.datos, id)
	return nil
}

func (r *fakeInstaladorRepo) EliminarPorAplicativo(ctx context.Context, aplicativoID string) error {
	for id, instalador := range r.datos {
		if instalador.AplicativoID == aplicativoID {
			delete(r.datos, id)
		}
	}
	return nil
}

// fakeUsuarioRepo é um repositório em memória indexado por id
type fakeUsuarioRepo struct {
	seq   int
	datos map[string]*entities.Usuario
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{datos: make(map[string]*entities.Usuario)}
}

func (r *fakeUsuarioRepo) Crear(ctx context.Context, usuario *entities.Usuario) error {
	r.seq++
	usuario.ID = fmt.Sprintf("usuario-%d", r.seq)
	copia := *usuario
	r.datos[usuario.ID] = &copia
	return nil
}

func (r *fakeUsuarioRepo) BuscarPorID(ctx context.Context, id string) (*entities.Usuario, error) {
	usuario, ok := r.datos[id]
	if !ok {
		return nil, nil
	}
	copia := *usuario
	return &copia, nil
}

func (r *fakeUsuarioRepo) BuscarPorEmail(ctx context.Context, email string) (*entities.Usuario, error) {
	for _, usuario := range r.datos {
		if usuario.Email.String() == email {
			copia := *usuario
			return &copia, nil
		}
	}
	return nil, nil
}

// fakeStorage registra gravações e eliminações sem tocar o disco.
// A validação de extensão imita o adaptador real: corre antes da escrita.
type fakeStorage struct {
	seq        int
	archivos   map[string]string
	eliminados []string
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{archivos: make(map[string]string)}
}

func (s *fakeStorage) Guardar(ctx context.Context, nombreOriginal string, contenido io.Reader) (string, error) {
	if !tieneExtensionValida(nombreOriginal) {
		return "", domainerrors.ErrTipoArchivoInvalido
	}

	data, err := io.ReadAll(contenido)
	if err != nil {
		return "", err
	}

	s.seq++
	ruta := fmt.Sprintf("instaladores/archivo-%d.exe", s.seq)
	s.archivos[ruta] = string(data)
	return ruta, nil
}

func (s *fakeStorage) Eliminar(ruta string) error {
	s.eliminados = append(s.eliminados, ruta)
	delete(s.archivos, ruta)
	return nil
}

func (s *fakeStorage) RutaAbsoluta(ruta string) (string, error) {
	if _, ok := s.archivos[ruta]; !ok {
		return "", domainerrors.ErrArchivoNoEncontrado
	}
	return "/abs/" + ruta, nil
}

func tieneExtensionValida(nombre string) bool {
	if len(nombre) < 4 {
		return false
	}
	ext := nombre[len(nombre)-4:]
	return ext == ".exe" || ext == ".msi"
}

// fakeUnitOfWork executa a função diretamente; se a função falhar, o
// estado anterior dos repositórios é restaurado para simular o rollback
type fakeUnitOfWork struct {
	aplicativos  *fakeAplicativoRepo
	instaladores *fakeInstaladorRepo
}

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	antesAplicativos := make(map[string]*entities.Aplicativo, len(u.aplicativos.datos))
	for id, aplicativo := range u.aplicativos.datos {
		copia := *aplicativo
		antesAplicativos[id] = &copia
	}
	antesInstaladores := make(map[string]*entities.Instalador, len(u.instaladores.datos))
	for id, instalador := range u.instaladores.datos {
		copia := *instalador
		antesInstaladores[id] = &copia
	}

	if err := fn(ctx); err != nil {
		u.aplicativos.datos = antesAplicativos
		u.instaladores.datos = antesInstaladores
		return err
	}
	return nil
}

// fakePublisher acumula os eventos publicados
type fakePublisher struct {
	eventos []ports.Evento
}

func (p *fakePublisher) Publicar(evento ports.Evento) {
	p.eventos = append(p.eventos, evento)
}

// fakeHasher evita o custo do bcrypt nos specs de serviço
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hash:" + password, nil
}

func (fakeHasher) Verificar(password, hash string) bool {
	return hash == "hash:"+password
}

// fakeTokens emite tokens previsíveis para as asserções
type fakeTokens struct{}

func (fakeTokens) Generar(usuario *entities.Usuario) (string, error) {
	return "token:" + usuario.ID, nil
}

func (fakeTokens) Validar(token string) (*ports.Identidad, error) {
	return nil, domainerrors.ErrNoAutenticado
}
