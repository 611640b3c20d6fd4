package services_test

import (
	"context"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/services"
)

var _ = Describe("InstaladorService", func() {
	var (
		ctx            context.Context
		instaladorRepo *fakeInstaladorRepo
		aplicativoRepo *fakeAplicativoRepo
		storage        *fakeStorage
		publisher      *fakePublisher
		service        *services.InstaladorService

		aplicativoID string
	)

	BeforeEach(func() {
		ctx = context.Background()
		instaladorRepo = newFakeInstaladorRepo()
		aplicativoRepo = newFakeAplicativoRepo()
		storage = newFakeStorage()
		publisher = &fakePublisher{}
		service = services.NewInstaladorService(instaladorRepo, aplicativoRepo, storage, publisher, noopLogger{})

		aplicativoService := services.NewAplicativoService(
			aplicativoRepo, instaladorRepo, storage,
			&fakeUnitOfWork{aplicativos: aplicativoRepo, instaladores: instaladorRepo},
			noopLogger{},
		)
		creado, err := aplicativoService.Crear(ctx, services.CrearInput{Nombre: "Contabilidad"})
		Expect(err).NotTo(HaveOccurred())
		aplicativoID = creado.ID
	})

	subirValido := func() services.SubirInput {
		return services.SubirInput{
			AplicativoID:  aplicativoID,
			Version:       "1.2.0",
			UsuarioID:     "usuario-1",
			NombreArchivo: "setup.exe",
			Contenido:     strings.NewReader("binario"),
		}
	}

	Describe("Subir", func() {
		It("crea el registro y guarda el archivo", func() {
			instalador, err := service.Subir(ctx, subirValido())

			Expect(err).NotTo(HaveOccurred())
			Expect(instalador.ID).NotTo(BeEmpty())
			Expect(instalador.Version).To(Equal("1.2.0"))
			Expect(instalador.NombreArchivo).To(Equal("setup.exe"))
			Expect(instalador.ArchivoURL).To(HavePrefix("instaladores/"))
			Expect(*instalador.UsuarioID).To(Equal("usuario-1"))
			Expect(storage.archivos).To(HaveKey(instalador.ArchivoURL))
		})

		It("sobrescribe la version_actual del aplicativo", func() {
			_, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())

			aplicativo, err := aplicativoRepo.BuscarPorID(ctx, aplicativoID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*aplicativo.VersionActual).To(Equal("1.2.0"))
		})

		It("sobrescribe version_actual aunque la versión sea anterior", func() {
			entrada := subirValido()
			entrada.Version = "2.0.0"
			_, err := service.Subir(ctx, entrada)
			Expect(err).NotTo(HaveOccurred())

			entrada = subirValido()
			entrada.Version = "1.0.0"
			_, err = service.Subir(ctx, entrada)
			Expect(err).NotTo(HaveOccurred())

			aplicativo, err := aplicativoRepo.BuscarPorID(ctx, aplicativoID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*aplicativo.VersionActual).To(Equal("1.0.0"))
		})

		It("publica el evento instalador_subido", func() {
			instalador, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())

			Expect(publisher.eventos).To(HaveLen(1))
			evento := publisher.eventos[0]
			Expect(evento.Tipo).To(Equal(ports.EventoInstaladorSubido))
			Expect(evento.InstaladorID).To(Equal(instalador.ID))
			Expect(evento.AplicativoID).To(Equal(aplicativoID))
			Expect(evento.Version).To(Equal("1.2.0"))
		})

		It("rechaza la subida sin archivo", func() {
			entrada := subirValido()
			entrada.NombreArchivo = ""
			entrada.Contenido = nil

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrArchivoRequerido))
		})

		It("rechaza una extensión no permitida sin guardar nada", func() {
			entrada := subirValido()
			entrada.NombreArchivo = "setup.zip"

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrTipoArchivoInvalido))
			Expect(storage.archivos).To(BeEmpty())
		})

		It("elimina el archivo guardado cuando falta aplicativoId", func() {
			entrada := subirValido()
			entrada.AplicativoID = ""

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrAplicativoRequerido))
			Expect(storage.eliminados).To(HaveLen(1))
			Expect(storage.archivos).To(BeEmpty())
		})

		It("elimina el archivo guardado cuando falta la versión", func() {
			entrada := subirValido()
			entrada.Version = ""

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrVersionRequerida))
			Expect(storage.eliminados).To(HaveLen(1))
		})

		It("elimina el archivo guardado cuando el aplicativo no existe", func() {
			entrada := subirValido()
			entrada.AplicativoID = "no-existe"

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrAplicativoNoEncontrado))
			Expect(storage.eliminados).To(HaveLen(1))
		})

		It("elimina el archivo guardado sin identidad autenticada", func() {
			entrada := subirValido()
			entrada.UsuarioID = ""

			_, err := service.Subir(ctx, entrada)
			Expect(err).To(MatchError(domainerrors.ErrNoAutenticado))
			Expect(storage.eliminados).To(HaveLen(1))
		})
	})

	Describe("Descargar", func() {
		It("devuelve la ruta física y el nombre original como adjunto", func() {
			instalador, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())

			ruta, nombre, err := service.Descargar(ctx, instalador.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(ruta).To(Equal("/abs/" + instalador.ArchivoURL))
			Expect(nombre).To(Equal("setup.exe"))
		})

		It("reduce el nombre de descarga al nombre base", func() {
			entrada := subirValido()
			entrada.NombreArchivo = "../escapes/setup.exe"
			instalador, err := service.Subir(ctx, entrada)
			Expect(err).NotTo(HaveOccurred())

			_, nombre, err := service.Descargar(ctx, instalador.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(nombre).To(Equal("setup.exe"))
		})

		It("devuelve no encontrado para un registro inexistente", func() {
			_, _, err := service.Descargar(ctx, "no-existe")
			Expect(err).To(MatchError(domainerrors.ErrInstaladorNoEncontrado))
		})

		It("devuelve no encontrado cuando el archivo falta en disco", func() {
			instalador, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())

			delete(storage.archivos, instalador.ArchivoURL)

			_, _, err = service.Descargar(ctx, instalador.ID)
			Expect(err).To(MatchError(domainerrors.ErrArchivoNoEncontrado))
		})
	})

	Describe("Actualizar", func() {
		It("muta la versión sin re-propagar version_actual", func() {
			entrada := subirValido()
			entrada.Version = "2.0.0"
			instalador, err := service.Subir(ctx, entrada)
			Expect(err).NotTo(HaveOccurred())

			nuevaVersion := "3.0.0"
			actualizado, err := service.Actualizar(ctx, instalador.ID, services.ActualizarInstaladorInput{
				Version: &nuevaVersion,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(actualizado.Version).To(Equal("3.0.0"))

			aplicativo, err := aplicativoRepo.BuscarPorID(ctx, aplicativoID)
			Expect(err).NotTo(HaveOccurred())
			Expect(*aplicativo.VersionActual).To(Equal("2.0.0"))
		})

		It("devuelve no encontrado para un registro inexistente", func() {
			version := "1.0.0"
			_, err := service.Actualizar(ctx, "no-existe", services.ActualizarInstaladorInput{Version: &version})
			Expect(err).To(MatchError(domainerrors.ErrInstaladorNoEncontrado))
		})
	})

	Describe("Eliminar", func() {
		It("elimina el archivo y el registro y publica el evento", func() {
			instalador, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())
			publisher.eventos = nil

			Expect(service.Eliminar(ctx, instalador.ID)).To(Succeed())

			Expect(instaladorRepo.datos).To(BeEmpty())
			Expect(storage.eliminados).To(ContainElement(instalador.ArchivoURL))
			Expect(publisher.eventos).To(HaveLen(1))
			Expect(publisher.eventos[0].Tipo).To(Equal(ports.EventoInstaladorEliminado))
		})

		It("elimina el registro aunque el archivo ya no exista en disco", func() {
			instalador, err := service.Subir(ctx, subirValido())
			Expect(err).NotTo(HaveOccurred())
			delete(storage.archivos, instalador.ArchivoURL)

			Expect(service.Eliminar(ctx, instalador.ID)).To(Succeed())
			Expect(instaladorRepo.datos).To(BeEmpty())
		})

		It("devuelve no encontrado para un registro inexistente", func() {
			err := service.Eliminar(ctx, "no-existe")
			Expect(err).To(MatchError(domainerrors.ErrInstaladorNoEncontrado))
		})
	})
})
