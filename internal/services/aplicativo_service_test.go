package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/services"
)

var _ = Describe("AplicativoService", func() {
	var (
		ctx            context.Context
		aplicativoRepo *fakeAplicativoRepo
		instaladorRepo *fakeInstaladorRepo
		storage        *fakeStorage
		service        *services.AplicativoService
	)

	BeforeEach(func() {
		ctx = context.Background()
		aplicativoRepo = newFakeAplicativoRepo()
		instaladorRepo = newFakeInstaladorRepo()
		storage = newFakeStorage()
		uow := &fakeUnitOfWork{aplicativos: aplicativoRepo, instaladores: instaladorRepo}
		service = services.NewAplicativoService(aplicativoRepo, instaladorRepo, storage, uow, noopLogger{})
	})

	Describe("Crear", func() {
		It("crea el aplicativo con los campos enviados", func() {
			descripcion := "Sistema de contabilidad"
			aplicativo, err := service.Crear(ctx, services.CrearInput{
				Nombre:      "Contabilidad",
				Descripcion: &descripcion,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(aplicativo.ID).NotTo(BeEmpty())
			Expect(aplicativo.Nombre).To(Equal("Contabilidad"))
			Expect(*aplicativo.Descripcion).To(Equal("Sistema de contabilidad"))
		})

		It("rechaza un nombre duplicado", func() {
			_, err := service.Crear(ctx, services.CrearInput{Nombre: "Contabilidad"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Crear(ctx, services.CrearInput{Nombre: "Contabilidad"})
			Expect(err).To(MatchError(domainerrors.ErrNombreDuplicado))
		})

		It("rechaza un aplicativo sin nombre", func() {
			_, err := service.Crear(ctx, services.CrearInput{})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Obtener", func() {
		It("devuelve no encontrado para un id inexistente", func() {
			_, err := service.Obtener(ctx, "no-existe")
			Expect(err).To(MatchError(domainerrors.ErrAplicativoNoEncontrado))
		})
	})

	Describe("Actualizar", func() {
		It("aplica solo los campos enviados", func() {
			descripcion := "original"
			creado, err := service.Crear(ctx, services.CrearInput{
				Nombre:      "Contabilidad",
				Descripcion: &descripcion,
			})
			Expect(err).NotTo(HaveOccurred())

			nuevoNombre := "Contabilidad Pro"
			actualizado, err := service.Actualizar(ctx, creado.ID, services.ActualizarInput{
				Nombre: &nuevoNombre,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(actualizado.Nombre).To(Equal("Contabilidad Pro"))
			Expect(*actualizado.Descripcion).To(Equal("original"))
		})

		It("no toca version_actual cuando el campo no viene", func() {
			version := "2.0.0"
			creado, err := service.Crear(ctx, services.CrearInput{
				Nombre:        "Contabilidad",
				VersionActual: &version,
			})
			Expect(err).NotTo(HaveOccurred())

			nuevoNombre := "Contabilidad Pro"
			actualizado, err := service.Actualizar(ctx, creado.ID, services.ActualizarInput{
				Nombre: &nuevoNombre,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*actualizado.VersionActual).To(Equal("2.0.0"))
		})

		It("devuelve no encontrado para un id inexistente", func() {
			nombre := "Nuevo"
			_, err := service.Actualizar(ctx, "no-existe", services.ActualizarInput{Nombre: &nombre})
			Expect(err).To(MatchError(domainerrors.ErrAplicativoNoEncontrado))
		})
	})

	Describe("Eliminar", func() {
		var aplicativoID string

		BeforeEach(func() {
			creado, err := service.Crear(ctx, services.CrearInput{Nombre: "Contabilidad"})
			Expect(err).NotTo(HaveOccurred())
			aplicativoID = creado.ID

			instalador := &entities.Instalador{
				Version:      "1.0.0",
				ArchivoURL:   "instaladores/a.exe",
				AplicativoID: aplicativoID,
			}
			Expect(instaladorRepo.Crear(ctx, instalador)).To(Succeed())
			storage.archivos["instaladores/a.exe"] = "binario"

			// espejar el preload de instaladores anidados del repositorio real
			aplicativoRepo.datos[aplicativoID].Instaladores = []*entities.Instalador{instalador}
		})

		It("elimina las filas en cascada y después los archivos", func() {
			Expect(service.Eliminar(ctx, aplicativoID)).To(Succeed())

			Expect(aplicativoRepo.datos).NotTo(HaveKey(aplicativoID))
			Expect(instaladorRepo.datos).To(BeEmpty())
			Expect(storage.eliminados).To(ConsistOf("instaladores/a.exe"))
		})

		It("revierte la cascada completa si la fila del aplicativo falla", func() {
			aplicativoRepo.fallarEliminar = true

			Expect(service.Eliminar(ctx, aplicativoID)).NotTo(Succeed())

			Expect(aplicativoRepo.datos).To(HaveKey(aplicativoID))
			Expect(instaladorRepo.datos).To(HaveLen(1))
			Expect(storage.eliminados).To(BeEmpty())
		})

		It("devuelve no encontrado para un id inexistente", func() {
			err := service.Eliminar(ctx, "no-existe")
			Expect(err).To(MatchError(domainerrors.ErrAplicativoNoEncontrado))
		})
	})
})
