package services_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/services"
)

var _ = Describe("UsuarioService", func() {
	var (
		ctx         context.Context
		usuarioRepo *fakeUsuarioRepo
		service     *services.UsuarioService
	)

	BeforeEach(func() {
		ctx = context.Background()
		usuarioRepo = newFakeUsuarioRepo()
		service = services.NewUsuarioService(usuarioRepo, fakeHasher{}, fakeTokens{}, noopLogger{})
	})

	registrarValido := func() services.RegistrarInput {
		return services.RegistrarInput{
			Nombre:   "Maria",
			Email:    "maria@example.com",
			Password: "secreta123",
		}
	}

	Describe("Registrar", func() {
		It("registra el usuario guardando solo el hash de la contraseña", func() {
			usuario, err := service.Registrar(ctx, registrarValido())

			Expect(err).NotTo(HaveOccurred())
			Expect(usuario.ID).NotTo(BeEmpty())
			Expect(usuario.Email.String()).To(Equal("maria@example.com"))
			Expect(usuario.PasswordHash).NotTo(Equal("secreta123"))
		})

		It("asigna el rol usuario cuando no viene ninguno", func() {
			usuario, err := service.Registrar(ctx, registrarValido())

			Expect(err).NotTo(HaveOccurred())
			Expect(usuario.Rol).To(Equal(entities.RolUsuario))
		})

		It("acepta el rol enviado por el llamador", func() {
			entrada := registrarValido()
			entrada.Rol = "admin"

			usuario, err := service.Registrar(ctx, entrada)

			Expect(err).NotTo(HaveOccurred())
			Expect(usuario.Rol).To(Equal(entities.RolAdmin))
		})

		It("rechaza un email ya registrado", func() {
			_, err := service.Registrar(ctx, registrarValido())
			Expect(err).NotTo(HaveOccurred())

			_, err = service.Registrar(ctx, registrarValido())
			Expect(err).To(MatchError(domainerrors.ErrEmailYaRegistrado))
		})

		It("rechaza un email inválido", func() {
			entrada := registrarValido()
			entrada.Email = "no-es-email"

			_, err := service.Registrar(ctx, entrada)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Login", func() {
		BeforeEach(func() {
			_, err := service.Registrar(ctx, registrarValido())
			Expect(err).NotTo(HaveOccurred())
		})

		It("emite un token con credenciales válidas", func() {
			token, err := service.Login(ctx, "maria@example.com", "secreta123")

			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(HavePrefix("token:"))
		})

		It("devuelve el mismo error para email desconocido y contraseña errada", func() {
			_, errEmail := service.Login(ctx, "nadie@example.com", "secreta123")
			_, errPassword := service.Login(ctx, "maria@example.com", "otra")

			Expect(errEmail).To(MatchError(domainerrors.ErrCredencialesInvalidas))
			Expect(errPassword).To(MatchError(domainerrors.ErrCredencialesInvalidas))
			Expect(errEmail).To(Equal(errPassword))
		})
	})

	Describe("Perfil", func() {
		It("devuelve los datos del usuario registrado", func() {
			registrado, err := service.Registrar(ctx, registrarValido())
			Expect(err).NotTo(HaveOccurred())

			usuario, err := service.Perfil(ctx, registrado.ID)

			Expect(err).NotTo(HaveOccurred())
			Expect(usuario.Nombre).To(Equal("Maria"))
			Expect(usuario.Email.String()).To(Equal("maria@example.com"))
		})

		It("devuelve no encontrado para un id inexistente", func() {
			_, err := service.Perfil(ctx, "no-existe")
			Expect(err).To(MatchError(domainerrors.ErrUsuarioNoEncontrado))
		})
	})
})
