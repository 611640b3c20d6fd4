package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/instaladores-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/instaladores-backend/internal/domain/errors"
	"github.com/rafabene/instaladores-backend/internal/domain/ports"
	"github.com/rafabene/instaladores-backend/internal/infrastructure/config"
)

// Claims são os claims do token de sessão
type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Rol   string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTService implementa ports.TokenService com HS256.
// O segredo é injetado na construção; não existe estado global.
type JWTService struct {
	secret []byte
	expiry time.Duration
}

// NewJWTService cria um novo JWTService a partir da configuração
func NewJWTService(cfg *config.JWTConfig) ports.TokenService {
	return &JWTService{
		secret: []byte(cfg.Secret),
		expiry: cfg.Expiry,
	}
}

func (s *JWTService) Generar(usuario *entities.Usuario) (string, error) {
	now := time.Now()
	claims := Claims{
		ID:    usuario.ID,
		Email: usuario.Email.String(),
		Rol:   string(usuario.Rol),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Validar(tokenString string) (*ports.Identidad, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrNoAutenticado
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, domainerrors.ErrNoAutenticado
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, domainerrors.ErrNoAutenticado
	}

	return &ports.Identidad{
		ID:    claims.ID,
		Email: claims.Email,
		Rol:   entities.Rol(claims.Rol),
	}, nil
}
