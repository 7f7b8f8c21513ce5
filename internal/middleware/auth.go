package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sergioleandroramirez97/contaduria-familiar/config"
)

// JwtService verifies access tokens minted by the external identity
// provider. Tokens are signed HS256 with a shared secret; this service
// never issues tokens itself.
type JwtService struct {
	secret []byte
	issuer string
}

func NewJwtService(cfg *config.Config) *JwtService {
	return &JwtService{
		secret: []byte(cfg.Auth.JWTSecret),
		issuer: cfg.Auth.Issuer,
	}
}

// Verify parses the token and returns the subject claim, the owner id.
func (s *JwtService) Verify(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", err
	}

	return token.Claims.GetSubject()
}

// IdentityMiddleware attaches the verified owner id to the request context.
// Requests without a token pass through anonymous; handlers decide whether
// the operation needs a session. A token that is present but invalid is
// rejected outright.
func IdentityMiddleware(jwtSvc *JwtService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		if tokenString == header || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "INVALID_TOKEN",
				"message": "El encabezado de autorización no es válido",
			})
			c.Abort()
			return
		}

		subject, err := jwtSvc.Verify(tokenString)
		if err != nil || subject == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "INVALID_TOKEN",
				"message": "El token no es válido o ha expirado",
			})
			c.Abort()
			return
		}

		c.Set("user_id", subject)
		c.Next()
	}
}
