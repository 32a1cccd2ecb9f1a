package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Pacote token inspeciona o bearer token emitido pelo backend sem validar assinatura:
// o segredo de assinatura pertence ao backend, o storefront só precisa saber se o
// token persistido ainda vale a pena ser reidratado.

// Expired informa se o token JWT carrega claim exp já vencido em relação a now.
// Tokens que não são JWT, ou sem claim exp, são considerados não expirados
// (o backend é quem decide rejeitá-los).
func Expired(tokenString string, now time.Time) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Time.Before(now)
}
