package session_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/internal/infrastructure/localstore"
	"github.com/canek/storefront/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de teste
// ──────────────────────────────────────────────────────────────────────────────

// navSpy registra as rotas navegadas pelo Store.
type navSpy struct {
	routes []string
}

func (n *navSpy) NavigateTo(route string) {
	n.routes = append(n.routes, route)
}

func (n *navSpy) last() string {
	if len(n.routes) == 0 {
		return ""
	}
	return n.routes[len(n.routes)-1]
}

func novoStore(t *testing.T) (*session.Store, *localstore.Memory, *navSpy) {
	t.Helper()
	kv := localstore.NewMemory()
	nav := &navSpy{}
	return session.New(kv, nav, logger.Nop()), kv, nav
}

// jwtComExpiracao gera um JWT assinado com exp relativo a agora. A assinatura
// não importa: o storefront só inspeciona claims, nunca valida.
func jwtComExpiracao(t *testing.T, delta time.Duration) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(delta).Unix(),
	})
	signed, err := tok.SignedString([]byte("segredo-do-backend"))
	require.NoError(t, err)
	return signed
}

// ──────────────────────────────────────────────────────────────────────────────
// Login — papel normalizado e navegação por papel
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CargoAdminNavegaAoPainel(t *testing.T) {
	s, kv, nav := novoStore(t)
	s.Initialize()

	err := s.Login(json.RawMessage(`{"token":"t1","cargo":"ADMIN"}`))
	require.NoError(t, err)

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, entity.RoleAdmin, s.Role())
	assert.Equal(t, session.RouteAdminDashboard, nav.last())
	assert.True(t, kv.Has("userToken"), "token persistido")
	assert.True(t, kv.Has("userData"), "registro completo persistido")
}

func TestLogin_CargoEstoquistaNavegaAoPainel(t *testing.T) {
	s, _, nav := novoStore(t)
	s.Initialize()

	require.NoError(t, s.Login(json.RawMessage(`{"token":"t1","cargo":"ESTOQUISTA"}`)))

	assert.Equal(t, entity.RoleStocker, s.Role())
	assert.Equal(t, session.RouteAdminDashboard, nav.last())
}

func TestLogin_TipoUsuarioClienteNavegaAHome(t *testing.T) {
	s, _, nav := novoStore(t)
	s.Initialize()

	require.NoError(t, s.Login(json.RawMessage(`{"token":"t2","tipoUsuario":"cliente"}`)))

	assert.Equal(t, entity.RoleCustomer, s.Role())
	assert.Equal(t, session.RouteHome, nav.last())
}

func TestLogin_CargoTemPrecedenciaSobreTipoUsuario(t *testing.T) {
	s, _, _ := novoStore(t)
	s.Initialize()

	require.NoError(t, s.Login(json.RawMessage(`{"token":"t","cargo":"ADMIN","tipoUsuario":"cliente"}`)))

	assert.Equal(t, entity.RoleAdmin, s.Role(), "cargo vem primeiro, primeiro não vazio vence")
}

// Despacho total: papel não reconhecido autentica, é sinalizado como UNKNOWN e
// vai à home como qualquer papel fora do backoffice.
func TestLogin_PapelDesconhecidoVaiAHome(t *testing.T) {
	s, _, nav := novoStore(t)
	s.Initialize()

	require.NoError(t, s.Login(json.RawMessage(`{"token":"t","cargo":"GERENTE"}`)))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, entity.RoleUnknown, s.Role())
	assert.Equal(t, session.RouteHome, nav.last())
}

func TestLogin_SemTokenEInvalido(t *testing.T) {
	s, kv, _ := novoStore(t)
	s.Initialize()

	err := s.Login(json.RawMessage(`{"cargo":"ADMIN"}`))

	assert.Error(t, err)
	assert.False(t, s.IsAuthenticated(), "sessão parcial não é estado válido")
	assert.False(t, kv.Has("userToken"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Initialize — reidratação e dados corrompidos
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_SemDadosPersistidosFicaNaoAutenticado(t *testing.T) {
	s, _, _ := novoStore(t)

	assert.True(t, s.Loading(), "antes de Initialize a decisão fica adiada")
	s.Initialize()

	assert.False(t, s.Loading())
	assert.False(t, s.IsAuthenticated())
}

func TestInitialize_ReidrataSessaoValida(t *testing.T) {
	kv := localstore.NewMemory()
	require.NoError(t, kv.Set("userToken", []byte("t1")))
	require.NoError(t, kv.Set("userData", []byte(`{"token":"t1","cargo":"ESTOQUISTA","nome":"Ana"}`)))

	s := session.New(kv, &navSpy{}, logger.Nop())
	s.Initialize()

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, entity.RoleStocker, s.Role())
	assert.Equal(t, "t1", s.Token())
}

func TestInitialize_DadosCorrompidosLimpamAsDuasChaves(t *testing.T) {
	kv := localstore.NewMemory()
	require.NoError(t, kv.Set("userToken", []byte("t1")))
	require.NoError(t, kv.Set("userData", []byte("{{{corrompido")))

	s := session.New(kv, &navSpy{}, logger.Nop())
	s.Initialize()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.Loading(), "loading termina false mesmo com falha")
	assert.False(t, kv.Has("userToken"), "as duas chaves são limpas")
	assert.False(t, kv.Has("userData"))
}

func TestInitialize_SessaoParcialNaoAutentica(t *testing.T) {
	kv := localstore.NewMemory()
	require.NoError(t, kv.Set("userToken", []byte("t1")))
	// userData ausente

	s := session.New(kv, &navSpy{}, logger.Nop())
	s.Initialize()

	assert.False(t, s.IsAuthenticated(), "token sem registro de usuário não forma sessão")
}

func TestInitialize_TokenExpiradoLimpaASessao(t *testing.T) {
	kv := localstore.NewMemory()
	expirado := jwtComExpiracao(t, -time.Hour)
	require.NoError(t, kv.Set("userToken", []byte(expirado)))
	require.NoError(t, kv.Set("userData", []byte(`{"token":"x","tipoUsuario":"cliente"}`)))

	s := session.New(kv, &navSpy{}, logger.Nop())
	s.Initialize()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, kv.Has("userToken"))
	assert.False(t, kv.Has("userData"))
}

func TestInitialize_TokenValidoNaoELimpo(t *testing.T) {
	kv := localstore.NewMemory()
	valido := jwtComExpiracao(t, time.Hour)
	require.NoError(t, kv.Set("userToken", []byte(valido)))
	require.NoError(t, kv.Set("userData", []byte(`{"token":"x","tipoUsuario":"cliente"}`)))

	s := session.New(kv, &navSpy{}, logger.Nop())
	s.Initialize()

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, entity.RoleCustomer, s.Role())
}

// ──────────────────────────────────────────────────────────────────────────────
// Logout — idempotente
// ──────────────────────────────────────────────────────────────────────────────

func TestLogout_LimpaEstadoENavegaAHome(t *testing.T) {
	s, kv, nav := novoStore(t)
	s.Initialize()
	require.NoError(t, s.Login(json.RawMessage(`{"token":"t1","cargo":"ADMIN"}`)))

	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.False(t, kv.Has("userToken"))
	assert.False(t, kv.Has("userData"))
	assert.Equal(t, session.RouteHome, nav.last())
}

func TestLogout_SemSessaoSoNavega(t *testing.T) {
	s, _, nav := novoStore(t)
	s.Initialize()

	s.Logout()
	s.Logout()

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, []string{session.RouteHome, session.RouteHome}, nav.routes)
}
