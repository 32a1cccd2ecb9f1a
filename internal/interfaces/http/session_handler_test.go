package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canek/storefront/internal/application/cart"
	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/application/session"
	"github.com/canek/storefront/internal/infrastructure/backend"
	"github.com/canek/storefront/internal/infrastructure/localstore"
	apphttp "github.com/canek/storefront/internal/interfaces/http"
	"github.com/canek/storefront/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers: storefront completo sobre um backend falso
// ──────────────────────────────────────────────────────────────────────────────

// backendFalso responde o contrato mínimo do backend CaneK usado nos fluxos.
func backendFalso(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		if in.Senha != "correta" {
			http.Error(w, "Email ou senha inválidos.", http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-cliente","tipoUsuario":"cliente","nome":"Ana"}`))
	})
	mux.HandleFunc("POST /auth/administrador/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"token":"tok-admin","cargo":"ADMIN"}`))
	})
	mux.HandleFunc("GET /auth/produto/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":7,"nome":"Caneca Lisa","preco":29.90,"status":true,` +
			`"imagens":[{"caminhoImagem":"/img/7-b.png","principal":false},` +
			`{"caminhoImagem":"/img/7-a.png","principal":true}]}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

type storefront struct {
	app      *fiber.App
	sessions *session.Store
	cart     *cart.Store
	kv       *localstore.Memory
	nav      *apphttp.Navigator
}

func novoStorefront(t *testing.T, backendURL string) *storefront {
	t.Helper()
	log := logger.Nop()
	kv := localstore.NewMemory()
	nav := apphttp.NewNavigator(log)
	sessions := session.New(kv, nav, log)
	sessions.Initialize()
	carrinho := cart.New(kv, log)
	client := backend.New(backend.Config{BaseURL: backendURL, Timeout: 5 * time.Second}, log)
	loader := backend.NewDetailLoader(client, log)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SessionStore: sessions,
		CartStore:    carrinho,
		Backend:      client,
		DetailLoader: loader,
		Navigator:    nav,
	})
	return &storefront{app: app, sessions: sessions, cart: carrinho, kv: kv, nav: nav}
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo de login
// ──────────────────────────────────────────────────────────────────────────────

func TestLoginCliente_AutenticaEFicaNaHome(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)

	resp := postJSON(t, sf.app, "/api/login", dto.LoginRequest{Email: "ana@example.com", Senha: "correta"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Authenticated)
	assert.Equal(t, "CUSTOMER", out.Role)
	assert.Equal(t, "/", out.Route, "cliente navega à home")
	assert.True(t, sf.kv.Has("userToken"))
}

func TestLoginBackoffice_NavegaAoPainel(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)

	resp := postJSON(t, sf.app, "/api/backoffice/login", dto.LoginRequest{Email: "adm@example.com", Senha: "x"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ADMIN", out.Role)
	assert.Equal(t, "/admin/dashboard", out.Route)
}

func TestLogin_SenhaErradaRepassaTextoDoBackend(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)

	resp := postJSON(t, sf.app, "/api/login", dto.LoginRequest{Email: "ana@example.com", Senha: "errada"})
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var out dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Contains(t, out.Message, "Email ou senha inválidos")
	assert.False(t, sf.sessions.IsAuthenticated())
}

func TestLogin_BackendForaDoArRetorna502(t *testing.T) {
	srv := backendFalso(t)
	url := srv.URL
	srv.Close()
	sf := novoStorefront(t, url)

	resp := postJSON(t, sf.app, "/api/login", dto.LoginRequest{Email: "a@b.c", Senha: "x"})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestLogout_EncerraSessaoEVoltaAHome(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)
	postJSON(t, sf.app, "/api/backoffice/login", dto.LoginRequest{Email: "adm@example.com", Senha: "x"}).Body.Close()
	require.True(t, sf.sessions.IsAuthenticated())

	resp := postJSON(t, sf.app, "/api/logout", nil)
	defer resp.Body.Close()

	assert.False(t, sf.sessions.IsAuthenticated())
	assert.False(t, sf.kv.Has("userToken"))
	assert.Equal(t, "/", sf.nav.Current())
}

// ──────────────────────────────────────────────────────────────────────────────
// Fluxo "comprar": adiciona ao carrinho e abre o painel lateral
// ──────────────────────────────────────────────────────────────────────────────

func TestAddItem_BuscaProdutoEAbreOPainel(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)

	resp := postJSON(t, sf.app, "/api/carrinho/itens", dto.AddItemRequest{ProductID: 7})
	defer resp.Body.Close()

	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out dto.CartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Caneca Lisa", out.Items[0].Name)
	assert.Equal(t, "/img/7-a.png", out.Items[0].Image, "usa a imagem marcada como principal")
	assert.True(t, out.SidePanelOpen, "adicionar à sacola abre o painel lateral")
	assert.Equal(t, "29.9", out.Subtotal.String())
}

// ──────────────────────────────────────────────────────────────────────────────
// Rotas protegidas de ponta a ponta
// ──────────────────────────────────────────────────────────────────────────────

func TestRotaAdmin_ClienteERedirecionado(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)
	postJSON(t, sf.app, "/api/login", dto.LoginRequest{Email: "ana@example.com", Senha: "correta"}).Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	resp, err := sf.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestRotaAdmin_AdminAcessa(t *testing.T) {
	srv := backendFalso(t)
	sf := novoStorefront(t, srv.URL)
	postJSON(t, sf.app, "/api/backoffice/login", dto.LoginRequest{Email: "adm@example.com", Senha: "x"}).Body.Close()

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	resp, err := sf.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
