package session

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/canek/storefront/internal/domain"
	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/internal/domain/storage"
	"github.com/canek/storefront/pkg/logger"
	"github.com/canek/storefront/pkg/token"
)

// Chaves persistidas, o mesmo par do storefront original.
const (
	keyToken = "userToken"
	keyUser  = "userData"
)

// Rotas de destino da navegação pós-login/logout.
const (
	RouteHome           = "/"
	RouteAdminDashboard = "/admin/dashboard"
)

// Navigator porta de navegação; o Store dispara redirecionamentos por papel
// após login e volta à home após logout.
type Navigator interface {
	NavigateTo(route string)
}

// Store fonte única da verdade sobre "quem está logado", com persistência local
// e navegação pós-login por papel. Construído uma única vez na raiz da aplicação
// e injetado onde for preciso, nunca como singleton ambiente.
type Store struct {
	kv  storage.KeyValue
	nav Navigator
	log *logger.Logger
	now func() time.Time

	mu      sync.Mutex
	loading bool
	session *entity.Session
}

// New cria o Store ainda em carregamento: até Initialize terminar, consumidores
// (guards de rota) devem tratar o estado como "decisão adiada".
func New(kv storage.KeyValue, nav Navigator, log *logger.Logger) *Store {
	return &Store{kv: kv, nav: nav, log: log, now: time.Now, loading: true}
}

// Initialize reidrata a sessão persistida, uma vez, na partida do processo.
// Dados corrompidos ou token já expirado limpam as duas chaves e deixam o
// estado não autenticado; a falha é local e silenciosa para o usuário final
// (apenas diagnóstico em log). loading fica false ao final, em qualquer caso.
func (s *Store) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()

	tok, err := s.kv.Get(keyToken)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Debug().Err(err).Msg("leitura do token persistido")
		}
		return
	}
	raw, err := s.kv.Get(keyUser)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Debug().Err(err).Msg("leitura dos dados de usuário persistidos")
		}
		return
	}

	var payload loginPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		s.log.Warn().Err(err).Msg("dados de usuário persistidos corrompidos, limpando sessão")
		s.clearPersistedLocked()
		return
	}
	if token.Expired(string(tok), s.now()) {
		s.log.Info().Msg("token persistido expirado, limpando sessão")
		s.clearPersistedLocked()
		return
	}

	role, ok := entity.NormalizeRole(payload.role())
	if !ok {
		s.log.Warn().Str("papel", payload.role()).Msg("papel não reconhecido na sessão persistida")
	}
	s.session = &entity.Session{Token: string(tok), Role: role, User: raw}
	s.log.Info().Str("papel", string(role)).Msg("sessão reidratada")
}

// loginPayload campos mínimos extraídos da resposta de login; o restante do
// registro é repassado opaco.
type loginPayload struct {
	Token       string `json:"token"`
	Cargo       string `json:"cargo"`
	TipoUsuario string `json:"tipoUsuario"`
}

// role devolve o papel bruto: cargo primeiro, depois tipoUsuario, primeiro não vazio.
func (p loginPayload) role() string {
	if p.Cargo != "" {
		return p.Cargo
	}
	return p.TipoUsuario
}

// Login registra a resposta de login do backend: persiste token e registro
// completo, atualiza o estado em memória e navega conforme o papel. O despacho
// por papel é total: backoffice (ADMIN/ESTOQUISTA) vai ao painel administrativo,
// todo o resto (cliente, papel desconhecido) vai à home.
func (s *Store) Login(raw json.RawMessage) error {
	var payload loginPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return domain.ErrInvalidInput
	}
	if payload.Token == "" {
		return domain.ErrInvalidInput
	}

	role, ok := entity.NormalizeRole(payload.role())
	if !ok {
		s.log.Warn().Str("papel", payload.role()).Msg("papel não reconhecido na resposta de login")
	}

	s.mu.Lock()
	if err := s.kv.Set(keyToken, []byte(payload.Token)); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := s.kv.Set(keyUser, raw); err != nil {
		s.mu.Unlock()
		return err
	}
	s.session = &entity.Session{Token: payload.Token, Role: role, User: raw}
	s.mu.Unlock()

	s.log.Info().Str("papel", string(role)).Msg("login efetuado")
	if role.Backoffice() {
		s.nav.NavigateTo(RouteAdminDashboard)
	} else {
		s.nav.NavigateTo(RouteHome)
	}
	return nil
}

// Logout limpa as chaves persistidas e o estado em memória e navega à home.
// Idempotente: chamado sem sessão ativa, só resta a navegação.
func (s *Store) Logout() {
	s.mu.Lock()
	s.clearPersistedLocked()
	s.session = nil
	s.mu.Unlock()
	s.nav.NavigateTo(RouteHome)
}

func (s *Store) clearPersistedLocked() {
	if err := s.kv.Delete(keyToken); err != nil {
		s.log.Debug().Err(err).Msg("remoção do token persistido")
	}
	if err := s.kv.Delete(keyUser); err != nil {
		s.log.Debug().Err(err).Msg("remoção dos dados de usuário persistidos")
	}
}

// Loading informa se a reidratação ainda está em curso.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// IsAuthenticated derivado: true sse há usuário em memória.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session != nil
}

// Role papel da sessão corrente; RoleUnknown sem sessão.
func (s *Store) Role() entity.Role {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return entity.RoleUnknown
	}
	return s.session.Role
}

// Session cópia da sessão corrente, ou nil.
func (s *Store) Session() *entity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return nil
	}
	cp := *s.session
	return &cp
}

// Token bearer token corrente, ou vazio sem sessão.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}
