package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/canek/storefront/internal/application/dto"
	"github.com/canek/storefront/internal/domain"
	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/pkg/logger"
)

// Config do cliente do backend CaneK.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client consome a API REST do backend (colaborador externo, fora do escopo
// deste repositório). Taxonomia de erros: falha de conectividade vira
// domain.ErrBackendUnreachable; resposta não-2xx vira *APIError com o texto do
// backend verbatim. Nenhuma chamada é retentada: toda falha é terminal para a
// ação do usuário e exige novo disparo manual.
type Client struct {
	base string
	http *http.Client
	log  *logger.Logger
}

// APIError resposta não-2xx do backend. Message carrega o texto devolvido pelo
// backend, ou um fallback genérico quando o corpo vem vazio.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend %d: %s", e.Status, e.Message)
}

const fallbackErrorMessage = "ocorreu um erro no servidor"

// New constrói o cliente.
func New(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		base: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{Timeout: timeout},
		log:  log,
	}
}

// Login autentica um cliente. Devolve o corpo bruto da resposta
// ({token, tipoUsuario, ...}), que é o registro persistido pela sessão.
func (c *Client) Login(ctx context.Context, in dto.LoginRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", in, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// AdminLogin autentica uma conta do backoffice ({token, cargo, ...}).
func (c *Client) AdminLogin(ctx context.Context, in dto.LoginRequest) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/auth/administrador/login", "", in, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Register cadastra um novo cliente.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/cadastro", "", in, nil)
}

// ListActiveProducts lista os produtos ativos da vitrine.
func (c *Client) ListActiveProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/auth/produto/listarTodosAtivos/true?status=true", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAllProducts lista todos os produtos, ativos e inativos (backoffice).
func (c *Client) ListAllProducts(ctx context.Context) ([]entity.Product, error) {
	var out []entity.Product
	if err := c.do(ctx, http.MethodGet, "/auth/produto/listar", "", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProduct busca um produto por id. 404 do backend vira domain.ErrNotFound.
func (c *Client) GetProduct(ctx context.Context, id int64) (*entity.Product, error) {
	var out entity.Product
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/auth/produto/%d", id), "", nil, &out)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &out, nil
}

// QuoteShipping calcula as opções de frete para um CEP de 8 dígitos.
func (c *Client) QuoteShipping(ctx context.Context, cep string) ([]entity.ShippingOption, error) {
	if !validCEP(cep) {
		return nil, domain.ErrInvalidCEP
	}
	var out []entity.ShippingOption
	if err := c.do(ctx, http.MethodPost, "/auth/produto/calcularFrete", "", dto.ShippingQuoteRequest{CEP: cep}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateProduct cadastra um produto (backoffice, requer bearer token).
func (c *Client) CreateProduct(ctx context.Context, token string, in dto.ProductRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/produto/cadastrar", token, in, nil)
}

// UpdateProduct atualiza um produto existente.
func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in dto.ProductRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/produto/atualizar/%d", id), token, in, nil)
}

// ToggleProductStatus inverte o status ativo/inativo de um produto.
func (c *Client) ToggleProductStatus(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/produto/%d/status", id), token, nil, nil)
}

// CreateAdmin cadastra um usuário do backoffice.
func (c *Client) CreateAdmin(ctx context.Context, token string, in dto.AdminUserRequest) error {
	return c.do(ctx, http.MethodPost, "/auth/administrador/cadastro", token, in, nil)
}

// ListAdmins lista os usuários do backoffice.
func (c *Client) ListAdmins(ctx context.Context, token string) ([]entity.AdminUser, error) {
	var out []entity.AdminUser
	if err := c.do(ctx, http.MethodGet, "/auth/administrador/findAll", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetAdmin busca um usuário do backoffice por id.
func (c *Client) GetAdmin(ctx context.Context, token string, id int64) (*entity.AdminUser, error) {
	var out entity.AdminUser
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/auth/administrador/%d", id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAdmin atualiza um usuário do backoffice.
func (c *Client) UpdateAdmin(ctx context.Context, token string, id int64, in dto.AdminUserRequest) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/administrador/%d", id), token, in, nil)
}

// ToggleAdminStatus inverte o status ativo/inativo de um usuário do backoffice.
func (c *Client) ToggleAdminStatus(ctx context.Context, token string, id int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/auth/administrador/%d/status", id), token, nil, nil)
}

// Upload envia uma imagem (multipart) e devolve a URL atribuída pelo backend.
func (c *Client) Upload(ctx context.Context, token, filename string, file io.Reader) (*dto.UploadResponse, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, err
	}
	if err := mw.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/auth/upload", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	var out dto.UploadResponse
	if err := c.send(req, "/auth/upload", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// validCEP exige exatamente 8 dígitos, como no formulário original.
func validCEP(cep string) bool {
	if len(cep) != 8 {
		return false
	}
	for _, r := range cep {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// do monta e envia uma requisição JSON. body nil omite o corpo; out nil ignora
// a resposta; out *json.RawMessage captura o corpo bruto.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.send(req, path, out)
}

// send executa a requisição e aplica a taxonomia de erros.
func (c *Client) send(req *http.Request, path string, out any) error {
	reqID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn().Str("req_id", reqID).Str("method", req.Method).Str("path", path).Err(err).
			Msg("backend inacessível")
		return domain.ErrBackendUnreachable
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.ErrBackendUnreachable
	}

	c.log.Debug().Str("req_id", reqID).Str("method", req.Method).Str("path", path).
		Int("status", resp.StatusCode).Dur("elapsed", time.Since(start)).
		Msg("resposta do backend")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := strings.TrimSpace(string(data))
		if msg == "" {
			msg = fallbackErrorMessage
		}
		return &APIError{Status: resp.StatusCode, Message: msg}
	}

	switch v := out.(type) {
	case nil:
		return nil
	case *json.RawMessage:
		*v = data
		return nil
	default:
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decodificar resposta de %s: %w", path, err)
		}
		return nil
	}
}
