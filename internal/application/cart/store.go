package cart

import (
	"encoding/json"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/canek/storefront/internal/domain/entity"
	"github.com/canek/storefront/internal/domain/storage"
	"github.com/canek/storefront/pkg/logger"
)

// Chave persistida da sequência de itens. O frete e o painel lateral são
// efêmeros por visita e nunca vão ao armazenamento.
const keyCart = "cart"

// Store carrinho de compras: itens com quantidade, frete selecionado e
// visibilidade do painel lateral. Toda mutação de itens persiste a sequência
// completa, sempre depois da atualização em memória, para que um leitor do
// armazenamento nunca observe estado "à frente" da cópia em memória.
type Store struct {
	kv  storage.KeyValue
	log *logger.Logger

	mu            sync.Mutex
	items         []entity.LineItem
	shippingCost  decimal.Decimal
	sidePanelOpen bool
}

// New cria o Store reidratando os itens persistidos. Dados ilegíveis viram
// carrinho vazio, sem erro para o usuário.
func New(kv storage.KeyValue, log *logger.Logger) *Store {
	s := &Store{kv: kv, log: log}
	raw, err := kv.Get(keyCart)
	if err != nil {
		return s
	}
	var items []entity.LineItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Warn().Err(err).Msg("carrinho persistido ilegível, iniciando vazio")
		return s
	}
	for i := range items {
		if items[i].Quantity < 1 {
			items[i].Quantity = 1
		}
	}
	s.items = items
	return s
}

// AddItem adiciona o produto ao carrinho: id já presente incrementa a
// quantidade; id novo vira item com quantidade 1, anexado ao final, preservando
// a ordem dos existentes.
func (s *Store) AddItem(p entity.CartProduct) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == p.ID {
			s.items[i].Quantity++
			s.persistLocked()
			return
		}
	}
	s.items = append(s.items, entity.LineItem{
		ID:        p.ID,
		Name:      p.Name,
		UnitPrice: p.UnitPrice,
		Image:     p.Image,
		Quantity:  1,
	})
	s.persistLocked()
}

// SetQuantity define a quantidade do item, com piso em 1. Id ausente é no-op.
func (s *Store) SetQuantity(id int64, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = qty
			s.persistLocked()
			return
		}
	}
}

// DecrementQuantity reduz a quantidade em 1, com piso em 1.
func (s *Store) DecrementQuantity(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			if s.items[i].Quantity > 1 {
				s.items[i].Quantity--
			}
			s.persistLocked()
			return
		}
	}
}

// RemoveItem remove o item por completo, preservando a ordem dos demais.
func (s *Store) RemoveItem(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return
		}
	}
}

// Clear esvazia os itens e zera o frete, incondicionalmente.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.shippingCost = decimal.Zero
	s.persistLocked()
}

// SetShippingCost sobrescreve o frete selecionado. Não persiste: o frete é
// efêmero por visita e deve ser recalculado/reescolhido a cada sessão.
func (s *Store) SetShippingCost(cost decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shippingCost = cost
}

// ShippingCost frete selecionado corrente.
func (s *Store) ShippingCost() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shippingCost
}

// Subtotal soma de unitPrice×quantity, sempre recomputada, nunca cacheada.
func (s *Store) Subtotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *Store) subtotalLocked() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range s.items {
		sum = sum.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return sum
}

// Total subtotal mais frete, recomputado a cada chamada.
func (s *Store) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked().Add(s.shippingCost)
}

// Items cópia da sequência corrente de itens, na ordem de inserção.
func (s *Store) Items() []entity.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.LineItem, len(s.items))
	copy(out, s.items)
	return out
}

// OpenSidePanel abre o painel lateral do carrinho (estado efêmero de UI).
func (s *Store) OpenSidePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidePanelOpen = true
}

// CloseSidePanel fecha o painel lateral.
func (s *Store) CloseSidePanel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sidePanelOpen = false
}

// SidePanelOpen informa a visibilidade corrente do painel lateral.
func (s *Store) SidePanelOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sidePanelOpen
}

// persistLocked grava a sequência completa de itens no armazenamento.
// Falha de escrita é logada e não interrompe a operação: o estado em memória
// continua válido e a próxima mutação tenta de novo.
func (s *Store) persistLocked() {
	items := s.items
	if items == nil {
		items = []entity.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		s.log.Error().Err(err).Msg("serialização do carrinho")
		return
	}
	if err := s.kv.Set(keyCart, raw); err != nil {
		s.log.Error().Err(err).Msg("persistência do carrinho")
	}
}
