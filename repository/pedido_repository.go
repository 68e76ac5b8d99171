package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/drxagencia/mateus-burger/entity"
)

// PedidoRepository grava pedidos na coleção da empresa. POST na REST API
// equivale ao push do Realtime Database: o servidor gera a chave única.
type PedidoRepository struct {
	BaseURL string
	Client  *http.Client
}

func NewPedidoRepository(baseURL string) *PedidoRepository {
	return &PedidoRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *PedidoRepository) Enviar(ctx context.Context, companyID string, pedido *entity.Pedido) error {
	body, err := json.Marshal(pedido)
	if err != nil {
		return fmt.Errorf("encode pedido: %w", err)
	}

	url := fmt.Sprintf("%s/empresas/%s/pedidos.json", r.BaseURL, companyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := r.Client.Do(req)
	if err != nil {
		return fmt.Errorf("enviar pedido: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("enviar pedido: status %d", res.StatusCode)
	}
	return nil
}
