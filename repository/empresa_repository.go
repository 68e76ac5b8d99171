package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/drxagencia/mateus-burger/entity"
)

// EmpresaRepository lê o registro da empresa pela REST API do Realtime
// Database: GET {base}/empresas/{id}/{subárvore}.json.
type EmpresaRepository struct {
	BaseURL string
	Client  *http.Client
}

func NewEmpresaRepository(baseURL string) *EmpresaRepository {
	return &EmpresaRepository{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Fetch baixa config e cardápio em paralelo. Config ausente é ErrNotFound;
// cardápio ausente não é erro (a empresa pode ainda não ter publicado).
func (r *EmpresaRepository) Fetch(ctx context.Context, companyID string) (*entity.Empresa, error) {
	var (
		wg          sync.WaitGroup
		configRaw   json.RawMessage
		cardapioRaw json.RawMessage
		configErr   error
		cardapioErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		configRaw, configErr = r.get(ctx, fmt.Sprintf("empresas/%s/config", companyID))
	}()
	go func() {
		defer wg.Done()
		cardapioRaw, cardapioErr = r.get(ctx, fmt.Sprintf("empresas/%s/cardapio", companyID))
	}()
	wg.Wait()

	if configErr != nil {
		return nil, configErr
	}
	if cardapioErr != nil {
		return nil, cardapioErr
	}
	if isNull(configRaw) {
		return nil, ErrNotFound
	}

	var cfg entity.Config
	if err := json.Unmarshal(configRaw, &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	emp := &entity.Empresa{Config: cfg}
	if !isNull(cardapioRaw) {
		emp.Cardapio = cardapioRaw
	}
	return emp, nil
}

func (r *EmpresaRepository) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.BaseURL+"/"+path+".json", nil)
	if err != nil {
		return nil, err
	}

	res, err := r.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrPermissionDenied
	default:
		return nil, fmt.Errorf("fetch %s: status %d", path, res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	return json.RawMessage(body), nil
}

// isNull cobre subárvore inexistente: a REST API responde 200 com corpo "null".
func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}
