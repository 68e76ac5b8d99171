package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/drxagencia/mateus-burger/entity"
)

// Prefixo com versão de formato: mudar o schema do envelope invalida todo o
// cache antigo sem migração (foi o que aconteceu do v1 para o v2).
const cachePrefix = "flexorder_cache_v2_"

// Storage é o armazenamento local durável chave/valor.
// Get devolve ok=false quando a chave não existe.
type Storage interface {
	Get(chave string) (valor string, ok bool, err error)
	Set(chave, valor string) error
}

// Fetcher busca o registro da empresa no banco remoto.
type Fetcher interface {
	Fetch(ctx context.Context, companyID string) (*entity.Empresa, error)
}

// envelope persistido no Storage, serializado como string JSON.
type cacheEnvelope struct {
	Timestamp int64           `json:"timestamp"` // epoch millis da gravação
	Data      *entity.Empresa `json:"data"`
}

// EmpresaService é o cache com TTL do registro da empresa, com fallback
// transparente para a busca remota.
type EmpresaService struct {
	store  Storage
	remote Fetcher
	ttl    time.Duration

	now func() time.Time
}

func NewEmpresaService(store Storage, remote Fetcher, ttl time.Duration) *EmpresaService {
	return &EmpresaService{store: store, remote: remote, ttl: ttl, now: time.Now}
}

// Load devolve o registro do cache enquanto ele estiver dentro do TTL; fora
// disso busca no remoto e regrava o envelope inteiro. Falha de persistência
// não derruba a chamada: o resultado da rede é devolvido do mesmo jeito.
func (s *EmpresaService) Load(ctx context.Context, companyID string) (*entity.Empresa, error) {
	chave := cachePrefix + companyID

	if raw, ok, err := s.store.Get(chave); err == nil && ok {
		var env cacheEnvelope
		if err := json.Unmarshal([]byte(raw), &env); err == nil && env.Data != nil {
			idade := s.now().UnixMilli() - env.Timestamp
			if idade < s.ttl.Milliseconds() {
				return env.Data, nil
			}
		}
	} else if err != nil {
		log.Printf("leitura do cache falhou: %v", err)
	}

	emp, err := s.remote.Fetch(ctx, companyID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(cacheEnvelope{Timestamp: s.now().UnixMilli(), Data: emp}); err == nil {
		if err := s.store.Set(chave, string(raw)); err != nil {
			log.Printf("escrita do cache falhou: %v", err)
		}
	}
	return emp, nil
}
