package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func servidorRemoto(t *testing.T, rotas map[string]string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		body, ok := rotas[r.URL.Path]
		if !ok {
			body = "null"
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
}

func TestFetchMontaEmpresa(t *testing.T) {
	srv := servidorRemoto(t, map[string]string{
		"/empresas/universo_acai/config.json":   `{"email_dono":"dono@acai.com","nome_fantasia":"Universo Açaí","hora_abre":"15:00","hora_fecha":"23:59"}`,
		"/empresas/universo_acai/cardapio.json": `{"sabores":[{"nome":"Morango","disponivel":true}]}`,
	}, http.StatusOK)
	defer srv.Close()

	repo := NewEmpresaRepository(srv.URL)
	emp, err := repo.Fetch(context.Background(), "universo_acai")
	require.NoError(t, err)

	assert.Equal(t, "Universo Açaí", emp.Config.NomeFantasia)
	assert.Equal(t, "15:00", emp.Config.HoraAbre)
	assert.NotEmpty(t, emp.Cardapio)
}

func TestFetchSemCardapio(t *testing.T) {
	srv := servidorRemoto(t, map[string]string{
		"/empresas/x/config.json": `{"email_dono":"d@x.com"}`,
	}, http.StatusOK)
	defer srv.Close()

	repo := NewEmpresaRepository(srv.URL)
	emp, err := repo.Fetch(context.Background(), "x")
	require.NoError(t, err)
	assert.Empty(t, emp.Cardapio)
}

func TestFetchConfigAusenteENotFound(t *testing.T) {
	srv := servidorRemoto(t, nil, http.StatusOK) // tudo responde "null"
	defer srv.Close()

	repo := NewEmpresaRepository(srv.URL)
	_, err := repo.Fetch(context.Background(), "fantasma")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFetchPermissaoNegada(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := servidorRemoto(t, nil, status)
		repo := NewEmpresaRepository(srv.URL)
		_, err := repo.Fetch(context.Background(), "x")
		assert.ErrorIs(t, err, ErrPermissionDenied, "status %d", status)
		srv.Close()
	}
}

func TestFetchErroGenerico(t *testing.T) {
	srv := servidorRemoto(t, nil, http.StatusInternalServerError)
	defer srv.Close()

	repo := NewEmpresaRepository(srv.URL)
	_, err := repo.Fetch(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPermissionDenied)
	assert.NotErrorIs(t, err, ErrNotFound)
}
