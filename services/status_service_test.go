package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func horario(h, m int) time.Time {
	return time.Date(2025, 3, 10, h, m, 0, 0, time.Local)
}

func TestEvaluateJanelaNormal(t *testing.T) {
	st := Evaluate(horario(16, 0), "15:00", "23:59")
	assert.True(t, st.Aberto)
	assert.Equal(t, "Aberto agora", st.Mensagem)

	st = Evaluate(horario(14, 59), "15:00", "23:59")
	assert.False(t, st.Aberto)
	assert.Equal(t, "Abrimos às 15:00", st.Mensagem)

	// bordas inclusivas
	assert.True(t, Evaluate(horario(15, 0), "15:00", "23:59").Aberto)
	assert.True(t, Evaluate(horario(23, 59), "15:00", "23:59").Aberto)
}

func TestEvaluateJanelaCruzandoMeiaNoite(t *testing.T) {
	casos := []struct {
		h, m   int
		aberto bool
	}{
		{23, 30, true},
		{3, 0, false},
		{12, 0, false},
		{22, 0, true},
		{2, 0, true},
		{2, 1, false},
	}
	for _, c := range casos {
		st := Evaluate(horario(c.h, c.m), "22:00", "02:00")
		assert.Equal(t, c.aberto, st.Aberto, "às %02d:%02d", c.h, c.m)
	}
}

func TestEvaluateSemJanela(t *testing.T) {
	for _, par := range [][2]string{{"", ""}, {"15:00", ""}, {"", "23:00"}, {"abc", "23:00"}} {
		st := Evaluate(horario(4, 0), par[0], par[1])
		assert.True(t, st.Aberto)
		assert.Equal(t, "Aberto agora", st.Mensagem)
	}
}

func TestCheckReamostraORelogio(t *testing.T) {
	s := NewStatusService()
	s.SetJanela("22:00", "02:00")

	s.now = func() time.Time { return horario(23, 0) }
	assert.True(t, s.Check().Aberto)

	// o relógio andou além do fechamento; Check não pode usar valor velho
	s.now = func() time.Time { return horario(3, 0) }
	assert.False(t, s.Check().Aberto)
}

func TestRefreshNotificaSoNasTransicoes(t *testing.T) {
	s := NewStatusService()
	s.now = func() time.Time { return horario(12, 0) }

	var notificados []Status
	s.OnChange(func(st Status) { notificados = append(notificados, st) })

	s.SetJanela("10:00", "18:00") // primeira avaliação sempre notifica
	s.refresh()                   // mesmo status, sem notificação nova
	assert.Len(t, notificados, 1)
	assert.True(t, notificados[0].Aberto)

	s.now = func() time.Time { return horario(19, 0) }
	s.refresh()
	assert.Len(t, notificados, 2)
	assert.False(t, notificados[1].Aberto)
	assert.Equal(t, "Abrimos às 10:00", notificados[1].Mensagem)
}
