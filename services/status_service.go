package services

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	MsgAberto  = "Aberto agora"
	msgFechado = "Abrimos às "
)

// Status é o resultado da checagem de funcionamento.
type Status struct {
	Aberto   bool   `json:"aberto"`
	Mensagem string `json:"mensagem"`
}

// StatusService mantém a janela diária de funcionamento e responde se a
// empresa está aberta. Check sempre reamostra o relógio: quem adiciona na
// sacola não pode confiar num status envelhecido pelo intervalo do ticker.
type StatusService struct {
	mu        sync.Mutex
	horaAbre  string
	horaFecha string
	ultimo    Status
	temUltimo bool
	onChange  func(Status)

	now func() time.Time
}

func NewStatusService() *StatusService {
	return &StatusService{now: time.Now}
}

// OnChange registra o callback chamado a cada transição aberto/fechado.
func (s *StatusService) OnChange(fn func(Status)) {
	s.mu.Lock()
	s.onChange = fn
	s.mu.Unlock()
}

// SetJanela troca a janela (chamado a cada load da empresa) e reavalia.
func (s *StatusService) SetJanela(horaAbre, horaFecha string) {
	s.mu.Lock()
	s.horaAbre = horaAbre
	s.horaFecha = horaFecha
	s.mu.Unlock()
	s.refresh()
}

// Check reavalia agora, sem estado escondido além da janela configurada.
func (s *StatusService) Check() Status {
	s.mu.Lock()
	abre, fecha := s.horaAbre, s.horaFecha
	s.mu.Unlock()
	return Evaluate(s.now(), abre, fecha)
}

// Start roda a avaliação imediatamente e depois a cada minuto, até o
// contexto ser cancelado. O ticker só alimenta as notificações; a gate da
// sacola usa Check direto.
func (s *StatusService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		s.refresh()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh()
			}
		}
	}()
}

func (s *StatusService) refresh() {
	st := s.Check()

	s.mu.Lock()
	mudou := !s.temUltimo || st != s.ultimo
	s.ultimo = st
	s.temUltimo = true
	fn := s.onChange
	s.mu.Unlock()

	if mudou && fn != nil {
		fn(st)
	}
}

// Evaluate é a regra pura: dado o instante e a janela, decide o status.
// Janela ausente ou ilegível significa sempre aberto. Fechamento menor que
// abertura é janela que cruza a meia-noite.
func Evaluate(t time.Time, horaAbre, horaFecha string) Status {
	if horaAbre == "" || horaFecha == "" {
		return Status{Aberto: true, Mensagem: MsgAberto}
	}

	abre, okAbre := parseHora(horaAbre)
	fecha, okFecha := parseHora(horaFecha)
	if !okAbre || !okFecha {
		return Status{Aberto: true, Mensagem: MsgAberto}
	}

	atual := t.Hour()*60 + t.Minute()

	var aberto bool
	if fecha < abre {
		aberto = atual >= abre || atual <= fecha
	} else {
		aberto = atual >= abre && atual <= fecha
	}

	if aberto {
		return Status{Aberto: true, Mensagem: MsgAberto}
	}
	return Status{Aberto: false, Mensagem: msgFechado + horaAbre}
}

// parseHora converte "HH:MM" em minutos desde a meia-noite.
func parseHora(s string) (int, bool) {
	partes := strings.SplitN(s, ":", 2)
	if len(partes) != 2 {
		return 0, false
	}
	h, err1 := strconv.Atoi(strings.TrimSpace(partes[0]))
	m, err2 := strconv.Atoi(strings.TrimSpace(partes[1]))
	if err1 != nil || err2 != nil {
		return 0, false
	}
	return h*60 + m, true
}
