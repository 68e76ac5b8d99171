package money

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Aritmética de dinheiro em centavos inteiros. O documento remoto usa
// reais em float; a conversão acontece só na borda.

var ErrValorInvalido = errors.New("valor monetário inválido")

// Centavos converte reais em centavos.
func Centavos(reais float64) int64 {
	return int64(math.Round(reais * 100))
}

// Reais converte centavos em reais.
func Reais(centavos int64) float64 {
	return float64(centavos) / 100
}

// Parse aceita vírgula ou ponto como separador decimal ("60,50", "60.50", "60").
func Parse(s string) (int64, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, ErrValorInvalido
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrValorInvalido
	}
	return Centavos(v), nil
}

// Format formata centavos no padrão brasileiro: "R$ 12,50".
func Format(centavos int64) string {
	sinal := ""
	if centavos < 0 {
		sinal = "-"
		centavos = -centavos
	}
	return fmt.Sprintf("%sR$ %d,%02d", sinal, centavos/100, centavos%100)
}
