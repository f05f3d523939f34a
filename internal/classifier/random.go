// Package classifier содержит демо-классификаторы голоса, жестов и встряхивания.
// Реальной модели нет: результат определяется случайными величинами и входными данными.
package classifier

import "math/rand/v2"

// Random - источник псевдослучайных чисел.
// *rand.Rand из math/rand/v2 удовлетворяет интерфейсу, поэтому в тестах
// подставляется генератор с фиксированным seed.
type Random interface {
	Float64() float64
	IntN(n int) int
}

type globalRandom struct{}

func (globalRandom) Float64() float64 { return rand.Float64() }
func (globalRandom) IntN(n int) int   { return rand.IntN(n) }

// DefaultRandom возвращает потокобезопасный глобальный источник math/rand/v2
func DefaultRandom() Random {
	return globalRandom{}
}

// NewSeeded создает детерминированный источник
func NewSeeded(seed uint64) Random {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// uniform возвращает значение из [low, high)
func uniform(r Random, low, high float64) float64 {
	return low + (high-low)*r.Float64()
}
