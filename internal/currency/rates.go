package currency

import (
	"fmt"
	"math"
	"sort"

	"github.com/DanielPopoola/ficmart-calculator/internal/domain"
)

// Pair is an ordered currency pair. The rate for (A, B) says nothing about (B, A).
type Pair struct {
	From domain.Currency
	To   domain.Currency
}

func (p Pair) String() string {
	return fmt.Sprintf("%s-%s", p.From, p.To)
}

// Table is an immutable set of directed exchange rates. It is built once
// and is safe for any number of concurrent readers.
type Table struct {
	rates map[Pair]float64
}

// These are variables so the derived cross rates are computed in float64
// at run time instead of exactly at compile time.
var (
	eurToUSD = 1.1
	usdToGBP = 0.8
)

// DefaultTable returns the fixed rate table the service ships with.
func DefaultTable() *Table {
	return MustNewTable(map[Pair]float64{
		{From: domain.EUR, To: domain.USD}: eurToUSD,
		{From: domain.USD, To: domain.EUR}: 1 / eurToUSD,
		{From: domain.USD, To: domain.GBP}: usdToGBP,
		{From: domain.GBP, To: domain.USD}: 1 / usdToGBP,
		{From: domain.EUR, To: domain.GBP}: eurToUSD * usdToGBP,
		{From: domain.GBP, To: domain.EUR}: 1 / (eurToUSD * usdToGBP),
	})
}

// NewTable copies rates into a new Table. Codes must be three upper case
// letters and every rate must be positive and finite.
func NewTable(rates map[Pair]float64) (*Table, error) {
	copied := make(map[Pair]float64, len(rates))
	for pair, rate := range rates {
		if !pair.From.IsWellFormed() || !pair.To.IsWellFormed() {
			return nil, fmt.Errorf("invalid currency pair %s", pair)
		}
		if pair.From == pair.To {
			return nil, fmt.Errorf("identity pair %s cannot carry a rate", pair)
		}
		if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
			return nil, fmt.Errorf("invalid rate %v for %s", rate, pair)
		}
		copied[pair] = rate
	}
	return &Table{rates: copied}, nil
}

func MustNewTable(rates map[Pair]float64) *Table {
	t, err := NewTable(rates)
	if err != nil {
		panic(err)
	}
	return t
}

// Rate looks up the rate for the ordered pair (from, to).
func (t *Table) Rate(from, to domain.Currency) (float64, bool) {
	rate, ok := t.rates[Pair{From: from, To: to}]
	return rate, ok
}

// Len returns the number of pairs in the table.
func (t *Table) Len() int {
	return len(t.rates)
}

// Pairs returns every pair in the table, sorted.
func (t *Table) Pairs() []Pair {
	pairs := make([]Pair, 0, len(t.rates))
	for pair := range t.rates {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

// Currencies returns each currency appearing at either end of a pair, sorted.
func (t *Table) Currencies() []domain.Currency {
	seen := make(map[domain.Currency]struct{})
	for pair := range t.rates {
		seen[pair.From] = struct{}{}
		seen[pair.To] = struct{}{}
	}

	currencies := make([]domain.Currency, 0, len(seen))
	for c := range seen {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i] < currencies[j] })
	return currencies
}
