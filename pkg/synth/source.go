// Package synth implements the synthetic enterprise-graph generator:
// a seeded generation context, per-kind entity generators, the
// relationship weaver, the orchestrator driving them in dependency
// order, and the post-hoc quality scorer.
package synth

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Source is the single deterministic value source for a generation run.
// Every generator and every weaver step draws from it, never from the
// global rand, so a seeded run is fully reproducible. It covers both
// primitive sampling (ints, choices, weighted picks) and structured
// text (names, hostnames, sentences).
type Source struct {
	rng *rand.Rand
}

// NewSource creates a value source seeded with the given seed.
func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Read implements io.Reader over the seeded stream so UUID generation
// shares the run's randomness.
func (s *Source) Read(p []byte) (int, error) {
	return s.rng.Read(p)
}

// UUID returns a random UUID drawn from the seeded stream.
func (s *Source) UUID() string {
	id, err := uuid.NewRandomFromReader(s)
	if err != nil {
		// math/rand's Read never fails; this is unreachable.
		panic(fmt.Sprintf("uuid from seeded source: %v", err))
	}
	return id.String()
}

// Intn returns a value in [0, n). n <= 0 returns 0.
func (s *Source) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// IntRange returns a value in [min, max] inclusive.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

// Float64 returns a value in [0.0, 1.0).
func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

// FloatRange returns a value in [min, max).
func (s *Source) FloatRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.rng.Float64()*(max-min)
}

// Chance returns true with probability p.
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// WeightedIndex picks an index with probability proportional to its
// weight. Zero or negative total weight falls back to uniform.
func (s *Source) WeightedIndex(weights []float64) int {
	if len(weights) == 0 {
		return 0
	}
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return s.Intn(len(weights))
	}
	target := s.rng.Float64() * total
	var acc float64
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}

// Choice returns a uniformly chosen element. Empty input returns the
// zero value.
func Choice[T any](s *Source, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.Intn(len(items))]
}

// Sample returns k distinct elements chosen without replacement, in
// selection order. k larger than the population returns a permutation
// of the whole population.
func Sample[T any](s *Source, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return nil
	}
	if k > len(items) {
		k = len(items)
	}
	indexes := s.rng.Perm(len(items))[:k]
	out := make([]T, 0, k)
	for _, idx := range indexes {
		out = append(out, items[idx])
	}
	return out
}

// Structured text sampling

// FirstName returns a given name.
func (s *Source) FirstName() string {
	return Choice(s, firstNames)
}

// LastName returns a family name.
func (s *Source) LastName() string {
	return Choice(s, lastNames)
}

// Email builds a lowercase corporate address from a name.
func (s *Source) Email(first, last, domain string) string {
	return strings.ToLower(first) + "." + strings.ToLower(last) + "@" + domain
}

// CompanyName composes a plausible company name.
func (s *Source) CompanyName() string {
	return Choice(s, companyAdjectives) + " " + Choice(s, companyNouns) + " " + Choice(s, companySuffixes)
}

// Domain derives a DNS domain from a company-like name.
func (s *Source) Domain(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	if len(fields) == 0 {
		return "example.com"
	}
	return fields[0] + ".com"
}

// Hostname builds a datacenter-style host name.
func (s *Source) Hostname(prefix string, index int) string {
	return fmt.Sprintf("%s-%03d.%s", prefix, index, Choice(s, hostSites))
}

// IPv4 returns a private RFC1918 address.
func (s *Source) IPv4() string {
	return fmt.Sprintf("10.%d.%d.%d", s.Intn(256), s.Intn(256), s.IntRange(2, 254))
}

// CIDR returns a /24 inside 10.0.0.0/8.
func (s *Source) CIDR() string {
	return fmt.Sprintf("10.%d.%d.0/24", s.Intn(256), s.Intn(256))
}

// Word returns a single lowercase word.
func (s *Source) Word() string {
	return Choice(s, loremWords)
}

// Sentence builds a sentence with at least minWords words.
func (s *Source) Sentence(minWords int) string {
	if minWords < 1 {
		minWords = 1
	}
	n := minWords + s.Intn(5)
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		words = append(words, Choice(s, loremWords))
	}
	sentence := strings.Join(words, " ")
	return strings.ToUpper(sentence[:1]) + sentence[1:] + "."
}

// Paragraph joins several sentences into a prose block.
func (s *Source) Paragraph(sentences int) string {
	if sentences < 1 {
		sentences = 1
	}
	parts := make([]string, 0, sentences)
	for i := 0; i < sentences; i++ {
		parts = append(parts, s.Sentence(5))
	}
	return strings.Join(parts, " ")
}

// CVE fabricates a CVE identifier.
func (s *Source) CVE() string {
	return fmt.Sprintf("CVE-%d-%05d", s.IntRange(2018, 2025), s.IntRange(1000, 99999))
}
