package color

import (
	"strings"

	"github.com/alexisbeaulieu97/themeforge/internal/logger"
)

// Resolver recovers a color the literal parser does not understand by asking
// an external rendering surface.
type Resolver interface {
	Resolve(text string) (RGBA, bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(text string) (RGBA, bool)

// Resolve calls fn.
func (fn ResolverFunc) Resolve(text string) (RGBA, bool) {
	return fn(text)
}

// NopResolver never resolves anything. It is the adapter for headless callers.
type NopResolver struct{}

// Resolve always fails.
func (NopResolver) Resolve(string) (RGBA, bool) {
	return RGBA{}, false
}

// Chain tries each resolver in order and returns the first success.
func Chain(resolvers ...Resolver) Resolver {
	tiers := make([]Resolver, 0, len(resolvers))
	for _, r := range resolvers {
		if r != nil {
			tiers = append(tiers, r)
		}
	}
	return ResolverFunc(func(text string) (RGBA, bool) {
		for _, r := range tiers {
			if c, ok := safeResolve(r, text); ok {
				return c, true
			}
		}
		return RGBA{}, false
	})
}

// Parser resolves color text through the literal parser and, when configured,
// a fallback Resolver.
type Parser struct {
	resolver Resolver
	log      *logger.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithResolver installs the fallback tier used when literal parsing fails.
func WithResolver(r Resolver) Option {
	return func(p *Parser) {
		p.resolver = r
	}
}

// WithLogger attaches a logger that records fallback decisions at debug level.
func WithLogger(l *logger.Logger) Option {
	return func(p *Parser) {
		p.log = l
	}
}

// NewParser builds a Parser. Without options it only understands literal syntax.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var headless = NewParser()

// ParseRGBA returns the canonical color and whether the text was understood.
// On failure the color is Black.
func (p *Parser) ParseRGBA(text string) (RGBA, bool) {
	if c, ok := parseLiteral(text); ok {
		return c, true
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Black, false
	}

	var log *logger.Logger
	if p != nil {
		log = p.log
		if p.resolver != nil {
			if c, ok := safeResolve(p.resolver, trimmed); ok {
				log.Debug("color resolved by fallback tier", map[string]any{"input": trimmed, "color": c.String()})
				return c.Clamp(), true
			}
		}
	}

	log.Debug("color not recognised, using fallback", map[string]any{"input": trimmed})
	return Black, false
}

// Normalize returns the hex and alpha of text, or the sentinel when unparseable.
func (p *Parser) Normalize(text string) Normalized {
	c, _ := p.ParseRGBA(text)
	return c.Normalized()
}

// ToSafeColor returns re-parseable canonical text for any input.
func (p *Parser) ToSafeColor(text string) string {
	c, _ := p.ParseRGBA(text)
	return c.String()
}

// ParseRGBA parses text with the headless parser.
func ParseRGBA(text string) (RGBA, bool) {
	return headless.ParseRGBA(text)
}

// Normalize normalizes text with the headless parser.
func Normalize(text string) Normalized {
	return headless.Normalize(text)
}

// ToSafeColor canonicalizes text with the headless parser.
func ToSafeColor(text string) string {
	return headless.ToSafeColor(text)
}

// Literal parses constant table entries. Unparseable input yields Black.
func Literal(text string) RGBA {
	if c, ok := parseLiteral(text); ok {
		return c
	}
	return Black
}

func safeResolve(r Resolver, text string) (c RGBA, ok bool) {
	defer func() {
		if recover() != nil {
			c, ok = RGBA{}, false
		}
	}()
	return r.Resolve(text)
}
