package infer

import (
	"strings"

	"github.com/funvibe/funkos/internal/config"
)

// TypesSignature serializes the inferred type and layout maps into the
// compact string used as the specialization cache key. Iteration follows
// the maps' insertion order; two calls inferring the same types in the
// same parameter order produce byte-identical signatures. Returns "" when
// both maps are empty.
func TypesSignature(typeMap *TypeMap, layoutMap *LayoutMap) string {
	if typeMap.Len() == 0 && layoutMap.Len() == 0 {
		return ""
	}

	var b strings.Builder
	for _, e := range typeMap.Pairs() {
		b.WriteString(e.Descriptor)
		if strings.Contains(e.Descriptor, config.ViewMarker) {
			if l, ok := layoutMap.Get(e.Name); ok {
				b.WriteString(l.String())
			}
		}
	}
	signature := b.String()

	// no inferred types, only layouts
	if signature == "" {
		for _, e := range layoutMap.Pairs() {
			signature += e.Name + e.Layout.String()
		}
	}

	return Compact(signature)
}

// Compact applies the literal contraction table, in order. The order is
// load-bearing: the View marker and the prefixes must collapse before the
// primitive names, or a primitive rewrite could match inside them.
func Compact(signature string) string {
	for _, c := range config.Contractions {
		signature = strings.ReplaceAll(signature, c.From, c.To)
	}
	return signature
}
