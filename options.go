package xenon

import "github.com/lestrrat-go/option"

type Option = option.Interface

type identKeepComments struct{}
type identKeepPI struct{}

// CanonicalizeOption configures how trees are projected to canonical
// form for comparison.
type CanonicalizeOption interface {
	Option
	canonicalizeOption()
}

type canonicalizeOption struct {
	Option
}

func (*canonicalizeOption) canonicalizeOption() {}

// WithComments controls whether comments survive canonicalization.
// The default is to drop them.
func WithComments(v bool) CanonicalizeOption {
	return &canonicalizeOption{option.New(identKeepComments{}, v)}
}

// WithProcessingInstructions controls whether processing instructions
// survive canonicalization. The default is to drop them.
func WithProcessingInstructions(v bool) CanonicalizeOption {
	return &canonicalizeOption{option.New(identKeepPI{}, v)}
}
