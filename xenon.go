// Package xenon provides an immutable, namespace-aware XML document
// tree, together with the engines that build such trees from a flat
// stream of tokenizer events and flatten them back out again.
//
// The package deliberately does not read or write bytes. Tokenization
// and wire output are the business of external collaborators (see the
// xmltok package for a bridge to encoding/xml); the core deals only in
// the Token stream and the tree built from it.
//
// Namespace handling revolves around two types: Scope, the absolute
// prefix-to-URI mapping in effect at one point in a document, and
// Declarations, the delta declared directly on one element. Scopes are
// immutable; Resolve applies a delta to produce a new scope, and
// Relativize recovers the minimal delta between two scopes. The
// serializer uses Relativize at every level, so re-serialized
// documents carry no redundant namespace declarations.
//
// Because every node is immutable, subtrees may be shared freely
// between trees and across goroutines without copying or locking.
package xenon

// Version describes the version of this library.
const Version = "0.0.1"
