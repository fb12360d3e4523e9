// Package sid mints stable identifiers for definitions and their
// sub-expressions. The semantic index keys every binding and declaration by
// the Definition that introduced it, and a definition's sub-expressions must
// be keyable so their types can be fetched from a per-definition inference
// result; both kinds of key need to be stable across process runs for the
// memoizing database's on-disk revision ledger to be worth keeping.
package sid

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// SID is a stable identifier: a truncated hex digest over the identifying
// parts of a definition or expression. Equal inputs always produce equal
// SIDs, across processes and platforms.
type SID string

func digest(parts []string) SID {
	sum := sha256.Sum256([]byte(strings.Join(parts, "|")))
	return SID(hex.EncodeToString(sum[:])[:16])
}

// ForDefinition returns the SID of a definition: file is the defining
// module's canonical identity (module.Module.Identity, or a synthetic key
// like "<repl>" for definitions with no backing file), kind is the
// definition kind ("class", "function", ...), and qualname is the
// dotted name of the definition within the file.
func ForDefinition(file, kind, qualname string) SID {
	return digest([]string{file, kind, qualname})
}

// ForExpr returns the SID of a sub-expression of a definition, keyed by the
// child-index path from the definition's own AST node down to the
// expression. The same (definition, path) pair always yields the same SID,
// which is what lets a per-definition inference result be consulted for an
// individual sub-expression's type.
func ForExpr(def SID, childPath ...int) SID {
	parts := make([]string, 1, 1+len(childPath))
	parts[0] = string(def)
	for _, idx := range childPath {
		parts = append(parts, strconv.Itoa(idx))
	}
	return digest(parts)
}
