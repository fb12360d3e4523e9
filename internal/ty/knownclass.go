package ty

// KnownClass enumerates builtins the kernel recognizes by identity rather
// than by structural shape: MRO lookups, operator dispatch, and the to_meta_type
// map all special-case these. The base set is the nine named in the builtins
// table; the rest (complex, range, frozenset, property, classmethod,
// staticmethod, super, BaseException) are carried as well, since nothing
// closes the list.
type KnownClass int

const (
	KnownClassNone KnownClass = iota // not a recognized builtin
	KnownClassBool
	KnownClassObject
	KnownClassBytes
	KnownClassType
	KnownClassInt
	KnownClassFloat
	KnownClassStr
	KnownClassList
	KnownClassTuple
	KnownClassSet
	KnownClassDict
	KnownClassGenericAlias
	KnownClassModuleType
	KnownClassFunctionType
	KnownClassNoneType
	KnownClassComplex
	KnownClassRange
	KnownClassFrozenSet
	KnownClassProperty
	KnownClassClassMethod
	KnownClassStaticMethod
	KnownClassSuper
	KnownClassBaseException
)

var knownClassNames = map[KnownClass]string{
	KnownClassBool:          "bool",
	KnownClassObject:        "object",
	KnownClassBytes:         "bytes",
	KnownClassType:          "type",
	KnownClassInt:           "int",
	KnownClassFloat:         "float",
	KnownClassStr:           "str",
	KnownClassList:          "list",
	KnownClassTuple:         "tuple",
	KnownClassSet:           "set",
	KnownClassDict:          "dict",
	KnownClassGenericAlias:  "GenericAlias",
	KnownClassModuleType:    "ModuleType",
	KnownClassFunctionType:  "FunctionType",
	KnownClassNoneType:      "NoneType",
	KnownClassComplex:       "complex",
	KnownClassRange:         "range",
	KnownClassFrozenSet:     "frozenset",
	KnownClassProperty:      "property",
	KnownClassClassMethod:   "classmethod",
	KnownClassStaticMethod:  "staticmethod",
	KnownClassSuper:         "super",
	KnownClassBaseException: "BaseException",
}

// knownClassModule is the set of modules each KnownClass may be defined in;
// a class is "known as K" only if its defining module's name is one of these
// AND its name matches.
var knownClassModule = map[KnownClass][]string{
	KnownClassGenericAlias: {"types"},
	KnownClassModuleType:   {"types"},
	KnownClassFunctionType: {"types"},
}

func (k KnownClass) String() string {
	if name, ok := knownClassNames[k]; ok {
		return name
	}
	return "<not-known>"
}

// IsKnownClass reports whether name, defined in module mod (one of
// "builtins", "types", "_typeshed"), matches a recognized KnownClass.
func IsKnownClass(name, mod string) (KnownClass, bool) {
	for k, n := range knownClassNames {
		if n != name {
			continue
		}
		allowed := knownClassModule[k]
		if allowed == nil {
			if mod == "builtins" || mod == "_typeshed" {
				return k, true
			}
			continue
		}
		for _, a := range allowed {
			if a == mod {
				return k, true
			}
		}
	}
	return KnownClassNone, false
}
