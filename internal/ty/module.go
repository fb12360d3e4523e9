package ty

// ModuleFile is the minimal view of a resolved source file the kernel needs
// to form a Module(file) type: enough identity to intern on, plus the bits
// KnownClass/KnownFunction recognition needs. internal/module.Module
// implements this interface; the kernel depends only on the interface so it
// never imports the driver's file-resolution machinery.
type ModuleFile interface {
	DisplayKey() string
	IsKnownClassModule() bool
}

// TModule is the type of a module object: `import os; reveal_type(os)`.
// Modules are interned by file identity (internal/db), so two TModule
// values wrapping the same resolved file are the same pointer.
type TModule struct{ File ModuleFile }

func (TModule) Kind() Kind { return KindModule }

func (t TModule) String() string {
	if t.File == nil {
		return "<module ?>"
	}
	return t.File.DisplayKey()
}

func (t TModule) Equals(o Type) bool {
	other, ok := o.(TModule)
	return ok && other.File == t.File
}
