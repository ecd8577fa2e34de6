package hooks

// MutatorRef is the value of a mutator slot: either a [*Mutator] used as-is
// or a [Reference] that needs resolving.
type MutatorRef interface {
	isMutatorRef()
}

// Mutator is a resolved mutator as emitters consume it.
type Mutator struct {
	// Name is the exported function name
	Name string `json:"name" yaml:"name"`
	// Path is the import path of the package that declares it
	Path string `json:"path" yaml:"path"`
	// Alias is the import alias to use, if any
	Alias string `json:"alias,omitempty" yaml:"alias,omitempty"`
	// HasSecondArg is true when the function accepts request options
	HasSecondArg bool `json:"hasSecondArg,omitempty" yaml:"hasSecondArg,omitempty"`
	// HasThirdArg is true when the function accepts a third argument
	HasThirdArg bool `json:"hasThirdArg,omitempty" yaml:"hasThirdArg,omitempty"`
	// ReturnsError is true when the last result is an error
	ReturnsError bool `json:"returnsError,omitempty" yaml:"returnsError,omitempty"`
	// ErrorTypeName is the package's exported ErrorType, if declared
	ErrorTypeName string `json:"errorTypeName,omitempty" yaml:"errorTypeName,omitempty"`
	// BodyTypeName is the package's exported BodyType, if declared
	BodyTypeName string `json:"bodyTypeName,omitempty" yaml:"bodyTypeName,omitempty"`
}

// HasErrorType reports whether the mutator package declares a custom error type.
func (m *Mutator) HasErrorType() bool {
	return m != nil && m.ErrorTypeName != ""
}

func (*Mutator) isMutatorRef() {}

// newMutator builds the emitted description of a loaded function.
func newMutator(ref Reference, info *FuncInfo) *Mutator {
	return &Mutator{
		Name:          ref.Name,
		Path:          info.ImportPath,
		Alias:         ref.Alias,
		HasSecondArg:  info.Params >= 2,
		HasThirdArg:   info.Params >= 3,
		ReturnsError:  info.ReturnsError,
		ErrorTypeName: info.ErrorType,
		BodyTypeName:  info.BodyType,
	}
}
