package stack

import "fmt"

type (
	// DuplicateModuleError reports two registrations under one module name.
	DuplicateModuleError struct {
		Module string
	}

	// WiringError reports a declared input that references an output no
	// registered module produces.
	WiringError struct {
		Module string // the consumer that declared the bad input
		Input  string
		Ref    Ref
	}

	// UnknownScalarError reports a declared input naming a configuration
	// field that does not exist.
	UnknownScalarError struct {
		Module string
		Input  string
		Scalar string
	}

	// CycleError reports that the declared producer/consumer edges do not
	// form a DAG. It is detected before any module is constructed.
	CycleError struct {
		Cause error
	}

	// OutputNotProducedError reports a constructor that returned without
	// producing an output its descriptor declared.
	OutputNotProducedError struct {
		Module string
		Output string
	}

	// ConstructionError wraps a constructor failure with the module name.
	ConstructionError struct {
		Module string
		Cause  error
	}

	// DuplicateExportError reports two export specs under one exposed name.
	DuplicateExportError struct {
		Name string
	}

	// CompletenessError reports an unconditionally required export whose
	// source was never produced.
	CompletenessError struct {
		Name   string
		Module string
		Output string
	}
)

func (e *DuplicateModuleError) Error() string {
	return fmt.Sprintf("module %q is registered twice", e.Module)
}

func (e *WiringError) Error() string {
	return fmt.Sprintf("module %q input %q references output %q of module %q, which no registered module produces",
		e.Module, e.Input, e.Ref.Output, e.Ref.Module)
}

func (e *UnknownScalarError) Error() string {
	return fmt.Sprintf("module %q input %q references unknown configuration field %q", e.Module, e.Input, e.Scalar)
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("module dependency graph contains a cycle: %v", e.Cause)
}

func (e *CycleError) Unwrap() error {
	return e.Cause
}

func (e *OutputNotProducedError) Error() string {
	return fmt.Sprintf("module %q did not produce its declared output %q", e.Module, e.Output)
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("constructing module %q: %v", e.Module, e.Cause)
}

func (e *ConstructionError) Unwrap() error {
	return e.Cause
}

func (e *DuplicateExportError) Error() string {
	return fmt.Sprintf("output %q is exported twice", e.Name)
}

func (e *CompletenessError) Error() string {
	return fmt.Sprintf("required output %q was never produced (module %q, output %q)", e.Name, e.Module, e.Output)
}
