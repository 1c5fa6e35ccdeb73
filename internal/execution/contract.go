package execution

import "fmt"

// ContractViolation reports that a task, command or plugin broke a
// programming contract: returning something other than a valid execution
// context, or claiming the initializing-plugin slot while another plugin
// holds it. It is delivered by panic because the error is not recoverable;
// a corrupted context would silently desync every downstream stage.
type ContractViolation struct {
	// Unit names the offending task, command or plugin.
	Unit string

	// Detail describes what the unit did.
	Detail string

	// Value is the actual value the unit produced, when applicable.
	Value any
}

// Error implements the error interface.
func (v *ContractViolation) Error() string {
	if v.Detail != "" {
		return fmt.Sprintf("contract violation in %s: %s", v.Unit, v.Detail)
	}
	return fmt.Sprintf("contract violation in %s: expected a valid execution context, got %v", v.Unit, v.Value)
}

// ensureExecution validates the context a unit returned. It panics with a
// *ContractViolation naming the unit when the contract is broken.
func ensureExecution(unit string, got *Execution) *Execution {
	if got == nil {
		panic(&ContractViolation{Unit: unit, Value: nil})
	}
	return got
}
