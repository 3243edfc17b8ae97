// Package guard implements a defensive construction pattern for domain objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances detectable,
// so entities and value objects can enforce creation through their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated
// constructor. The zero value fails validation, which prevents accidental
// use of directly instantiated structs.
//
// Example usage:
//
//	type DeliveryInfo struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewDeliveryInfo(name string) (DeliveryInfo, error) {
//	    if name == "" {
//	        return DeliveryInfo{}, errors.New("name is required")
//	    }
//	    return DeliveryInfo{name: name, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (d DeliveryInfo) Validate() error {
//	    return d.guard.Validate(ErrDeliveryInfoIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// For zero-value guards it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
