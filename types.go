package numconv

// Signed is a constraint that matches the built-in signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is a constraint that matches the built-in unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integer is a constraint that matches all built-in integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is a constraint that matches the built-in floating-point types.
type Float interface {
	float32 | float64
}

// Number is a constraint that matches all types supported by this package.
//
// The constraints deliberately exclude named types: conversion rules are
// keyed on the exact primitive type, and a named type may carry semantics
// (flags, enums) for which range checking is the wrong operation.
type Number interface {
	Integer | Float
}
