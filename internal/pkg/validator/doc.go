// Package validator checks request inputs and module dependency structs.
//
// Business code depends on the Validator interface; the go-playground
// validator v10 implementation lives here together with its translations.
package validator
