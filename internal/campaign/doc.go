// Package campaign models a Medusa fuzzing campaign scaffold in memory:
// which contracts exist, what each one is called, what it imports and what
// it inherits from. Everything here is pure string construction over the
// resolved config; rendering and filesystem work live elsewhere.
package campaign
