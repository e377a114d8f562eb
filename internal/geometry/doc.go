// Package geometry provides the value types used in estimation problems
// and primitive functions over them that report their own local partial
// derivatives, shaped to plug directly into the expression combinators.
package geometry
