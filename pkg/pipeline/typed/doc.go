// Package typed provides the statically-typed counterpart to the dynamic
// pipeline builder: chains whose input and output types are tracked by the
// compiler instead of checked at invocation time.
//
// Key constructs:
// - From/Then: build a chain of infallible functions
// - FromErr/ThenTry: build a fallible chain that stops on the first error
// - T2/T3 with Pack and Spread helpers: carry a tuple result between stages
//
// Then and ThenTry are package-level functions because Go methods cannot
// introduce new type parameters.
package typed
