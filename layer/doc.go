// Package layer is the parameter validation layer. A Layer sits between an
// application and the next Dispatch in the chain: every call is checked
// against the structural and cross-field rules of the API, violations are
// reported to the session's sinks, and calls with blocking violations return
// vk.ErrorValidationFailedEXT instead of being forwarded.
//
// Validation state is kept per dispatch key in a State. Sessions are created
// by CreateInstance, connections by CreateDevice; every other call resolves
// its context from the dispatchable handle it is made on.
package layer
