package transcribe

// Export internal functions for testing.

// NewWithAPI exports newWithAPI for testing.
var NewWithAPI = newWithAPI

// Classify exports classify for testing.
var Classify = classify

// RequestParams exports requestParams for testing.
var RequestParams = requestParams
