package cli

// Export internal functions for testing.

// RunTranscribe exports runTranscribe for testing.
var RunTranscribe = runTranscribe

// RunConvert exports runConvert for testing.
var RunConvert = runConvert

// DeriveTranscriptPath exports deriveTranscriptPath for testing.
var DeriveTranscriptPath = deriveTranscriptPath

// DeriveDocxPath exports deriveDocxPath for testing.
var DeriveDocxPath = deriveDocxPath

// WriteFileAtomic exports writeFileAtomic for testing.
var WriteFileAtomic = writeFileAtomic
