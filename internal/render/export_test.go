package render

// Export internal functions for testing.

// SpeakerColors exports speakerColors for testing.
var SpeakerColors = speakerColors

// Palette exports palette for testing.
var Palette = palette
