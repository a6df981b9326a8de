package transcribe

import "errors"

// ErrTranscriptionFailed indicates the provider completed the job with an
// error status. The provider's message is wrapped verbatim.
var ErrTranscriptionFailed = errors.New("transcription failed")
