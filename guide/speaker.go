package guide

// Speaker voices a step message. Implementations must return
// promptly; a speech backend that synthesizes audio should do so on
// its own goroutine. The controller never inspects the outcome, so
// speech failures stay inside the implementation.
type Speaker interface {
	Speak(text string)
}

// SpeakerFunc adapts a function into a Speaker.
type SpeakerFunc func(text string)

// Speak calls the wrapped function.
func (f SpeakerFunc) Speak(text string) {
	if f == nil {
		return
	}
	f(text)
}

// Muted is a Speaker that discards every message.
var Muted Speaker = SpeakerFunc(func(string) {})
