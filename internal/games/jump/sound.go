package jump

// Track is a looping music track.
type Track int

const (
	TrackMenu Track = iota
	TrackTheme
)

// String returns the track name.
func (t Track) String() string {
	switch t {
	case TrackMenu:
		return "menu"
	case TrackTheme:
		return "theme"
	default:
		return "unknown"
	}
}

// Effect is a one-shot sound effect.
type Effect int

const (
	EffectJump Effect = iota
	EffectCoin
	EffectBoost
)

// String returns the effect name.
func (e Effect) String() string {
	switch e {
	case EffectJump:
		return "jump"
	case EffectCoin:
		return "coin"
	case EffectBoost:
		return "boost"
	default:
		return "unknown"
	}
}

// Audio plays music and effects. Switching music replaces the current track.
// Implementations must not block the game loop.
type Audio interface {
	PlayMusic(t Track)
	PlayEffect(e Effect)
}

// NopAudio discards every request.
type NopAudio struct{}

func (NopAudio) PlayMusic(Track)   {}
func (NopAudio) PlayEffect(Effect) {}
