package jump

// HighscoreStore is the persistent highscore backend.
// HighestScore reports ("", 0) when nothing is stored or the read fails.
type HighscoreStore interface {
	HighestScore() (name string, score int)
	AddScore(name string, score int) error
}

// nopStore is used when no store is configured.
type nopStore struct{}

func (nopStore) HighestScore() (string, int) { return "", 0 }
func (nopStore) AddScore(string, int) error  { return nil }
