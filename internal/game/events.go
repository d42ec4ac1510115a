package game

// Listener receives the signals a game emits for rendering.
// Callbacks run after the game's lock is released, in the order the
// state changes happened.
type Listener interface {
	// OnLetterChanged reports the letter at position pos of the current
	// guess row. letter is 0 when the slot was cleared.
	OnLetterChanged(pos int, letter rune)
	// OnClassified is called once per position for every scored row.
	OnClassified(pos int, c Classification)
	// OnInvalidGuess is called when the dictionary rejects a full guess.
	OnInvalidGuess()
	// OnCommitFailed is called when validation could not be completed.
	OnCommitFailed(err error)
	OnWin()
	OnLose(secret string)
}

// NopListener ignores every signal.
type NopListener struct{}

func (NopListener) OnLetterChanged(int, rune) {}
func (NopListener) OnClassified(int, Classification) {}
func (NopListener) OnInvalidGuess() {}
func (NopListener) OnCommitFailed(error) {}
func (NopListener) OnWin() {}
func (NopListener) OnLose(string) {}

// ListenerFuncs adapts optional funcs to a Listener. Nil fields are skipped.
type ListenerFuncs struct {
	LetterChanged func(pos int, letter rune)
	Classified    func(pos int, c Classification)
	InvalidGuess  func()
	CommitFailed  func(err error)
	Win           func()
	Lose          func(secret string)
}

func (f ListenerFuncs) OnLetterChanged(pos int, letter rune) {
	if f.LetterChanged != nil {
		f.LetterChanged(pos, letter)
	}
}

func (f ListenerFuncs) OnClassified(pos int, c Classification) {
	if f.Classified != nil {
		f.Classified(pos, c)
	}
}

func (f ListenerFuncs) OnInvalidGuess() {
	if f.InvalidGuess != nil {
		f.InvalidGuess()
	}
}

func (f ListenerFuncs) OnCommitFailed(err error) {
	if f.CommitFailed != nil {
		f.CommitFailed(err)
	}
}

func (f ListenerFuncs) OnWin() {
	if f.Win != nil {
		f.Win()
	}
}

func (f ListenerFuncs) OnLose(secret string) {
	if f.Lose != nil {
		f.Lose(secret)
	}
}
