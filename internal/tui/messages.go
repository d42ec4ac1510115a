package tui

type secretMsg struct {
	word string
	err  error
}

type validatedMsg struct {
	valid bool
	err   error
}

type clearFlashMsg struct{}
