package consoles

type nopConsole struct {
}

// NewNopConsole discards all output. Used for --quiet runs and tests.
func NewNopConsole() Console {
	return &nopConsole{}
}

func (o *nopConsole) Printf(format string, a ...any) {
}

func (o *nopConsole) PushPrefix(format string, a ...any) {
}

func (o *nopConsole) PopPrefix() {
}
