package input

// Button is one column's input. It satisfies score.Button.
type Button interface {
	Pressed() bool
}

// Source hands out the buttons of one input device.
type Source interface {
	Button(column int) Button
	Close() error
}
