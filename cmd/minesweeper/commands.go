package main

type command uint8

const (
	cmdNone command = iota
	cmdFlag
	cmdOpen
	cmdQuit
)

const (
	promptCommand = "Enter command (1 to flag, 2 to uncover, 3 to quit):"
	promptRow     = "Enter row:"
	promptCol     = "Enter column:"
)

// Anything past the known codes quits.
func parseCommand(n uint64) command {
	if n >= uint64(cmdQuit) {
		return cmdQuit
	}
	return command(n)
}
