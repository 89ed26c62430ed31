package console

import "github.com/fatih/color"

var (
	Yellow = color.New(color.FgYellow).SprintFunc()
	Red    = color.New(color.FgRed).SprintFunc()
	Green  = color.New(color.FgGreen).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	White  = color.New(color.FgHiWhite).SprintFunc()
	Faint  = color.New(color.Faint).SprintFunc()
	Bold   = color.New(color.Bold).SprintFunc()
)

// State renders a flag green when set and faint otherwise.
func State(on bool, label string) string {
	if on {
		return Green(label)
	}
	return Faint(label)
}

// Match renders a verification result.
func Match(ok bool) string {
	if ok {
		return Green("match")
	}
	return Red("mismatch")
}
