package terminal

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const welcomeText = "Welcome to DevlUp Labs Summer of Code Terminal!\nType 'help' to see available commands."

const fallbackText = "Unable to fetch live project data. Displaying mock projects instead."

const helpText = `Available commands:
  help, h, ?                 Show this help message
  clear, cls, c              Clear command history
  projects, p, ls            Show all available projects
  search [query], s [query]  Search for projects
  filter [tech], f [tech]    Filter projects by technology
  view [id], v [id], [id]    View details of a specific project
  stats [options]            View site analytics data
  mentors, m                 Show all project mentors
  shortcuts, keys            Display keyboard shortcuts`

const shortcutsText = `
KEYBOARD SHORTCUTS
=================
Navigation:
  Alt+H       - Navigate to Home page
  Alt+P       - Navigate to Projects page
  Alt+T       - Navigate to Timeline page
  Alt+S       - Navigate to Stats page
  Alt+C       - Navigate to Contact page
  Alt+Shift+T - Switch to Terminal View

Terminal Commands:
  shortcuts   - Show this help
  help        - Show terminal commands

Note: You can also press ? on any other page to see keyboard shortcuts
`

const (
	projectsText     = `Showing all projects. Type "search [query]" to search projects or "filter [technology]" to filter by technology.`
	applyClosedText  = "Applications are currently closed. Please check back later."
	applyOpeningText = "Opening contributor application form..."
	applyFormText    = "Please submit your information through the Google Form that opened in a new tab."
	konamiHintText   = "Try pressing: ↑ ↑ ↓ ↓ ← → ← → B A"
	konamiText       = "🎮 KONAMI CODE ACTIVATED! You've unlocked dark mode!"
	easterEggText    = "🥚 Easter Egg Hunt: There are several hidden commands in this terminal! Try these: matrix, coffee, fortune, hack, cowsay, colors!, konami"
	aboutText        = "DevlUp Labs Summer of Code - A terminal-themed platform for open source projects"
	rainbowText      = "🔴🟠🟡🟢🔵🟣🔴🟠🟡🟢🔵🟣🔴🟠🟡🟢🔵🟣"
	cowsayDefault    = "Moo! Type a message after cowsay!"
)

const aboutDetails = `
Built with:
- Go and Bubble Tea
- Lip Gloss terminal themes
- Glamour markdown rendering
- Love for coding 💻❤️

Try some hidden commands! Type "easteregg" to see a hint.`

const coffeeArt = `
    ( (
     ) )
  ._______.
  |       |]
  \       /
   ` + "`" + `-----'
`

var programmingQuotes = []string{
	"Programming isn't about what you know; it's about what you can figure out. - Chris Pine",
	"The only way to learn a new programming language is by writing programs in it. - Dennis Ritchie",
	"Sometimes it's better to leave something alone, to pause, and that's very true of programming. - Joyce Wheeler",
	"Testing leads to failure, and failure leads to understanding. - Burt Rutan",
	"The most damaging phrase in the language is 'We've always done it this way.' - Grace Hopper",
	"Any fool can write code that a computer can understand. Good programmers write code that humans can understand. - Martin Fowler",
	"First, solve the problem. Then, write the code. - John Johnson",
	"The best error message is the one that never shows up. - Thomas Fuchs",
	"It's not a bug, it's an undocumented feature. - Anonymous",
	"Without requirements or design, programming is the art of adding bugs to an empty text file. - Louis Srygley",
	"Before software can be reusable it first has to be usable. - Ralph Johnson",
	"The best way to predict the future is to implement it. - David Heinemeier Hansson",
	"Code is like humor. When you have to explain it, it's bad. - Cory House",
	"Make it work, make it right, make it fast. - Kent Beck",
}

const (
	matrixFrames = 20
	matrixWidth  = 40
	colorsFrames = 25
)

var matrixGlyphs = []rune("01アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヰヱヲン")

var hackMessages = []string{
	"Initiating hack sequence...",
	"Bypassing firewall...",
	"Accessing mainframe...",
	"Decrypting security protocols...",
	"Injecting payload...",
	"Covering tracks...",
	"Erasing logs...",
	"Hack complete! Just kidding, that's not how hacking works 😉",
}

var progressGlyphs = []rune("⣾⣽⣻⢿⡿⣟⣯⣷")

// Rainbow is the palette the colors easter egg cycles through.
var Rainbow = []string{"#ff0000", "#ff8000", "#ffff00", "#00ff00", "#00ffff", "#0000ff", "#ff00ff"}

// cowsay draws message in a speech bubble sized to its display width.
func cowsay(message string) string {
	width := runewidth.StringWidth(message) + 2
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("_", width))
	fmt.Fprintf(&b, " < %s >\n", message)
	fmt.Fprintf(&b, "  %s\n", strings.Repeat("‾", width))
	b.WriteString(`        \   ^__^
         \  (oo)\_______
            (__)\       )\/\
                ||----w |
                ||     ||
`)
	return b.String()
}
