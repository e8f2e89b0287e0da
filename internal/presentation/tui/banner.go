package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs an ASCII art banner for adoctree.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Using a forest gradient color scheme (Emerald/Teal)
	s1 := termenv.String("            _            _                  ").Foreground(p.Color("#34d399"))
	s2 := termenv.String("  __ _  ___| | ___   ___| |_ _ __ ___  ___  ").Foreground(p.Color("#2dd4bf"))
	s3 := termenv.String(" / _` |/ _  | |/ _ \\ / __| __| '__/ _ \\/ _ \\ ").Foreground(p.Color("#22d3ee"))
	s4 := termenv.String("| (_| | (_| | | (_) | (__| |_| | |  __/  __/ ").Foreground(p.Color("#38bdf8"))
	s5 := termenv.String(" \\__,_|\\__,_|_|\\___/ \\___|\\__|_|  \\___|\\___| ").Foreground(p.Color("#60a5fa"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println()
}
