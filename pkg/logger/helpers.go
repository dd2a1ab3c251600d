package logger

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Icons and symbols for different log types
const (
	IconSuccess = "✅"
	IconConfig  = "⚙️"
	IconHidden  = "🙈"
	IconDot     = "•"
)

var (
	colorSection    = color.New(color.FgCyan, color.Bold)
	colorSubSection = color.New(color.FgHiBlack)
	colorKey        = color.New(color.FgCyan)
)

// Success logs a success message with a green checkmark
func Success(args ...interface{}) {
	defaultLogger.Info(IconSuccess + " " + fmt.Sprint(args...))
}

// Successf logs a formatted success message
func Successf(format string, args ...interface{}) {
	Success(fmt.Sprintf(format, args...))
}

// Setup logs a configuration-related message with a gear icon
func Setup(args ...interface{}) {
	defaultLogger.Info(IconConfig + " " + fmt.Sprint(args...))
}

// Setupf logs a formatted configuration message
func Setupf(format string, args ...interface{}) {
	Setup(fmt.Sprintf(format, args...))
}

// LogSection creates a visual section separator
func LogSection(title string) {
	line := strings.Repeat("=", 50)
	_, _ = colorSection.Println(line)
	_, _ = colorSection.Println(title)
	_, _ = colorSection.Println(line)
}

// LogSubSection creates a visual subsection separator
func LogSubSection(title string) {
	line := strings.Repeat("-", 40)
	_, _ = colorSubSection.Println(line)
	_, _ = colorSubSection.Println(title)
	_, _ = colorSubSection.Println(line)
}

// LogList prints a list of items with bullets
func LogList(title string, items []string) {
	fmt.Println(title)
	for _, item := range items {
		fmt.Printf("  %s %s\n", IconDot, item)
	}
}

// LogKeyValue prints a key-value pair with nice formatting
func LogKeyValue(key string, value interface{}) {
	fmt.Printf("%s %v\n", colorKey.Sprint(key+":"), value)
}
