package utils

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/manualworlds/onemorenight-options/pkg/options"
)

// Environment variables read while collecting option values
const (
	EnvPrefix      = "MANUAL_"
	EnvSkipPrompts = "MANUAL_SKIP_PROMPTS"
)

// EnvKey returns the environment variable that overrides an option
func EnvKey(key string) string {
	return EnvPrefix + strings.ToUpper(key)
}

// PromptForOptions asks the player for a value of every definition. When
// interactive is false, or MANUAL_SKIP_PROMPTS is "true", environment
// overrides and defaults are used without prompting.
func PromptForOptions(defs []*options.Definition, interactive bool) (options.Values, error) {
	if os.Getenv(EnvSkipPrompts) == "true" {
		interactive = false
	}

	values := make(options.Values, len(defs))
	for _, d := range defs {
		value, err := promptForOption(d, interactive)
		if err != nil {
			return nil, fmt.Errorf("failed to get %s: %w", d.Key, err)
		}
		values[d.Key] = value
	}

	return values, nil
}

// promptForOption prompts for a single option
func promptForOption(d *options.Definition, interactive bool) (int, error) {
	current := d.Default

	// Check for environment variable to use as default
	if envValue := os.Getenv(EnvKey(d.Key)); envValue != "" {
		parsed, err := d.ParseValue(envValue)
		if err != nil {
			return 0, fmt.Errorf("%s: %w", EnvKey(d.Key), err)
		}
		current = parsed
	}

	if !interactive {
		return current, nil
	}

	switch d.Kind {
	case options.KindToggle, options.KindDefaultOnToggle:
		return promptToggle(d, current)
	case options.KindChoice:
		return promptChoice(d, current)
	case options.KindRange:
		return promptRange(d, current)
	default:
		return 0, fmt.Errorf("unsupported option kind: %s", d.Kind)
	}
}

func promptToggle(d *options.Definition, current int) (int, error) {
	prompt := &survey.Confirm{
		Message: d.DisplayName + "?",
		Default: current != 0,
		Help:    d.Documentation,
	}

	var result bool
	if err := survey.AskOne(prompt, &result); err != nil {
		return 0, err
	}

	if result {
		return 1, nil
	}
	return 0, nil
}

func promptChoice(d *options.Definition, current int) (int, error) {
	defaultName, _ := d.ChoiceName(current)

	prompt := &survey.Select{
		Message: d.DisplayName + ":",
		Options: d.ChoiceNames(),
		Default: defaultName,
		Help:    d.Documentation,
	}

	var result string
	if err := survey.AskOne(prompt, &result); err != nil {
		return 0, err
	}

	value, ok := d.ChoiceValue(result)
	if !ok {
		return 0, fmt.Errorf("unknown choice %q", result)
	}
	return value, nil
}

func promptRange(d *options.Definition, current int) (int, error) {
	prompt := &survey.Input{
		Message: fmt.Sprintf("%s (%d-%d):", d.DisplayName, d.RangeStart, d.RangeEnd),
		Default: strconv.Itoa(current),
		Help:    d.Documentation,
	}

	var result string
	if err := survey.AskOne(prompt, &result, survey.WithValidator(survey.Required), survey.WithValidator(func(val interface{}) error {
		str, _ := val.(string)
		_, err := d.ParseValue(str)
		return err
	})); err != nil {
		return 0, err
	}

	return d.ParseValue(result)
}
