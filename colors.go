// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	detectedMode TerminalMode

	// ANSI escapes for plain fmt output, set by InitializeColors
	Green, Info, Warning, Error, Reset string

	errorStyle   = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle()
)

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// COLORFGBG format is typically "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			if bg, err := strconv.Atoi(parts[len(parts)-1]); err == nil {
				// 0-6 and 8 are dark backgrounds, 7 and 9-15 are light
				if bg == 7 || bg >= 9 {
					return TerminalModeLight
				}
				return TerminalModeDark
			}
		}
	}

	if lipgloss.HasDarkBackground() {
		return TerminalModeDark
	}
	return TerminalModeLight
}

// InitializeColors picks colors for the detected terminal background.
func InitializeColors() {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()

	if detectedMode == TerminalModeLight {
		errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)
		successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("28"))
	} else {
		errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
		successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	}
}

func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	// For dark mode terminals, use brighter colors
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
