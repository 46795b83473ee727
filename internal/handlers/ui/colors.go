package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	InfoColor    = color.New(color.FgCyan).SprintFunc()
	SuccessColor = color.New(color.FgGreen).SprintFunc()
	WarningColor = color.New(color.FgYellow).SprintFunc()
	ErrorColor   = color.New(color.FgRed).SprintFunc()
	DetailColor  = color.New(color.FgHiBlack).SprintFunc() // For less prominent details like trace steps
)

// Binding Specific Colors
var (
	FuncNameColor = color.New(color.FgYellow).SprintFunc()
	TargetColor   = color.New(color.FgBlue, color.Bold).SprintFunc()
	MethodColor   = color.New(color.FgWhite).SprintFunc()
)

// Header Colors
var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
)
