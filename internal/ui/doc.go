// Package ui renders the interactive application picker on top of Bubble
// Tea: a browse list of running applications with single-key actions, and a
// search list over the installed set reached with "/".
package ui
