// Package ui runs the welcome tour as a Bubble Tea program.
//
// The adapter translates terminal input into the four tour entry points
// (start, advance, retreat, skip) plus settled gesture positions, and renders
// whichever screen the tour controller's mode calls for:
//   - Welcome screen: distribution greeting with Take the Tour / No Thanks
//   - Page screen: chrome header, illustration, heading, markdown body, dots
//
// All tour state lives in tour.Controller; this package holds only rendering
// caches and the in-flight gesture offset.
package ui
