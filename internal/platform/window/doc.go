// Package window runs the game in a desktop window with Ebitengine.
// Ebitengine owns the event loop: Update runs one loop iteration and Draw
// composes it onto the logical-resolution screen, which Layout scales to
// the window.
//
// Ebitengine needs cgo on Linux and the BSDs, so the package is empty in
// CGO_ENABLED=0 builds and when built with the nowindow tag.
package window
