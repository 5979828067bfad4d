// Package services implements the driving port interfaces.
// Services contain the core search logic and orchestrate
// calls to driven ports (adapters).
//
// The matcher (Search, Lines) and renderer (Render) are pure functions;
// only SearchService touches a driven port.
package services
