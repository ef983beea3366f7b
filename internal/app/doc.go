// Package app is the composition root for the tabdeck application.
//
// Run wires the pieces together in order: load the TOML configuration,
// overlay persisted user preferences, and start the terminal UI, which
// owns the synchronization controller for the tab strip and page deck.
// Business logic lives in the domain packages (cyclic, scrollpos,
// metrics, control, ui); this package only connects them.
package app
