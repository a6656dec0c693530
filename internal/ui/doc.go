// Package ui provides the terminal user interface for fluxview.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. It never changes application state itself:
// every key press becomes an action sent through action.Creators, the stores
// apply it, and the model redraws from the stores' new state.
//
//	key press ──► Update ──► Creators ──► Dispatcher ──► stores
//	                ▲                                      │
//	                └──── binding.ChangedMsg ◄── Queue ◄───┘
//
// # Bindings
//
// New mounts one binding.Binding per store and keeps the returned snapshot as
// the initial view state. Store notifications raised during a dispatch only
// mark the store in a binding.Queue; Update returns Queue.Flush as a command,
// and the resulting ChangedMsg makes the model re-read the changed stores.
// Close unmounts every binding, after which no notification reaches the
// model.
//
// # Asynchronous Work
//
// Work that must not block Update runs as a tea.Cmd and comes back as a
// message, which Update turns into an action:
//
//   - Predictions: typing in the search field dispatches REQUEST_PREDICTIONS
//     and starts a catalog lookup; the answer is dispatched as
//     LOAD_PREDICTIONS. Answers for older queries are dropped by the search
//     store.
//   - Notifications: ADD_NOTIFICATION is followed by a tea.Tick that
//     dispatches REMOVE_NOTIFICATION when the notification expires.
//
// # Files
//
//   - app.go: Model, Update, key handling and Run
//   - view.go: page, player, sidebar and search rendering
//   - search.go: search field input and prediction requests
//   - keys.go: key bindings
//   - theme.go: light and dark palettes
//   - help.go: help overlay
//
// # Key Bindings
//
//   - +/-: Volume up/down
//   - m: Mute
//   - [ ]: Lower/higher quality
//   - < >: Slower/faster playback
//   - t: Theater mode
//   - a: Autoplay
//   - l/s/S: Loop, shuffle, save playlist
//   - b: Sidebar
//   - u: User menu
//   - g: Home page
//   - T: Light/dark theme
//   - /: Search (enter opens the selected prediction, esc closes)
//   - h or ?: Help
//   - q or Ctrl+C: Quit
package ui
