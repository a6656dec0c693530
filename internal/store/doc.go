// Package store holds the view state of the application, one store per domain.
//
// # Overview
//
// Each store owns one slice of state and changes it only from inside its
// dispatch callback. Views read through Snapshot and learn about changes
// through Subscribe; they never write. The only way to change a store is to
// dispatch an action.
//
//	                      Dispatch(action)
//	                             │
//	   ┌──────────┬──────────┬───┴──────┬─────────┬─────────┬─────────┐
//	   ▼          ▼          ▼          ▼         ▼         ▼         ▼
//	PlaylistView VideoViewer Media     Page      Theme     Layout   SearchField
//	 loop/shuffle volume,    duration  page id,  light/    sidebar, query,
//	 save         quality,   cache,    autoplay, dark      menus    predictions
//	              speed      rendition notices
//
// # Store Contract
//
// Every store follows the same rules:
//
//   - Construction registers exactly one callback with the dispatcher.
//   - The callback type-switches on the action. Unrecognized actions are
//     ignored: no state change and no notification.
//   - A recognized action with a malformed payload is logged at warn level
//     and ignored; the previous state is kept.
//   - A handler that changes state emits exactly one change notification,
//     carrying a copy of the new state. Handlers that leave state unchanged
//     do not emit.
//   - A store never dispatches from inside its callback. When two stores care
//     about the same event, both handle the action independently (for
//     example SET_VIDEO_QUALITY in VideoViewer and Media, or INIT_PAGE in
//     Page and Layout).
//
// # Atomic Updates
//
// A handler builds the next state on a copy of the current one and swaps it
// in under the store's lock. Snapshot therefore always returns the result of
// zero or more fully applied actions, never a half-applied one:
//
//	next := s.Snapshot()   // copy
//	next.Loop = !next.Loop // mutate the copy
//	s.commit(next)         // swap under lock, then notify
//
// Slices and maps in the state are cloned on the way in and on the way out,
// so callers may modify what they receive.
//
// # Durable Preferences
//
// VideoViewer, Page (autoplay) and Theme are seeded from prefs.File and write
// each change back through it. A failed write is logged; the in-memory state
// still changes.
//
// # Testing Considerations
//
// Stores take their dispatcher as a constructor argument, so every test can
// build a fresh dispatcher and a prefs.NewMemory file:
//
//	d := dispatcher.New()
//	set, _ := store.NewSet(d, store.Options{SidebarVisible: true})
//	_ = d.Dispatch(action.ToggleLoop{})
//	set.PlaylistView.Snapshot().Loop // true
package store
