// Package action defines the messages that drive every view-state change.
//
// # Overview
//
// An Action is an immutable, tagged record describing a single user-facing
// event: toggling loop playback, changing the player volume, adding a
// notification, requesting search predictions and so on. The set of actions
// is closed: every implementation lives in this package, so a store's type
// switch sees exactly the payload shapes defined here.
//
// # Validation
//
// Each action validates its own payload. Failures wrap ErrMalformedPayload:
//
//	err := action.SetPlayerVolume{Volume: 1.5}.Validate()
//	errors.Is(err, action.ErrMalformedPayload) // true
//
// Action creators validate before dispatching and return the error instead of
// sending a bad action. Stores validate again on receipt, because actions can
// also arrive from a replayed journal or be built by hand.
//
// # Creators
//
// Creators wraps a Dispatcher with one method per event:
//
//	c := action.NewCreators(d)
//	_ = c.SetPlayerVolume(0.75)
//	id, _ := c.AddNotification("Saved!")
//	_ = c.RemoveNotification(id)
//
// Creators are fire-and-forget from the caller's point of view; the returned
// error only reports validation failures and handler faults collected by the
// dispatcher.
//
// # Wire Format
//
// Encode and Decode convert actions to and from flat JSON objects:
//
//	{"type":"SET_PLAYER_VOLUME","playerVolume":0.75}
//	{"type":"ADD_NOTIFICATION","notification":"Saved!","notificationId":"n1"}
//
// The journal package uses this format to record and replay sessions.
package action
