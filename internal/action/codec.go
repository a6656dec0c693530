package action

import (
	"fmt"
	"math"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// JSON field names, matching the payload keys the web client used.
const (
	fieldType            = "type"
	fieldTheaterMode     = "theaterMode"
	fieldPlayerVolume    = "playerVolume"
	fieldMuted           = "muted"
	fieldQuality         = "quality"
	fieldPlaybackSpeed   = "playbackSpeed"
	fieldMediaID         = "mediaId"
	fieldDurationSeconds = "durationSeconds"
	fieldPage            = "page"
	fieldNotification    = "notification"
	fieldNotificationID  = "notificationId"
	fieldMode            = "mode"
	fieldQuery           = "query"
	fieldPredictions     = "predictions"
)

// Encode renders a as a flat JSON object: {"type": ..., payload fields...}.
func Encode(a Action) ([]byte, error) {
	if a == nil {
		return nil, fmt.Errorf("encode action: nil action")
	}
	out, err := sjson.SetBytes([]byte("{}"), fieldType, string(a.Type()))
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", a.Type(), err)
	}

	var fields []kv
	switch v := a.(type) {
	case SetViewerMode:
		fields = []kv{{fieldTheaterMode, v.TheaterMode}}
	case SetPlayerVolume:
		fields = []kv{{fieldPlayerVolume, v.Volume}}
	case SetPlayerMuted:
		fields = []kv{{fieldMuted, v.Muted}}
	case SetVideoQuality:
		fields = []kv{{fieldQuality, v.Quality}}
	case SetPlaybackSpeed:
		fields = []kv{{fieldPlaybackSpeed, v.Speed}}
	case LoadMedia:
		fields = []kv{{fieldMediaID, v.MediaID}, {fieldDurationSeconds, v.Duration.Seconds()}}
	case InitPage:
		fields = []kv{{fieldPage, v.Page}}
	case AddNotification:
		fields = []kv{{fieldNotification, v.Notification}, {fieldNotificationID, v.NotificationID}}
	case RemoveNotification:
		fields = []kv{{fieldNotificationID, v.NotificationID}}
	case SetThemeMode:
		fields = []kv{{fieldMode, string(v.Mode)}}
	case RequestPredictions:
		fields = []kv{{fieldQuery, v.Query}}
	case LoadPredictions:
		preds := v.Predictions
		if preds == nil {
			preds = []string{}
		}
		fields = []kv{{fieldQuery, v.Query}, {fieldPredictions, preds}}
	}

	for _, f := range fields {
		out, err = sjson.SetBytes(out, f.key, f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s field %s: %w", a.Type(), f.key, err)
		}
	}
	return out, nil
}

type kv struct {
	key   string
	value any
}

// Decode parses one JSON-encoded action. The payload is validated, so any
// returned action is safe to dispatch.
func Decode(data []byte) (Action, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("decode action: %w: invalid json", ErrMalformedPayload)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, fmt.Errorf("decode action: %w: not an object", ErrMalformedPayload)
	}
	tag := doc.Get(fieldType)
	if tag.Type != gjson.String || tag.String() == "" {
		return nil, fmt.Errorf("decode action: %w: missing type", ErrMalformedPayload)
	}

	t := Type(tag.String())
	r := reader{t: t, doc: doc}
	var a Action
	switch t {
	case TypeToggleLoop:
		a = ToggleLoop{}
	case TypeToggleShuffle:
		a = ToggleShuffle{}
	case TypeTogglePlaylistSave:
		a = TogglePlaylistSave{}
	case TypeToggleAutoPlay:
		a = ToggleAutoPlay{}
	case TypeToggleThemeMode:
		a = ToggleThemeMode{}
	case TypeToggleSidebar:
		a = ToggleSidebar{}
	case TypeHideSidebar:
		a = HideSidebar{}
	case TypeToggleMobileSearch:
		a = ToggleMobileSearch{}
	case TypeToggleUserNavigation:
		a = ToggleUserNavigation{}
	case TypeSetViewerMode:
		a = SetViewerMode{TheaterMode: r.boolean(fieldTheaterMode)}
	case TypeSetPlayerVolume:
		a = SetPlayerVolume{Volume: r.number(fieldPlayerVolume)}
	case TypeSetPlayerMuted:
		a = SetPlayerMuted{Muted: r.boolean(fieldMuted)}
	case TypeSetVideoQuality:
		a = SetVideoQuality{Quality: r.integer(fieldQuality)}
	case TypeSetPlaybackSpeed:
		a = SetPlaybackSpeed{Speed: r.number(fieldPlaybackSpeed)}
	case TypeLoadMedia:
		secs := r.optionalNumber(fieldDurationSeconds)
		a = LoadMedia{
			MediaID:  r.str(fieldMediaID),
			Duration: time.Duration(math.Round(secs * float64(time.Second))),
		}
	case TypeInitPage:
		a = InitPage{Page: r.str(fieldPage)}
	case TypeAddNotification:
		a = AddNotification{
			Notification:   r.str(fieldNotification),
			NotificationID: r.str(fieldNotificationID),
		}
	case TypeRemoveNotification:
		a = RemoveNotification{NotificationID: r.str(fieldNotificationID)}
	case TypeSetThemeMode:
		a = SetThemeMode{Mode: ThemeMode(r.str(fieldMode))}
	case TypeRequestPredictions:
		a = RequestPredictions{Query: r.str(fieldQuery)}
	case TypeLoadPredictions:
		a = LoadPredictions{Query: r.str(fieldQuery), Predictions: r.strings(fieldPredictions)}
	default:
		return nil, fmt.Errorf("decode action: %w: %q", ErrUnknownType, t)
	}

	if r.err != nil {
		return nil, r.err
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// reader extracts typed fields from a document, keeping the first shape error.
type reader struct {
	t   Type
	doc gjson.Result
	err error
}

func (r *reader) field(name string, want ...gjson.Type) (gjson.Result, bool) {
	v := r.doc.Get(name)
	if !v.Exists() {
		r.fail("missing field %s", name)
		return v, false
	}
	for _, w := range want {
		if v.Type == w {
			return v, true
		}
	}
	r.fail("field %s has wrong type", name)
	return v, false
}

func (r *reader) fail(format string, args ...any) {
	if r.err == nil {
		r.err = malformed(r.t, format, args...)
	}
}

func (r *reader) str(name string) string {
	v, ok := r.field(name, gjson.String)
	if !ok {
		return ""
	}
	return v.String()
}

func (r *reader) number(name string) float64 {
	v, ok := r.field(name, gjson.Number)
	if !ok {
		return 0
	}
	return v.Float()
}

func (r *reader) optionalNumber(name string) float64 {
	if !r.doc.Get(name).Exists() {
		return 0
	}
	return r.number(name)
}

func (r *reader) integer(name string) int {
	v, ok := r.field(name, gjson.Number)
	if !ok {
		return 0
	}
	f := v.Float()
	if f != math.Trunc(f) {
		r.fail("field %s is not an integer", name)
		return 0
	}
	return int(v.Int())
}

func (r *reader) boolean(name string) bool {
	v, ok := r.field(name, gjson.True, gjson.False)
	if !ok {
		return false
	}
	return v.Bool()
}

func (r *reader) strings(name string) []string {
	v := r.doc.Get(name)
	if !v.Exists() {
		return nil
	}
	if !v.IsArray() {
		r.fail("field %s is not an array", name)
		return nil
	}
	items := v.Array()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item.Type != gjson.String {
			r.fail("field %s contains a non-string", name)
			return nil
		}
		out = append(out, item.String())
	}
	return out
}
