package platform

import "time"

const defaultAppName = "Sketchboard"

// Options configures how a notification is displayed on the host platform.
type Options struct {
	// AppName is reported to the notification center. Empty uses
	// "Sketchboard".
	AppName string
	// IconPath points to an image shown with the notification where the
	// platform supports it.
	IconPath string
	// Timeout is how long the notification stays visible. Zero leaves it to
	// the platform.
	Timeout time.Duration
}

func (o Options) app() string {
	if o.AppName == "" {
		return defaultAppName
	}
	return o.AppName
}

// expireMillis follows the freedesktop convention: -1 means the server
// default.
func (o Options) expireMillis() int32 {
	if o.Timeout <= 0 {
		return -1
	}
	return int32(o.Timeout / time.Millisecond)
}
