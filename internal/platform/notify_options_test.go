package platform

import (
	"testing"
	"time"
)

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if o.app() != "Sketchboard" || o.expireMillis() != -1 {
		t.Fatalf("defaults = %q %d", o.app(), o.expireMillis())
	}
	o = Options{AppName: "Board", Timeout: 3 * time.Second}
	if o.app() != "Board" || o.expireMillis() != 3000 {
		t.Errorf("got %q %d", o.app(), o.expireMillis())
	}
}
