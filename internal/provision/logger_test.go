package provision

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZebulonRouseFrantzich/binstage/internal/config"
	"github.com/ZebulonRouseFrantzich/binstage/internal/testutil"
)

type logEntry struct {
	level   string
	msg     string
	keyvals []interface{}
}

// recordingLogger captures log entries for assertions.
type recordingLogger struct {
	entries []logEntry
}

func (r *recordingLogger) add(level string, msg interface{}, keyvals []interface{}) {
	r.entries = append(r.entries, logEntry{level: level, msg: fmt.Sprint(msg), keyvals: keyvals})
}

func (r *recordingLogger) Debug(msg interface{}, keyvals ...interface{}) { r.add("debug", msg, keyvals) }
func (r *recordingLogger) Info(msg interface{}, keyvals ...interface{})  { r.add("info", msg, keyvals) }
func (r *recordingLogger) Warn(msg interface{}, keyvals ...interface{})  { r.add("warn", msg, keyvals) }
func (r *recordingLogger) Error(msg interface{}, keyvals ...interface{}) { r.add("error", msg, keyvals) }

func (r *recordingLogger) find(level, msg string) *logEntry {
	for i := range r.entries {
		if r.entries[i].level == level && r.entries[i].msg == msg {
			return &r.entries[i]
		}
	}
	return nil
}

func value(keyvals []interface{}, key string) (interface{}, bool) {
	for i := 0; i+1 < len(keyvals); i += 2 {
		if keyvals[i] == key {
			return keyvals[i+1], true
		}
	}
	return nil, false
}

func TestProvisioner_Logging(t *testing.T) {
	testutil.SetupTestEnv(t)
	testutil.StageBinary(t, "dist", "tool", "linux", "amd64", "tool", []byte("x"))

	rec := &recordingLogger{}
	p, err := New(Options{
		Spec:     &config.BinarySpec{Name: "tool", InstallDir: "bin"},
		Platform: linuxX64,
		Logger:   rec,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx := context.Background()
	if err := p.Install(ctx); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	if err := p.Uninstall(ctx); err != nil {
		t.Fatalf("Uninstall() error = %v", err)
	}
	if err := p.Uninstall(ctx); err != nil {
		t.Fatalf("second Uninstall() error = %v", err)
	}

	installed := rec.find("info", "Installed binary")
	if installed == nil {
		t.Fatalf("missing install log entry: %+v", rec.entries)
	}
	if dst, _ := value(installed.keyvals, "dst"); dst != filepath.Join("bin", "tool") {
		t.Errorf("dst = %v", dst)
	}

	removing := rec.find("info", "Removing binary")
	if removing == nil {
		t.Fatalf("missing uninstall log entry: %+v", rec.entries)
	}

	warn := rec.find("warn", "Nothing to uninstall")
	if warn == nil {
		t.Fatalf("missing warning for second uninstall: %+v", rec.entries)
	}
	if e, _ := value(warn.keyvals, "err"); !strings.Contains(fmt.Sprint(e), "installed binary not found") {
		t.Errorf("warning err = %v", e)
	}

	for _, e := range rec.entries {
		if op, ok := value(e.keyvals, "op"); !ok || op != p.ID() {
			t.Errorf("entry %q missing op id, got %v", e.msg, op)
		}
		if name, _ := value(e.keyvals, "binary"); name != "tool" {
			t.Errorf("entry %q binary = %v", e.msg, name)
		}
	}
}

func TestNoopLogger(t *testing.T) {
	var l Logger = noopLogger{}
	l.Debug("a")
	l.Info("b", "k", "v")
	l.Warn("c")
	l.Error("d")
}
