package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scottcagno/hashprobe/pkg/util"
)

func newTestLogger() (*Logger, *bytes.Buffer) {
	buf := new(bytes.Buffer)
	l := New(buf, false)
	l.SetFlags(0)
	return l, buf
}

func TestLogger_Levels(t *testing.T) {
	l, buf := newTestLogger()

	l.Debug("hidden")
	util.AssertExpected(t, "", buf.String())

	l.Info("shown")
	util.AssertExpected(t, "| INFO | shown\n", buf.String())

	buf.Reset()
	l.SetLevel(LevelDebug)
	l.Debugf("probe %d", 3)
	util.AssertExpected(t, "| DBUG | probe 3\n", buf.String())

	buf.Reset()
	l.SetLevel(LevelError)
	l.Warn("hidden")
	l.Print("always")
	util.AssertExpected(t, "| NORM | always\n", buf.String())
}

func TestLogger_PercentWithoutArgs(t *testing.T) {
	l, buf := newTestLogger()
	l.Info("load factor 50%")
	util.AssertExpected(t, "| INFO | load factor 50%\n", buf.String())
}

func TestLogger_PrintFunc(t *testing.T) {
	l, buf := newTestLogger()
	l.SetPrintFunc(true)
	l.Info("where am i")
	util.AssertTrue(t, strings.Contains(buf.String(), "TestLogger_PrintFunc"))
}

func TestLogger_Color(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(buf, true)
	l.SetFlags(0)
	l.Warn("careful")
	util.AssertTrue(t, strings.HasPrefix(buf.String(), "| "+colors[Yellow]+"WARN"+colors[White]))
}

func TestLevel_String(t *testing.T) {
	util.AssertExpected(t, "EROR", LevelError.String())
	util.AssertExpected(t, "UNKN", Level(42).String())
}
